package usecase

import (
	"strings"
)

// DefaultSystemInstruction pins domain, language, tone and length. It is the
// built-in used when no SYSTEM_PROMPT override is configured.
const DefaultSystemInstruction = `คุณคือผู้ช่วย AI ของเว็บไซต์ TaraCare
- ขอบเขต: ตอบเฉพาะเรื่อง "แมงมุมทารันทูล่า" และการเลี้ยงดูที่ปลอดภัย (สายพันธุ์ พฤติกรรม อุณหภูมิ/ความชื้น อาหาร ตู้ วัสดุรองพื้น ปัญหาที่พบบ่อย การปฐมพยาบาลเบื้องต้นที่ไม่ใช่การแพทย์ ฯลฯ)
- ถ้าคำถามไม่เกี่ยวกับทารันทูล่า ให้ปฏิเสธอย่างสุภาพสั้น ๆ และชวนกลับสู่หัวข้อทารันทูล่า
- สไตล์คำตอบ: ภาษาไทย เข้าใจง่าย ได้ใจความ (~80–160 คำ หรือ bullet 5–8 ข้อ)
- ให้คำแนะนำเชิงปฏิบัติ (ช่วงอุณหภูมิ/ความชื้นโดยประมาณ ความถี่ให้อาหาร สิ่งที่ควร/ไม่ควร)
- ห้ามเดา หรือให้คำแนะนำอันตราย/ทางการแพทย์`

// Canned user-facing strings. These are the only texts the pipeline emits for
// content-level irregularities; they are always a normal success response.
const (
	// MsgOffTopicGate is returned when the keyword gate rejects a question,
	// before any upstream call is made.
	MsgOffTopicGate = "ขออภัยนะครับ ผมตอบเฉพาะเรื่องทารันทูล่าเท่านั้น 😊 " +
		"ลองถามเรื่องสายพันธุ์ การเลี้ยง อุณหภูมิ/ความชื้น อาหาร ตู้เลี้ยง หรือปัญหาที่พบบ่อยดูนะครับ"

	// MsgOffTopicModel is returned when the model itself judges the question
	// off-topic.
	MsgOffTopicModel = "ขออภัยครับ ผมสามารถตอบเฉพาะหัวข้อทารันทูล่าเท่านั้น " +
		"ลองถามเกี่ยวกับสายพันธุ์ การเลี้ยง อุณหภูมิ/ความชื้น อาหาร หรือปัญหาที่พบบ่อยได้เลยครับ"

	// MsgApologyFallback is the floor answer when the pipeline ends up with
	// nothing usable.
	MsgApologyFallback = "ขอโทษด้วยนะครับ ตอนนี้ยังตอบไม่ได้ ลองถามใหม่อีกครั้งหรือระบุรายละเอียดเกี่ยวกับทารันทูล่าให้ชัดเจนขึ้นหน่อยได้ไหมครับ"
)

// BuildUserMessage embeds the question plus an explicit description of the
// JSON output the model must return.
func BuildUserMessage(question string) string {
	var b strings.Builder
	b.WriteString(`ภารกิจ:
- คุณต้องตอบเฉพาะ "ทารันทูล่า" เท่านั้น
- ถ้านอกขอบเขต ให้ตั้งค่า "topic_ok": false และอธิบายสั้น ๆ ใน "notes"

รูปแบบและความยาว:
- ภาษาไทย เข้าใจง่าย ได้ใจความ
- ความยาวประมาณ 80–160 คำ หรือ bullet 5–8 ข้อ
- หลีกเลี่ยงเนื้อหานอกหัวข้อ / เวิ่นเว้อ

ข้อกำหนดด้านเนื้อหา:
- ให้ค่าช่วงอุณหภูมิ/ความชื้นโดยประมาณ ความถี่ให้อาหาร สิ่งที่ควร/ไม่ควร ถ้าเหมาะสม
- หลีกเลี่ยงคำแนะนำอันตรายหรือทางการแพทย์

โจทย์ของผู้ใช้:
`)
	b.WriteString(question)
	b.WriteString(`

เอาต์พุตที่ต้องส่งกลับ (JSON เท่านั้น):
{
  "topic_ok": boolean,
  "style_ok": boolean,
  "answer": "คำตอบสำหรับผู้ใช้ (ภาษาไทย)",
  "notes": "เหตุผลย่อ (ไม่จำเป็น)"
}`)
	return b.String()
}

// BuildRefineMessage states that the previous answer violated format/length
// and restates the target bounds and domain constraint. It wraps the original
// question into the regular user-message envelope so the refined attempt uses
// the same schema.
func BuildRefineMessage(question string) string {
	refine := `คำตอบก่อนหน้านี้ยังไม่ตรงรูปแบบ/ความยาว
- ปรับให้อยู่ในช่วง ~80–160 คำ หรือ bullet 5–8 ข้อ
- คงขอบเขตทารันทูล่าเท่านั้น
- เน้นค่าปฏิบัติ (อุณหภูมิ/ความชื้น/ความถี่อาหาร/ควร-ไม่ควร) เท่าที่เหมาะ

คำถามเดิม:
` + question
	return BuildUserMessage(refine)
}
