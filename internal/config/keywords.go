package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// defaultTopicKeywords is the built-in domain vocabulary: Thai and English
// husbandry terms plus the common genus names. A single substring hit lets a
// question through the gate.
var defaultTopicKeywords = []string{
	"ทารันทูล่า", "tarantula", "แมงมุม",
	"brachypelma", "grammostola", "aphonopelma", "poecilotheria", "avicularia",
	"ความชื้น", "อุณหภูมิ", "substrate", "ซับสเตรต",
	"อาหาร", "จิ้งหรีด", "ดูบิอา", "dubia",
	"ตู้เลี้ยง", "ฟอสซอเรียล", "อาร์โบเรียล", "เทอเรสเทรียล",
	"ลอกคราบ", "molt", "enclosure", "humidity", "temperature",
}

type keywordsFile struct {
	Keywords []string `yaml:"keywords"`
}

// LoadTopicKeywords returns the topic vocabulary for the gate. When path is
// empty the built-in list is returned; otherwise the YAML file must contain a
// non-empty `keywords` sequence.
func LoadTopicKeywords(path string) ([]string, error) {
	if path == "" {
		out := make([]string, len(defaultTopicKeywords))
		copy(out, defaultTopicKeywords)
		return out, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("op=config.LoadTopicKeywords: %w", err)
	}
	var f keywordsFile
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("op=config.LoadTopicKeywords: %w", err)
	}
	out := make([]string, 0, len(f.Keywords))
	for _, k := range f.Keywords {
		if k = strings.TrimSpace(k); k != "" {
			out = append(out, k)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("op=config.LoadTopicKeywords: %s: no keywords", path)
	}
	return out, nil
}
