// Package ai provides provider-agnostic parsing of structured model output.
package ai

import (
	"encoding/json"
	"strings"

	"github.com/taracare/askgate/internal/domain"
	"github.com/taracare/askgate/pkg/textx"
)

// ParseStructured turns a raw model payload into a StructuredResult. The
// trimmed payload is parsed strictly first; only when that fails are fences
// stripped and the first balanced object extracted. A payload that still does
// not parse degrades to a synthesized result: topic_ok=true, style_ok=false
// with the raw text as answer. Parse failure is a style violation, never an
// off-topic verdict; inferring off-topic from unparseable output would reject
// valid content.
//
// The boolean reports whether the payload parsed.
func ParseStructured(raw string) (domain.StructuredResult, bool) {
	trimmed := strings.TrimSpace(raw)
	var res domain.StructuredResult
	if err := json.Unmarshal([]byte(trimmed), &res); err == nil {
		return res, true
	}
	var cleaned domain.StructuredResult
	if err := json.Unmarshal([]byte(cleanPayload(trimmed)), &cleaned); err == nil {
		return cleaned, true
	}
	return domain.StructuredResult{
		TopicOK: true,
		StyleOK: false,
		Answer:  textx.SanitizeText(raw),
	}, false
}

// cleanPayload strips the markdown code fences and surrounding prose some
// models wrap around JSON even when a JSON MIME type was requested.
func cleanPayload(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	s = strings.TrimSpace(s)

	// Extract the first balanced object when the payload mixes text and
	// JSON. Braces inside string literals do not count toward the depth.
	start := strings.Index(s, "{")
	if start == -1 {
		return s
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		switch {
		case escaped:
			escaped = false
		case inString && c == '\\':
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
		case c == '{':
			depth++
		case c == '}':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return s
}
