// Package textx provides small text utilities used across the project.
package textx

import (
	"strings"
)

// SanitizeText removes control characters except tab/newline/CR and trims spaces.
func SanitizeText(s string) string {
	// strip control chars outside tab/newline/carriage return
	var b strings.Builder
	for _, r := range s {
		if r == '\n' || r == '\r' || r == '\t' || (r >= 32 && r != 127) {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

// Words splits s into whitespace-delimited tokens. Thai prose without spaces
// counts as a single token; that matches the length contract upstream prompts
// are written against.
func Words(s string) []string {
	return strings.Fields(s)
}

// WordCount returns the number of whitespace-delimited tokens in s.
func WordCount(s string) int {
	return len(strings.Fields(s))
}
