package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taracare/askgate/internal/domain"
	"github.com/taracare/askgate/internal/usecase"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		res     domain.StructuredResult
		verdict domain.Verdict
	}{
		{
			name:    "off topic wins over everything",
			res:     domain.StructuredResult{TopicOK: false, StyleOK: true, Answer: thaiWords(100)},
			verdict: domain.VerdictRejectedOffTopic,
		},
		{
			name:    "accepted inside band",
			res:     domain.StructuredResult{TopicOK: true, StyleOK: true, Answer: thaiWords(100)},
			verdict: domain.VerdictAccepted,
		},
		{
			name:    "accepted at lower bound",
			res:     domain.StructuredResult{TopicOK: true, StyleOK: true, Answer: thaiWords(70)},
			verdict: domain.VerdictAccepted,
		},
		{
			name:    "accepted at upper bound",
			res:     domain.StructuredResult{TopicOK: true, StyleOK: true, Answer: thaiWords(190)},
			verdict: domain.VerdictAccepted,
		},
		{
			name:    "too short",
			res:     domain.StructuredResult{TopicOK: true, StyleOK: true, Answer: thaiWords(69)},
			verdict: domain.VerdictNeedsRefinement,
		},
		{
			name:    "too long",
			res:     domain.StructuredResult{TopicOK: true, StyleOK: true, Answer: thaiWords(191)},
			verdict: domain.VerdictNeedsRefinement,
		},
		{
			name:    "style violation",
			res:     domain.StructuredResult{TopicOK: true, StyleOK: false, Answer: thaiWords(100)},
			verdict: domain.VerdictNeedsRefinement,
		},
		{
			name:    "empty answer",
			res:     domain.StructuredResult{TopicOK: true, StyleOK: true, Answer: "   "},
			verdict: domain.VerdictNeedsRefinement,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verdict, _ := usecase.Validate(tt.res, 70, 190)
			assert.Equal(t, tt.verdict, verdict)
		})
	}
}

func TestValidate_ReportsWordCount(t *testing.T) {
	_, n := usecase.Validate(domain.StructuredResult{TopicOK: true, StyleOK: true, Answer: thaiWords(42)}, 70, 190)
	assert.Equal(t, 42, n)
}
