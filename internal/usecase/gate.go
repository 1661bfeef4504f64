package usecase

import (
	"strings"
)

// TopicGate is a cheap keyword pre-filter that avoids paying for an upstream
// call on obviously irrelevant input. It is intentionally permissive: the
// model performs the authoritative topic judgment afterwards, so a false
// positive costs one upstream call at most.
type TopicGate struct {
	keywords []string
}

// NewTopicGate lower-cases the vocabulary once; empty entries are dropped so
// they can never match everything.
func NewTopicGate(keywords []string) *TopicGate {
	kws := make([]string, 0, len(keywords))
	for _, k := range keywords {
		k = strings.ToLower(strings.TrimSpace(k))
		if k != "" {
			kws = append(kws, k)
		}
	}
	return &TopicGate{keywords: kws}
}

// IsOnTopic reports whether any configured keyword occurs in the question.
// No stemming, no scoring; a single substring hit passes. Empty input fails.
func (g *TopicGate) IsOnTopic(question string) bool {
	s := strings.ToLower(question)
	if s == "" {
		return false
	}
	for _, k := range g.keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}
