// Package domain holds the core entities and ports of the answer pipeline.
package domain

import (
	"context"
	"errors"
	"time"
)

// Error taxonomy (sentinels)
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrRateLimited     = errors.New("rate limited")
	ErrUpstreamTimeout = errors.New("upstream timeout")
	ErrUpstreamFailure = errors.New("upstream failure")
	ErrInternal        = errors.New("internal error")
)

// StructuredResult is the schema-constrained payload requested from the model.
// StyleOK is optional in the wire schema; a missing field decodes to false and
// is treated the same as an explicit style violation.
type StructuredResult struct {
	TopicOK bool   `json:"topic_ok"`
	StyleOK bool   `json:"style_ok"`
	Answer  string `json:"answer"`
	Notes   string `json:"notes,omitempty"`
}

// Verdict classifies a StructuredResult against the style/length contract.
type Verdict int

const (
	VerdictAccepted Verdict = iota
	VerdictNeedsRefinement
	VerdictRejectedOffTopic
)

// String returns a stable label for logs and metrics.
func (v Verdict) String() string {
	switch v {
	case VerdictAccepted:
		return "accepted"
	case VerdictNeedsRefinement:
		return "needs_refinement"
	case VerdictRejectedOffTopic:
		return "rejected_off_topic"
	}
	return "unknown"
}

// GenerationRequest is the immutable value assembled once per attempt.
// UserMessage embeds the question plus the output-schema description;
// the system instruction is fixed at client construction.
type GenerationRequest struct {
	UserMessage string
}

// Generator (port)
//
// GenerateStructured performs exactly one upstream structured-generation call.
// Content-level irregularities (unparseable payload) are absorbed into the
// returned StructuredResult; only infrastructure faults surface as errors,
// wrapped in ErrUpstreamTimeout or ErrUpstreamFailure.
type Generator interface {
	GenerateStructured(ctx Context, req GenerationRequest) (StructuredResult, error)
}

// RateStore (port)
//
// Increment bumps the fixed-window counter for key and returns the count
// within the current window, starting a fresh window when the previous one
// has aged out. Implementations must be safe for concurrent use.
type RateStore interface {
	Increment(ctx Context, key string, now time.Time, window time.Duration) (int, error)
}

// Context is an alias so adapters and usecases share the std context without
// the domain package naming it everywhere.
type Context = context.Context
