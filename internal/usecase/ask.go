// Package usecase contains the guarded answer pipeline.
package usecase

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/taracare/askgate/internal/domain"
	"github.com/taracare/askgate/pkg/textx"
)

// RateAdmitter decides whether a client may issue another request.
// Implementations never error; a broken store fails open.
type RateAdmitter interface {
	Admit(ctx domain.Context, clientKey string) bool
}

// Outcome labels the terminal state of one request for logs and metrics.
type Outcome string

const (
	OutcomeAnswered Outcome = "answered"
	OutcomeOffTopic Outcome = "off_topic"
	OutcomeFallback Outcome = "fallback"
)

// Answer is the pipeline's terminal value for a request that did not error.
// Text is always non-empty.
type Answer struct {
	Text      string
	Outcome   Outcome
	Refined   bool
	Truncated bool
	Words     int
}

// AskService sequences the pipeline for one request/response cycle:
// rate limit, topic gate, generation, validation, optional single refinement,
// clamp. Content-level irregularities become safe Thai text; only input,
// throttling and infrastructure faults surface as errors.
type AskService struct {
	Gen     domain.Generator
	Gate    *TopicGate
	Limiter RateAdmitter

	MinRefineWords int
	MaxRefineWords int
	MinClampWords  int
	MaxClampWords  int
}

// NewAskService constructs an AskService with its dependencies and word bands.
func NewAskService(gen domain.Generator, gate *TopicGate, limiter RateAdmitter, minRefine, maxRefine, minClamp, maxClamp int) AskService {
	return AskService{
		Gen:            gen,
		Gate:           gate,
		Limiter:        limiter,
		MinRefineWords: minRefine,
		MaxRefineWords: maxRefine,
		MinClampWords:  minClamp,
		MaxClampWords:  maxClamp,
	}
}

// Answer runs one question through the pipeline.
//
// Errors: domain.ErrInvalidArgument for an empty question,
// domain.ErrRateLimited when throttled, domain.ErrUpstreamTimeout or
// domain.ErrUpstreamFailure when the provider misbehaves at either the first
// or the refinement attempt. Everything else resolves to a bounded answer.
func (s AskService) Answer(ctx domain.Context, clientKey, prompt string) (Answer, error) {
	question := strings.TrimSpace(prompt)
	if question == "" {
		return Answer{}, fmt.Errorf("%w: empty prompt", domain.ErrInvalidArgument)
	}

	if !s.Limiter.Admit(ctx, clientKey) {
		slog.Warn("request throttled", slog.String("client_key", clientKey))
		return Answer{}, fmt.Errorf("%w: too many requests", domain.ErrRateLimited)
	}

	// Hard guard before any upstream call.
	if !s.Gate.IsOnTopic(question) {
		slog.Info("question rejected by topic gate", slog.Int("question_len", len(question)))
		return Answer{Text: MsgOffTopicGate, Outcome: OutcomeOffTopic}, nil
	}

	first, err := s.Gen.GenerateStructured(ctx, domain.GenerationRequest{UserMessage: BuildUserMessage(question)})
	if err != nil {
		return Answer{}, fmt.Errorf("generate: %w", err)
	}

	verdict, wordCount := Validate(first, s.MinRefineWords, s.MaxRefineWords)
	slog.Debug("first pass validated",
		slog.String("verdict", verdict.String()),
		slog.Int("word_count", wordCount),
		slog.Bool("style_ok", first.StyleOK))

	// The model's own topic judgment is authoritative and terminal;
	// no refinement is attempted for off-topic results.
	if verdict == domain.VerdictRejectedOffTopic {
		return Answer{Text: MsgOffTopicModel, Outcome: OutcomeOffTopic}, nil
	}

	answer := strings.TrimSpace(first.Answer)
	refined := false
	if verdict == domain.VerdictNeedsRefinement {
		res, err := s.Gen.GenerateStructured(ctx, domain.GenerationRequest{UserMessage: BuildRefineMessage(question)})
		if err != nil {
			return Answer{}, fmt.Errorf("refine: %w", err)
		}
		refined = true
		// The refined result replaces the first answer only when it stays
		// on topic and actually carries text; otherwise the pre-refinement
		// answer survives and may still hit the apology floor below.
		if res.TopicOK && strings.TrimSpace(res.Answer) != "" {
			answer = strings.TrimSpace(res.Answer)
		}
		slog.Debug("refinement pass done", slog.Bool("adopted", res.TopicOK && strings.TrimSpace(res.Answer) != ""))
	}

	clamped := ClampWords(answer, s.MinClampWords, s.MaxClampWords)
	if clamped == "" {
		return Answer{Text: MsgApologyFallback, Outcome: OutcomeFallback, Refined: refined}, nil
	}
	return Answer{
		Text:      clamped,
		Outcome:   OutcomeAnswered,
		Refined:   refined,
		Truncated: clamped != answer,
		Words:     textx.WordCount(clamped),
	}, nil
}
