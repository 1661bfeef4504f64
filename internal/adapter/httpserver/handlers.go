package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"log/slog"

	"github.com/taracare/askgate/internal/adapter/observability"
	"github.com/taracare/askgate/internal/adapter/ratelimit"
	"github.com/taracare/askgate/internal/config"
	"github.com/taracare/askgate/internal/domain"
	"github.com/taracare/askgate/internal/usecase"
)

// Server aggregates handler dependencies.
type Server struct {
	Cfg config.Config
	Ask usecase.AskService
	// RedisCheck probes the shared rate store when one is configured; nil
	// when the in-memory store is active.
	RedisCheck func(ctx context.Context) error
}

// NewServer constructs an HTTP server with all handlers wired.
func NewServer(cfg config.Config, ask usecase.AskService, redisCheck func(context.Context) error) *Server {
	return &Server{Cfg: cfg, Ask: ask, RedisCheck: redisCheck}
}

var (
	vldOnce sync.Once
	vld     *validator.Validate
)

func getValidator() *validator.Validate {
	vldOnce.Do(func() { vld = validator.New() })
	return vld
}

// AskHandler answers one free-text question through the guarded pipeline.
func (s *Server) AskHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Cap body size the way the original JSON layer did.
		r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB
		var req struct {
			Prompt string `json:"prompt" validate:"required"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			var maxErr *http.MaxBytesError
			if errors.As(err, &maxErr) {
				writeJSON(w, http.StatusRequestEntityTooLarge, errorEnvelope{Error: "request body too large"})
				return
			}
			writeError(w, r, fmt.Errorf("%w: invalid json", domain.ErrInvalidArgument))
			return
		}
		if err := getValidator().Struct(req); err != nil {
			writeError(w, r, fmt.Errorf("%w: empty prompt", domain.ErrInvalidArgument))
			return
		}

		ans, err := s.Ask.Answer(r.Context(), ratelimit.ClientKey(r), req.Prompt)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrRateLimited):
				observability.QuestionsTotal.WithLabelValues("throttled").Inc()
			case errors.Is(err, domain.ErrInvalidArgument):
				// input errors are not pipeline outcomes
			default:
				observability.QuestionsTotal.WithLabelValues("error").Inc()
				LoggerFrom(r).Error("ask pipeline failed", slog.Any("error", err))
			}
			writeError(w, r, err)
			return
		}

		observability.QuestionsTotal.WithLabelValues(string(ans.Outcome)).Inc()
		if ans.Refined {
			observability.RefinementsTotal.Inc()
		}
		if ans.Truncated {
			observability.ClampTruncationsTotal.Inc()
		}
		if ans.Outcome == usecase.OutcomeAnswered {
			observability.AnswerWordsHistogram.Observe(float64(ans.Words))
		}
		writeJSON(w, http.StatusOK, map[string]string{"text": ans.Text})
	}
}

// HealthHandler reports liveness in the shape the web client polls.
func (s *Server) HealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
	}
}

// DebugHandler echoes the active configuration for operators: model id,
// whether a system-instruction override is set, the CORS allowlist and the
// rate-limit window. Never exposes secrets.
func (s *Server) DebugHandler(origins []string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"model":             s.Cfg.GeminiModel,
			"has_system_prompt": s.Cfg.HasSystemPromptOverride(),
			"cors_origin":       origins,
			"rate_limit": map[string]any{
				"window_ms": s.Cfg.RateWindow.Milliseconds(),
				"max_hits":  s.Cfg.RateMaxHits,
			},
			"ts": time.Now().UTC().Format(time.RFC3339Nano),
		})
	}
}

// ReadyzHandler probes the shared rate store when configured.
func (s *Server) ReadyzHandler() http.HandlerFunc {
	type check struct {
		Name    string `json:"name"`
		OK      bool   `json:"ok"`
		Details string `json:"details,omitempty"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		checks := make([]check, 0, 1)
		if s.RedisCheck != nil {
			if err := s.RedisCheck(ctx); err != nil {
				checks = append(checks, check{Name: "redis", OK: false, Details: err.Error()})
			} else {
				checks = append(checks, check{Name: "redis", OK: true})
			}
		}
		st := http.StatusOK
		for _, c := range checks {
			if !c.OK {
				st = http.StatusServiceUnavailable
				break
			}
		}
		writeJSON(w, st, map[string]any{"checks": checks})
	}
}
