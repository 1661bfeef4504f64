// Package gemini implements the Generator port against the Gemini API.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	backoff "github.com/cenkalti/backoff/v4"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"google.golang.org/genai"

	"log/slog"

	"github.com/taracare/askgate/internal/adapter/ai"
	"github.com/taracare/askgate/internal/adapter/ai/tokencount"
	"github.com/taracare/askgate/internal/adapter/observability"
	"github.com/taracare/askgate/internal/config"
	"github.com/taracare/askgate/internal/domain"
)

// responseSchema constrains the model to the structured answer payload.
// topic_ok and answer are required; style_ok and notes are optional.
var responseSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"topic_ok": {Type: genai.TypeBoolean},
		"style_ok": {Type: genai.TypeBoolean},
		"answer":   {Type: genai.TypeString},
		"notes":    {Type: genai.TypeString},
	},
	Required: []string{"topic_ok", "answer"},
}

// Client implements domain.Generator using the Gemini structured-output mode.
type Client struct {
	cfg     config.Config
	system  string
	genc    *genai.Client
	counter *tokencount.Counter
}

// New constructs a Gemini client. The system instruction pins domain,
// language, tone and length for every call; generation parameters come from
// configuration.
func New(ctx context.Context, cfg config.Config, systemInstruction string) (*Client, error) {
	if cfg.GeminiAPIKey == "" {
		return nil, fmt.Errorf("%w: GEMINI_API_KEY missing", domain.ErrInvalidArgument)
	}
	hc := &http.Client{
		Timeout:   cfg.UpstreamTimeout,
		Transport: otelhttp.NewTransport(http.DefaultTransport),
	}
	genc, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     cfg.GeminiAPIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: hc,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}
	return &Client{cfg: cfg, system: systemInstruction, genc: genc, counter: tokencount.DefaultCounter}, nil
}

// GenerateStructured performs one structured generateContent call and parses
// the payload defensively. Unparseable payloads degrade to a synthesized
// style-violation result; only infrastructure faults return an error.
func (c *Client) GenerateStructured(ctx domain.Context, req domain.GenerationRequest) (domain.StructuredResult, error) {
	genCfg := &genai.GenerateContentConfig{
		Temperature:       genai.Ptr(float32(c.cfg.GenTemperature)),
		TopP:              genai.Ptr(float32(c.cfg.GenTopP)),
		MaxOutputTokens:   int32(c.cfg.GenMaxOutputTokens),
		ResponseMIMEType:  "application/json",
		ResponseSchema:    responseSchema,
		SystemInstruction: genai.NewContentFromText(c.system, genai.RoleUser),
	}

	callCtx, cancel := context.WithTimeout(ctx, c.cfg.UpstreamTimeout)
	defer cancel()

	observability.PromptTokensHistogram.Observe(float64(c.counter.CountChatTokens(c.system, req.UserMessage)))

	var raw string
	op := func() error {
		start := time.Now()
		resp, err := c.genc.Models.GenerateContent(callCtx, c.cfg.GeminiModel, genai.Text(req.UserMessage), genCfg)
		observability.AIRequestsTotal.WithLabelValues("gemini", "generate").Inc()
		observability.AIRequestDuration.WithLabelValues("gemini", "generate").Observe(time.Since(start).Seconds())
		if err != nil {
			var apiErr *genai.APIError
			if errors.As(err, &apiErr) {
				if apiErr.Code == http.StatusTooManyRequests || apiErr.Code >= 500 {
					slog.Warn("gemini transient error",
						slog.String("provider", "gemini"),
						slog.Int("status", apiErr.Code),
						slog.String("model", c.cfg.GeminiModel))
					return err
				}
				slog.Error("gemini client error",
					slog.String("provider", "gemini"),
					slog.Int("status", apiErr.Code),
					slog.String("message", apiErr.Message))
				return backoff.Permanent(err)
			}
			// Network-level faults are retryable until the deadline.
			return err
		}
		raw = resp.Text()
		return nil
	}

	expo := backoff.NewExponentialBackOff()
	maxElapsed, initial, maxInterval, multiplier := c.cfg.GetAIBackoffConfig()
	expo.MaxElapsedTime = maxElapsed
	expo.InitialInterval = initial
	expo.MaxInterval = maxInterval
	expo.Multiplier = multiplier

	if err := backoff.Retry(op, backoff.WithContext(expo, callCtx)); err != nil {
		if errors.Is(err, context.DeadlineExceeded) || callCtx.Err() != nil {
			return domain.StructuredResult{}, fmt.Errorf("%w: %v", domain.ErrUpstreamTimeout, err)
		}
		return domain.StructuredResult{}, fmt.Errorf("%w: %v", domain.ErrUpstreamFailure, err)
	}

	res, parsed := ai.ParseStructured(raw)
	if !parsed {
		slog.Warn("gemini payload not parseable, degraded to style violation",
			slog.String("model", c.cfg.GeminiModel),
			slog.Int("raw_len", len(raw)))
	}
	return res, nil
}
