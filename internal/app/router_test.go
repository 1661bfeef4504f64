package app_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taracare/askgate/internal/adapter/httpserver"
	"github.com/taracare/askgate/internal/adapter/ratelimit"
	"github.com/taracare/askgate/internal/app"
	"github.com/taracare/askgate/internal/config"
	"github.com/taracare/askgate/internal/domain"
	"github.com/taracare/askgate/internal/usecase"
)

func TestParseOrigins(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{in: "", want: []string{"*"}},
		{in: "*", want: []string{"*"}},
		{in: "https://a.example", want: []string{"https://a.example"}},
		{in: "https://a.example, https://b.example", want: []string{"https://a.example", "https://b.example"}},
		{in: " , , ", want: []string{"*"}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, app.ParseOrigins(tt.in), "input %q", tt.in)
	}
}

type gateOnlyGen struct{}

func (gateOnlyGen) GenerateStructured(domain.Context, domain.GenerationRequest) (domain.StructuredResult, error) {
	return domain.StructuredResult{TopicOK: true, StyleOK: true, Answer: strings.Repeat("word ", 100)}, nil
}

func newRouter(t *testing.T) http.Handler {
	t.Helper()
	cfg := config.Config{
		AppEnv:           "test",
		GeminiModel:      "gemini-2.5-flash",
		RateWindow:       10 * time.Second,
		RateMaxHits:      100,
		RateLimitPerMin:  1000,
		CORSAllowOrigins: "*",
	}
	gate := usecase.NewTopicGate([]string{"tarantula"})
	limiter := ratelimit.NewLimiter(ratelimit.NewMemoryStore(), cfg.RateMaxHits, cfg.RateWindow)
	ask := usecase.NewAskService(gateOnlyGen{}, gate, limiter, 70, 190, 70, 180)
	return app.BuildRouter(cfg, httpserver.NewServer(cfg, ask, nil))
}

func TestRouter_Routes(t *testing.T) {
	h := newRouter(t)

	t.Run("healthz", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("api health", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"ok": true}`, w.Body.String())
	})

	t.Run("readyz", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("ask end to end", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodPost, "/api/ai", strings.NewReader(`{"prompt": "tarantula substrate"}`))
		r.RemoteAddr = "192.0.2.9:51000"
		w := httptest.NewRecorder()
		h.ServeHTTP(w, r)
		require.Equal(t, http.StatusOK, w.Code)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp["text"])
		assert.NotEmpty(t, w.Header().Get("X-Request-Id"))
	})

	t.Run("security headers on every response", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/health", nil))
		assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
		assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	})

	t.Run("unknown route", func(t *testing.T) {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nope", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
