// Command server starts the TaraCare guarded answer gateway.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/taracare/askgate/internal/adapter/ai/gemini"
	httpserver "github.com/taracare/askgate/internal/adapter/httpserver"
	"github.com/taracare/askgate/internal/adapter/observability"
	"github.com/taracare/askgate/internal/adapter/ratelimit"
	"github.com/taracare/askgate/internal/app"
	"github.com/taracare/askgate/internal/config"
	"github.com/taracare/askgate/internal/domain"
	"github.com/taracare/askgate/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := observability.SetupLogger(cfg)
	slog.SetDefault(logger)

	observability.InitMetrics()

	shutdownTracer, err := observability.SetupTracing(cfg)
	if err != nil {
		slog.Error("failed to setup tracing", slog.Any("error", err))
	}
	defer func() {
		if shutdownTracer != nil {
			_ = shutdownTracer(context.Background())
		}
	}()

	ctx := context.Background()

	// Topic vocabulary: built-in list unless a YAML file is configured.
	keywords, err := config.LoadTopicKeywords(cfg.TopicKeywordsFile)
	if err != nil {
		slog.Error("keyword list load failed", slog.Any("error", err))
		os.Exit(1)
	}
	gate := usecase.NewTopicGate(keywords)

	// Rate store: Redis when configured so replicas share windows,
	// otherwise the in-process map.
	var store domain.RateStore
	var redisCheck func(context.Context) error
	if cfg.RedisURL != "" {
		rs, err := ratelimit.NewRedisStore(cfg.RedisURL)
		if err != nil {
			slog.Error("redis rate store init failed", slog.Any("error", err))
			os.Exit(1)
		}
		store = rs
		redisCheck = rs.Ping
		slog.Info("rate limiter using redis store")
	} else {
		store = ratelimit.NewMemoryStore()
		slog.Info("rate limiter using in-memory store")
	}
	limiter := ratelimit.NewLimiter(store, cfg.RateMaxHits, cfg.RateWindow)

	systemInstruction := usecase.DefaultSystemInstruction
	if strings.TrimSpace(cfg.SystemPrompt) != "" {
		systemInstruction = strings.TrimSpace(cfg.SystemPrompt)
	}

	gen, err := gemini.New(ctx, cfg, systemInstruction)
	if err != nil {
		slog.Error("gemini client init failed", slog.Any("error", err))
		os.Exit(1)
	}

	ask := usecase.NewAskService(gen, gate, limiter,
		cfg.MinRefineWords, cfg.MaxRefineWords, cfg.MinClampWords, cfg.MaxClampWords)

	srv := httpserver.NewServer(cfg, ask, redisCheck)
	handler := app.BuildRouter(cfg, srv)

	srvHTTP := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           handler,
		ReadTimeout:       cfg.HTTPReadTimeout,
		WriteTimeout:      cfg.HTTPWriteTimeout,
		IdleTimeout:       cfg.HTTPIdleTimeout,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("http server starting",
			slog.Int("port", cfg.Port),
			slog.String("model", cfg.GeminiModel))
		errCh <- srvHTTP.ListenAndServe()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		slog.Info("shutdown signal received", slog.String("signal", sig.String()))
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", slog.Any("error", err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ServerShutdownTimeout)
	defer cancel()
	_ = srvHTTP.Shutdown(shutdownCtx)
}
