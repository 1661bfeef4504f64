// Package config defines configuration parsing and helpers.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
)

// Config holds all application configuration parsed from environment variables.
type Config struct {
	AppEnv string `env:"APP_ENV" envDefault:"dev"`
	Port   int    `env:"PORT" envDefault:"8080"`

	// Upstream generative-language provider (Gemini API).
	GeminiAPIKey string `env:"GEMINI_API_KEY"`
	GeminiModel  string `env:"GEMINI_MODEL" envDefault:"gemini-2.5-flash"`
	// SystemPrompt overrides the built-in Thai system instruction when set.
	SystemPrompt string `env:"SYSTEM_PROMPT"`

	// Generation parameters. The output-token ceiling is tuned to the target
	// word band; it is configuration, never derived at runtime.
	GenTemperature     float64       `env:"GEN_TEMPERATURE" envDefault:"0.25"`
	GenTopP            float64       `env:"GEN_TOP_P" envDefault:"0.9"`
	GenMaxOutputTokens int           `env:"GEN_MAX_OUTPUT_TOKENS" envDefault:"320"`
	UpstreamTimeout    time.Duration `env:"UPSTREAM_TIMEOUT" envDefault:"30s"`

	// Word-count bands. The refine band is intentionally looser than the
	// final clamp band; both are independent knobs.
	MinRefineWords int `env:"MIN_REFINE_WORDS" envDefault:"70"`
	MaxRefineWords int `env:"MAX_REFINE_WORDS" envDefault:"190"`
	MinClampWords  int `env:"MIN_CLAMP_WORDS" envDefault:"70"`
	MaxClampWords  int `env:"MAX_CLAMP_WORDS" envDefault:"180"`

	// Product rate limiter (fixed window per client key).
	RateWindow  time.Duration `env:"RATE_WINDOW" envDefault:"10s"`
	RateMaxHits int           `env:"RATE_MAX_HITS" envDefault:"10"`
	// RedisURL switches the rate-limit store from in-memory to Redis so
	// multiple replicas share one window. Empty keeps the in-process map.
	RedisURL string `env:"REDIS_URL"`

	// Router-level coarse guard (per IP per minute) in front of the
	// product limiter.
	RateLimitPerMin int `env:"RATE_LIMIT_PER_MIN" envDefault:"30"`

	// TopicKeywordsFile points at a YAML file with the topic vocabulary.
	// Empty uses the built-in list.
	TopicKeywordsFile string `env:"TOPIC_KEYWORDS_FILE"`

	CORSAllowOrigins string `env:"CORS_ALLOW_ORIGINS" envDefault:"*"`

	// AI backoff configuration for transient upstream faults.
	AIBackoffMaxElapsedTime  time.Duration `env:"AI_BACKOFF_MAX_ELAPSED_TIME" envDefault:"20s"`
	AIBackoffInitialInterval time.Duration `env:"AI_BACKOFF_INITIAL_INTERVAL" envDefault:"500ms"`
	AIBackoffMaxInterval     time.Duration `env:"AI_BACKOFF_MAX_INTERVAL" envDefault:"5s"`
	AIBackoffMultiplier      float64       `env:"AI_BACKOFF_MULTIPLIER" envDefault:"1.5"`

	ServerShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"30s"`
	HTTPReadTimeout       time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"15s"`
	HTTPWriteTimeout      time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"60s"`
	HTTPIdleTimeout       time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"60s"`

	OTLPEndpoint    string `env:"OTEL_EXPORTER_OTLP_ENDPOINT" envDefault:""`
	OTELServiceName string `env:"OTEL_SERVICE_NAME" envDefault:"taracare-askgate"`
}

// Load parses environment variables into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("op=config.Load: %w", err)
	}
	return cfg, nil
}

// HasSystemPromptOverride reports whether a custom system instruction is configured.
func (c Config) HasSystemPromptOverride() bool { return strings.TrimSpace(c.SystemPrompt) != "" }

// IsDev reports whether the app is running in development mode.
func (c Config) IsDev() bool { return strings.ToLower(c.AppEnv) == "dev" }

// IsProd reports whether the app is running in production mode.
func (c Config) IsProd() bool { return strings.ToLower(c.AppEnv) == "prod" }

// IsTest reports whether the app is running in test mode.
func (c Config) IsTest() bool { return strings.ToLower(c.AppEnv) == "test" }

// GetAIBackoffConfig returns backoff settings appropriate for the current
// environment. Tests use short intervals so retries never dominate runtime.
func (c Config) GetAIBackoffConfig() (maxElapsedTime, initialInterval, maxInterval time.Duration, multiplier float64) {
	if c.IsTest() {
		return 2 * time.Second, 50 * time.Millisecond, 500 * time.Millisecond, 2.0
	}
	return c.AIBackoffMaxElapsedTime, c.AIBackoffInitialInterval, c.AIBackoffMaxInterval, c.AIBackoffMultiplier
}
