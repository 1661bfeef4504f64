package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.AppEnv)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "gemini-2.5-flash", cfg.GeminiModel)
	assert.InDelta(t, 0.25, cfg.GenTemperature, 1e-9)
	assert.InDelta(t, 0.9, cfg.GenTopP, 1e-9)
	assert.Equal(t, 320, cfg.GenMaxOutputTokens)
	assert.Equal(t, 10*time.Second, cfg.RateWindow)
	assert.Equal(t, 10, cfg.RateMaxHits)
	assert.Equal(t, 70, cfg.MinRefineWords)
	assert.Equal(t, 190, cfg.MaxRefineWords)
	assert.Equal(t, 70, cfg.MinClampWords)
	assert.Equal(t, 180, cfg.MaxClampWords)
	assert.Equal(t, "*", cfg.CORSAllowOrigins)
	assert.False(t, cfg.HasSystemPromptOverride())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("PORT", "9090")
	t.Setenv("RATE_WINDOW", "30s")
	t.Setenv("RATE_MAX_HITS", "5")
	t.Setenv("SYSTEM_PROMPT", "custom instruction")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsProd())
	assert.Equal(t, 9090, cfg.Port)
	assert.Equal(t, 30*time.Second, cfg.RateWindow)
	assert.Equal(t, 5, cfg.RateMaxHits)
	assert.True(t, cfg.HasSystemPromptOverride())
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
}

func TestEnvHelpers(t *testing.T) {
	assert.True(t, Config{AppEnv: "dev"}.IsDev())
	assert.True(t, Config{AppEnv: "DEV"}.IsDev())
	assert.True(t, Config{AppEnv: "prod"}.IsProd())
	assert.True(t, Config{AppEnv: "test"}.IsTest())
	assert.False(t, Config{AppEnv: "prod"}.IsDev())
}

func TestGetAIBackoffConfig_TestEnvShortens(t *testing.T) {
	cfg := Config{
		AppEnv:                   "test",
		AIBackoffMaxElapsedTime:  20 * time.Second,
		AIBackoffInitialInterval: 500 * time.Millisecond,
	}
	maxElapsed, initial, _, _ := cfg.GetAIBackoffConfig()
	assert.Less(t, maxElapsed, cfg.AIBackoffMaxElapsedTime)
	assert.Less(t, initial, cfg.AIBackoffInitialInterval)

	cfg.AppEnv = "prod"
	maxElapsed, initial, _, _ = cfg.GetAIBackoffConfig()
	assert.Equal(t, cfg.AIBackoffMaxElapsedTime, maxElapsed)
	assert.Equal(t, cfg.AIBackoffInitialInterval, initial)
}
