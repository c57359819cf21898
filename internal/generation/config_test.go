package generation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg := LoadConfig()

	assert.Equal(t, "", cfg.Endpoint)
	assert.Equal(t, 512, cfg.MaxTokens)
	assert.Equal(t, 0.7, cfg.Temperature)
	assert.Equal(t, 8*time.Second, cfg.Timeout)
	assert.False(t, cfg.LogCalls)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("PRAESTARA_LLM_ENDPOINT", "http://localhost:9000/generate")
	t.Setenv("PRAESTARA_LLM_API_KEY", "k")
	t.Setenv("PRAESTARA_LLM_MAX_TOKENS", "1024")
	t.Setenv("PRAESTARA_LLM_TEMPERATURE", "0.2")
	t.Setenv("PRAESTARA_LLM_TIMEOUT_SECONDS", "4")
	t.Setenv("PRAESTARA_LLM_LOG_CALLS", "true")

	cfg := LoadConfig()

	assert.Equal(t, "http://localhost:9000/generate", cfg.Endpoint)
	assert.Equal(t, "k", cfg.APIKey)
	assert.Equal(t, 1024, cfg.MaxTokens)
	assert.Equal(t, 0.2, cfg.Temperature)
	assert.Equal(t, 4*time.Second, cfg.Timeout)
	assert.True(t, cfg.LogCalls)
}

func TestLoadConfig_IgnoresInvalidValues(t *testing.T) {
	t.Setenv("PRAESTARA_LLM_MAX_TOKENS", "zero")
	t.Setenv("PRAESTARA_LLM_TIMEOUT_SECONDS", "-3")

	cfg := LoadConfig()

	assert.Equal(t, 512, cfg.MaxTokens)
	assert.Equal(t, 8*time.Second, cfg.Timeout)
}

func TestEffectiveTimeout_CappedAtEightSeconds(t *testing.T) {
	cfg := DefaultConfig()

	cfg.Timeout = 30 * time.Second
	assert.Equal(t, 8*time.Second, cfg.EffectiveTimeout())

	cfg.Timeout = 3 * time.Second
	assert.Equal(t, 3*time.Second, cfg.EffectiveTimeout())

	cfg.Timeout = 0
	assert.Equal(t, 8*time.Second, cfg.EffectiveTimeout())
}
