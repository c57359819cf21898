package generation

import (
	"os"
	"strconv"
	"time"
)

// maxTimeout is the hard ceiling on a single generation call. A slow
// remote endpoint must never hold a check-in request longer than this.
const maxTimeout = 8 * time.Second

// Config holds all configuration for the remote generation endpoint.
// An empty Endpoint is a valid, first-class state: every check-in is
// answered by the deterministic fallback.
type Config struct {
	Endpoint    string
	APIKey      string
	MaxTokens   int
	Temperature float64
	Timeout     time.Duration
	LogCalls    bool
}

// DefaultConfig returns a Config with the endpoint unset.
func DefaultConfig() Config {
	return Config{
		Endpoint:    "",
		APIKey:      "",
		MaxTokens:   512,
		Temperature: 0.7,
		Timeout:     maxTimeout,
		LogCalls:    false,
	}
}

// LoadConfig reads generation configuration from environment variables,
// falling back to defaults for any unset values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("PRAESTARA_LLM_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("PRAESTARA_LLM_API_KEY"); v != "" {
		cfg.APIKey = v
	}
	if v := os.Getenv("PRAESTARA_LLM_MAX_TOKENS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxTokens = n
		}
	}
	if v := os.Getenv("PRAESTARA_LLM_TEMPERATURE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 {
			cfg.Temperature = f
		}
	}
	if v := os.Getenv("PRAESTARA_LLM_TIMEOUT_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Timeout = time.Duration(n) * time.Second
		}
	}
	if v := os.Getenv("PRAESTARA_LLM_LOG_CALLS"); v != "" {
		cfg.LogCalls, _ = strconv.ParseBool(v)
	}

	return cfg
}

// EffectiveTimeout returns the configured timeout capped at maxTimeout.
func (c Config) EffectiveTimeout() time.Duration {
	if c.Timeout <= 0 || c.Timeout > maxTimeout {
		return maxTimeout
	}
	return c.Timeout
}
