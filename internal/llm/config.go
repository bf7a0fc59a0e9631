package llm

import (
	"fmt"
	"os"
	"time"
)

// Config holds all LLM provider configuration.
type Config struct {
	// Provider selects which vendor to use.
	// Values: "anthropic", "openai", "gemini", "mock".
	Provider string

	// APIKey authenticates against the selected vendor.
	APIKey string

	// Model is a friendly model name or a raw vendor model ID.
	Model string

	// BaseURL optionally overrides the OpenAI endpoint for
	// OpenAI-compatible gateways.
	BaseURL string

	Retry RetryConfig

	// Timeout is the maximum duration for a single request including
	// retries.
	Timeout time.Duration
}

// RetryConfig configures retry behavior for transient failures.
type RetryConfig struct {
	MaxAttempts int
	InitialWait time.Duration
	MaxWait     time.Duration
	Multiplier  float64
}

// DefaultConfig returns a Config with sensible defaults and no provider
// selected.
func DefaultConfig() Config {
	return Config{
		Retry: RetryConfig{
			MaxAttempts: 3,
			InitialWait: 1 * time.Second,
			MaxWait:     10 * time.Second,
			Multiplier:  2.0,
		},
		Timeout: 30 * time.Second,
	}
}

// ConfigFromEnv builds a Config from LINGODRILL_LLM_* variables, falling
// back to the vendors' conventional key variables when no explicit
// provider is set. ok is false when no usable configuration was found.
func ConfigFromEnv() (Config, bool) {
	cfg := DefaultConfig()

	cfg.Provider = os.Getenv("LINGODRILL_LLM_PROVIDER")
	cfg.APIKey = os.Getenv("LINGODRILL_LLM_API_KEY")
	cfg.Model = os.Getenv("LINGODRILL_LLM_MODEL")
	cfg.BaseURL = os.Getenv("LINGODRILL_LLM_BASE_URL")

	if cfg.Provider != "" {
		return cfg, true
	}

	// Probe the standard vendor key variables in priority order.
	probes := []struct {
		env      string
		provider string
	}{
		{"GEMINI_API_KEY", "gemini"},
		{"OPENAI_API_KEY", "openai"},
		{"ANTHROPIC_API_KEY", "anthropic"},
	}
	for _, p := range probes {
		if k := os.Getenv(p.env); k != "" {
			cfg.Provider = p.provider
			cfg.APIKey = k
			return cfg, true
		}
	}

	return Config{}, false
}

// Validate checks that the selected provider has its required API key set.
func (c Config) Validate() error {
	switch c.Provider {
	case "anthropic", "openai", "gemini":
		if c.APIKey == "" {
			return fmt.Errorf("an API key is required for the %s provider", c.Provider)
		}
	case "mock":
		// No API key needed.
	default:
		return fmt.Errorf("unknown LLM provider: %q", c.Provider)
	}
	return nil
}
