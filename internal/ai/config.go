package ai

import (
	"fmt"
	"os"
	"time"
)

// Config holds AI provider configuration. Values come from the app
// configuration file; the API key may also be resolved from the
// provider's conventional environment variable.
type Config struct {
	// Enabled is the master switch that enables AI estimation.
	Enabled bool

	// Provider specifies which AI provider to use: "anthropic", "openai", or "google".
	Provider string

	// APIKey is the API key for the selected provider.
	APIKey string

	// Model specifies which model to use (provider-specific defaults apply if empty).
	Model string

	// MaxTokens limits the response length.
	MaxTokens int

	// Timeout is the maximum time to wait for one estimation round trip.
	Timeout time.Duration

	// Temperature controls randomness (0.0-2.0).
	Temperature float64

	// CacheEnabled enables prompt-keyed response caching (default: true).
	CacheEnabled bool

	// CacheTTL is the cache time-to-live (default: 1 hour).
	CacheTTL time.Duration

	// CacheMaxSize is the maximum number of cached entries (default: 1000).
	CacheMaxSize int

	// RetryMaxAttempts is the maximum number of retry attempts (default: 3).
	RetryMaxAttempts int

	// RetryInitialDelay is the initial delay between retries (default: 1s).
	RetryInitialDelay time.Duration

	// RetryMaxDelay is the maximum delay between retries (default: 10s).
	RetryMaxDelay time.Duration

	// RequestsPerMinute caps the provider call rate. Zero disables limiting.
	RequestsPerMinute int
}

// DefaultConfig returns AI configuration defaults. Estimation is
// disabled until explicitly turned on.
func DefaultConfig() *Config {
	return &Config{
		Enabled:           false,
		Provider:          ProviderAnthropic,
		MaxTokens:         500,
		Timeout:           30 * time.Second,
		Temperature:       0.3,
		CacheEnabled:      true,
		CacheTTL:          1 * time.Hour,
		CacheMaxSize:      1000,
		RetryMaxAttempts:  3,
		RetryInitialDelay: 1 * time.Second,
		RetryMaxDelay:     10 * time.Second,
		RequestsPerMinute: 10,
	}
}

// ResolveAPIKey fills APIKey from the provider's conventional
// environment variable when the config file leaves it empty.
func (c *Config) ResolveAPIKey() {
	if c.APIKey != "" {
		return
	}
	switch c.Provider {
	case ProviderAnthropic:
		c.APIKey = os.Getenv("ANTHROPIC_API_KEY")
	case ProviderOpenAI:
		c.APIKey = os.Getenv("OPENAI_API_KEY")
	case ProviderGoogle:
		c.APIKey = os.Getenv("GEMINI_API_KEY")
	}
}

// IsEnabled returns true if AI estimation is enabled and configured.
func (c *Config) IsEnabled() bool {
	return c.Enabled && c.APIKey != ""
}

// Validate checks that all configuration values are within valid bounds.
// Returns nil if configuration is valid, or an error describing the
// first invalid value found.
func (c *Config) Validate() error {
	switch c.Provider {
	case ProviderAnthropic, ProviderOpenAI, ProviderGoogle:
		// Valid provider
	default:
		return ConfigError("provider", fmt.Sprintf("unsupported provider %q", c.Provider))
	}

	if c.Temperature < 0.0 || c.Temperature > 2.0 {
		return ConfigError("temperature", fmt.Sprintf("%v must be between 0.0 and 2.0", c.Temperature))
	}

	if c.MaxTokens <= 0 {
		return ConfigError("max_tokens", fmt.Sprintf("%d must be positive", c.MaxTokens))
	}

	if c.Timeout <= 0 {
		return ConfigError("timeout", fmt.Sprintf("%v must be positive", c.Timeout))
	}

	if c.CacheEnabled && c.CacheMaxSize <= 0 {
		return ConfigError("cache_max_size", fmt.Sprintf("%d must be positive when cache is enabled", c.CacheMaxSize))
	}

	if c.CacheEnabled && c.CacheTTL <= 0 {
		return ConfigError("cache_ttl", fmt.Sprintf("%v must be positive when cache is enabled", c.CacheTTL))
	}

	if c.RetryMaxAttempts <= 0 {
		return ConfigError("retry_max_attempts", fmt.Sprintf("%d must be positive", c.RetryMaxAttempts))
	}

	if c.RetryInitialDelay <= 0 {
		return ConfigError("retry_initial_delay", fmt.Sprintf("%v must be positive", c.RetryInitialDelay))
	}

	if c.RetryMaxDelay < c.RetryInitialDelay {
		return ConfigError("retry_max_delay", fmt.Sprintf("%v must be >= retry_initial_delay (%v)", c.RetryMaxDelay, c.RetryInitialDelay))
	}

	if c.RequestsPerMinute < 0 {
		return ConfigError("requests_per_minute", fmt.Sprintf("%d must not be negative", c.RequestsPerMinute))
	}

	return nil
}
