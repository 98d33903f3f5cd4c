// Package config provides the application configuration: YAML parsing,
// defaults, and validation for database, cycle, AI, and logging settings.
package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
	gormlogger "gorm.io/gorm/logger"

	"github.com/cyclewise/cyclewise/internal/ai"
)

// Duration wraps time.Duration so YAML values like "30s" or "1h" parse
// through time.ParseDuration.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Config represents the complete application configuration
type Config struct {
	Version  int            `yaml:"version"`
	Database DatabaseConfig `yaml:"database,omitempty"`
	Cycle    CycleConfig    `yaml:"cycle,omitempty"`
	AI       AIConfig       `yaml:"ai,omitempty"`
	Logging  LoggingConfig  `yaml:"logging,omitempty"`
}

// DatabaseConfig defines the SQLite storage settings
type DatabaseConfig struct {
	Path     string `yaml:"path,omitempty"`      // Database file path; default: ~/.cyclewise/cyclewise.db
	LogLevel string `yaml:"log_level,omitempty"` // GORM log level: silent, error, warn, info
}

// GormLogLevel translates the configured level to the GORM logger level.
func (d *DatabaseConfig) GormLogLevel() gormlogger.LogLevel {
	switch d.LogLevel {
	case "silent":
		return gormlogger.Silent
	case "error":
		return gormlogger.Error
	case "info":
		return gormlogger.Info
	default:
		return gormlogger.Warn
	}
}

// CycleConfig bounds a plausible cycle length, in days
type CycleConfig struct {
	MinLengthDays int `yaml:"min_length_days,omitempty"` // Default: 21
	MaxLengthDays int `yaml:"max_length_days,omitempty"` // Default: 35
}

// AIConfig defines the external estimation settings
type AIConfig struct {
	Enabled           bool        `yaml:"enabled,omitempty"`
	Provider          string      `yaml:"provider,omitempty"` // anthropic, openai, or google
	APIKey            string      `yaml:"api_key,omitempty"`  // Falls back to the provider's env var
	Model             string      `yaml:"model,omitempty"`
	MaxTokens         int         `yaml:"max_tokens,omitempty"`
	Timeout           Duration    `yaml:"timeout,omitempty"`
	Temperature       float64     `yaml:"temperature,omitempty"`
	Cache             CacheConfig `yaml:"cache,omitempty"`
	Retry             RetryConfig `yaml:"retry,omitempty"`
	RequestsPerMinute int         `yaml:"requests_per_minute,omitempty"`
}

// CacheConfig defines AI response cache settings
type CacheConfig struct {
	Enabled *bool    `yaml:"enabled,omitempty"` // Default: true
	TTL     Duration `yaml:"ttl,omitempty"`
	MaxSize int      `yaml:"max_size,omitempty"`
}

// RetryConfig defines AI retry behavior
type RetryConfig struct {
	MaxAttempts  int      `yaml:"max_attempts,omitempty"`
	InitialDelay Duration `yaml:"initial_delay,omitempty"`
	MaxDelay     Duration `yaml:"max_delay,omitempty"`
}

// LoggingConfig defines log output settings
type LoggingConfig struct {
	Level  string `yaml:"level,omitempty"`  // trace, debug, info, warn, error
	Format string `yaml:"format,omitempty"` // text or json
}

// ToAIConfig maps the YAML AI section onto the ai package configuration,
// resolving the API key from the environment when the file omits it.
func (c *Config) ToAIConfig() *ai.Config {
	cfg := ai.DefaultConfig()

	cfg.Enabled = c.AI.Enabled
	if c.AI.Provider != "" {
		cfg.Provider = c.AI.Provider
	}
	cfg.APIKey = c.AI.APIKey
	cfg.Model = c.AI.Model
	if c.AI.MaxTokens > 0 {
		cfg.MaxTokens = c.AI.MaxTokens
	}
	if c.AI.Timeout > 0 {
		cfg.Timeout = time.Duration(c.AI.Timeout)
	}
	if c.AI.Temperature > 0 {
		cfg.Temperature = c.AI.Temperature
	}
	if c.AI.Cache.Enabled != nil {
		cfg.CacheEnabled = *c.AI.Cache.Enabled
	}
	if c.AI.Cache.TTL > 0 {
		cfg.CacheTTL = time.Duration(c.AI.Cache.TTL)
	}
	if c.AI.Cache.MaxSize > 0 {
		cfg.CacheMaxSize = c.AI.Cache.MaxSize
	}
	if c.AI.Retry.MaxAttempts > 0 {
		cfg.RetryMaxAttempts = c.AI.Retry.MaxAttempts
	}
	if c.AI.Retry.InitialDelay > 0 {
		cfg.RetryInitialDelay = time.Duration(c.AI.Retry.InitialDelay)
	}
	if c.AI.Retry.MaxDelay > 0 {
		cfg.RetryMaxDelay = time.Duration(c.AI.Retry.MaxDelay)
	}
	if c.AI.RequestsPerMinute > 0 {
		cfg.RequestsPerMinute = c.AI.RequestsPerMinute
	}

	cfg.ResolveAPIKey()
	return cfg
}
