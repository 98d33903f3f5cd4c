package config

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedVersion indicates the configuration version is not supported
	ErrUnsupportedVersion = errors.New("unsupported config version")
	// ErrEmptyDatabasePath indicates the database path is empty
	ErrEmptyDatabasePath = errors.New("database path cannot be empty")
	// ErrInvalidCycleBounds indicates the cycle length bounds are not usable
	ErrInvalidCycleBounds = errors.New("invalid cycle length bounds")
	// ErrInvalidLogLevel indicates an unknown logging level
	ErrInvalidLogLevel = errors.New("invalid log level")
	// ErrInvalidLogFormat indicates an unknown logging format
	ErrInvalidLogFormat = errors.New("invalid log format")
)

// Validate checks if the configuration is valid. Defaults are expected
// to have been applied already.
func (c *Config) Validate() error {
	if c.Version != DefaultVersion {
		return fmt.Errorf("%w: %d (supported: %d)", ErrUnsupportedVersion, c.Version, DefaultVersion)
	}

	if c.Database.Path == "" {
		return ErrEmptyDatabasePath
	}

	if c.Cycle.MinLengthDays <= 0 || c.Cycle.MaxLengthDays <= 0 {
		return fmt.Errorf("%w: bounds must be positive (min=%d, max=%d)",
			ErrInvalidCycleBounds, c.Cycle.MinLengthDays, c.Cycle.MaxLengthDays)
	}
	if c.Cycle.MinLengthDays > c.Cycle.MaxLengthDays {
		return fmt.Errorf("%w: min %d exceeds max %d",
			ErrInvalidCycleBounds, c.Cycle.MinLengthDays, c.Cycle.MaxLengthDays)
	}

	switch c.Logging.Level {
	case "trace", "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Logging.Level)
	}

	switch c.Logging.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: %q", ErrInvalidLogFormat, c.Logging.Format)
	}

	// The AI section validates through the ai package, which owns the
	// provider-specific rules.
	if c.AI.Enabled {
		if err := c.ToAIConfig().Validate(); err != nil {
			return err
		}
	}

	return nil
}
