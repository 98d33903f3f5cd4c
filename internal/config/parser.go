package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	// configLoadMaxRetries is the maximum number of attempts to load the config file
	configLoadMaxRetries = 2
	// configLoadRetryDelay is the delay between retry attempts
	configLoadRetryDelay = 100 * time.Millisecond
)

// Load reads and parses a configuration file from the given path.
// It includes retry logic for transient I/O errors (e.g., file being
// modified by an editor during read).
func Load(path string) (*Config, error) {
	var lastErr error
	for attempt := 1; attempt <= configLoadMaxRetries; attempt++ {
		cfg, err := loadOnce(path)
		if err == nil {
			return cfg, nil
		}

		lastErr = err

		// Don't retry semantic/validation errors - only I/O and parsing errors
		if !isTransientConfigError(err) {
			return nil, err
		}

		if attempt < configLoadMaxRetries {
			time.Sleep(configLoadRetryDelay)
		}
	}

	return nil, lastErr
}

// loadOnce performs a single attempt to load and parse the config file
func loadOnce(path string) (*Config, error) {
	file, err := os.Open(path) //#nosec G304 -- Path is user-provided config file
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return LoadFromReader(file)
}

// LoadFromReader parses configuration from an io.Reader
func LoadFromReader(reader io.Reader) (*Config, error) {
	config := &Config{}

	decoder := yaml.NewDecoder(reader)
	decoder.KnownFields(true) // Strict parsing - fail on unknown fields

	if err := decoder.Decode(config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	applyDefaults(config)

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// isTransientConfigError determines if an error is likely transient and worth retrying.
// Validation errors are not retried as they require config changes.
func isTransientConfigError(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, ErrUnsupportedVersion) ||
		errors.Is(err, ErrInvalidCycleBounds) ||
		errors.Is(err, ErrInvalidLogLevel) ||
		errors.Is(err, ErrInvalidLogFormat) {
		return false
	}

	// Retry I/O and parsing errors (could be transient file access issues)
	return true
}
