package config

import (
	"os"
	"path/filepath"

	"github.com/cyclewise/cyclewise/internal/cycle"
)

// Configuration defaults applied when the file leaves fields unset.
const (
	DefaultVersion      = 1
	DefaultDatabaseFile = "cyclewise.db"
	DefaultConfigDir    = ".cyclewise"
	DefaultDBLogLevel   = "warn"
	DefaultLogLevel     = "info"
	DefaultLogFormat    = "text"
)

// DefaultDatabasePath returns the standard database location under the
// user's home directory, falling back to the working directory when the
// home directory cannot be determined.
func DefaultDatabasePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return DefaultDatabaseFile
	}
	return filepath.Join(home, DefaultConfigDir, DefaultDatabaseFile)
}

// applyDefaults fills unset fields with their default values.
func applyDefaults(c *Config) {
	if c.Version == 0 {
		c.Version = DefaultVersion
	}

	if c.Database.Path == "" {
		c.Database.Path = DefaultDatabasePath()
	}
	if c.Database.LogLevel == "" {
		c.Database.LogLevel = DefaultDBLogLevel
	}

	if c.Cycle.MinLengthDays == 0 {
		c.Cycle.MinLengthDays = cycle.DefaultMinLengthDays
	}
	if c.Cycle.MaxLengthDays == 0 {
		c.Cycle.MaxLengthDays = cycle.DefaultMaxLengthDays
	}

	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
	if c.Logging.Format == "" {
		c.Logging.Format = DefaultLogFormat
	}
}

// Default returns a configuration with every default applied, suitable
// for running without a config file.
func Default() *Config {
	c := &Config{}
	applyDefaults(c)
	return c
}
