// Package logging provides logging configuration types and utilities.
//
// This package defines the logging configuration structures used throughout
// the application to enable component-specific debug logging and verbose
// output control. It avoids import cycles by being a leaf dependency.
package logging

import (
	"crypto/rand"
	"encoding/hex"
	"strings"

	"github.com/sirupsen/logrus"
)

// LogConfig holds all logging and CLI configuration.
//
// This configuration is passed via dependency injection throughout the
// application to avoid global state and enable better testing isolation.
type LogConfig struct {
	ConfigFile    string
	LogLevel      string
	Verbose       int    // -v, -vv, -vvv support
	LogFormat     string // "text" or "json"
	CorrelationID string // Unique ID for request correlation
	JSONOutput    bool   // Enable JSON structured output
}

// GenerateCorrelationID creates a unique correlation ID for request tracing.
//
// Returns a 16-byte hex-encoded string that can be used to correlate
// log entries across different components for the same operation.
func GenerateCorrelationID() string {
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		// Fallback to a simple timestamp-based ID if crypto/rand fails
		return "fallback-id"
	}
	return hex.EncodeToString(bytes)
}

// WithCorrelationID creates a new LogConfig with the specified correlation ID.
//
// This is useful for creating child contexts that inherit the parent's
// correlation ID for cross-component operation tracing.
func (lc *LogConfig) WithCorrelationID(correlationID string) *LogConfig {
	if lc == nil {
		return &LogConfig{CorrelationID: correlationID}
	}

	newConfig := *lc
	newConfig.CorrelationID = correlationID
	return &newConfig
}

// Level resolves the effective logrus level from LogLevel and the
// verbose counter; -v maps to debug, -vv and above to trace.
func (lc *LogConfig) Level() logrus.Level {
	if lc.Verbose >= 2 {
		return logrus.TraceLevel
	}
	if lc.Verbose == 1 {
		return logrus.DebugLevel
	}

	switch strings.ToLower(lc.LogLevel) {
	case "trace":
		return logrus.TraceLevel
	case "debug":
		return logrus.DebugLevel
	case "warn", "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	default:
		return logrus.InfoLevel
	}
}

// Configure applies this configuration to the given logrus logger:
// level, output format, and the automatic redaction hook.
func (lc *LogConfig) Configure(logger *logrus.Logger) {
	logger.SetLevel(lc.Level())

	if lc.JSONOutput || strings.EqualFold(lc.LogFormat, "json") {
		logger.SetFormatter(&logrus.JSONFormatter{
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime: StandardFields.Timestamp,
			},
		})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	logger.AddHook(NewRedactionService().CreateHook())
}
