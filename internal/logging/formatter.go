package logging

import (
	"github.com/sirupsen/logrus"
)

// WithStandardFields creates a logger entry with standardized fields.
//
// This function ensures consistent field naming across all components
// and automatically includes the correlation ID when available.
func WithStandardFields(logger *logrus.Logger, config *LogConfig, component string) *logrus.Entry {
	fields := logrus.Fields{
		StandardFields.Component: component,
	}

	if config != nil && config.CorrelationID != "" {
		fields[StandardFields.CorrelationID] = config.CorrelationID
	}

	return logger.WithFields(fields)
}
