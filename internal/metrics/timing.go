// Package metrics provides operation timing utilities integrated with
// structured logging. Timers attach metadata through AddField and log
// the measured duration on Stop, warning when an operation runs past
// the slow threshold.
package metrics

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/cyclewise/cyclewise/internal/logging"
)

// slowOperationThreshold is the duration past which a completed
// operation is logged at WARN. AI round trips dominate here; anything
// local should finish in milliseconds.
const slowOperationThreshold = 10 * time.Second

// Timer tracks the duration of an operation with support for additional metadata.
type Timer struct {
	start     time.Time
	operation string
	logger    *logrus.Entry
	fields    logrus.Fields
	ctx       context.Context //nolint:containedctx // Context needed for cancellation checks during timer lifecycle
}

// StartTimer creates a new timer for an operation. The timer begins
// immediately; call Stop or StopWithError to log the measurement.
func StartTimer(ctx context.Context, logger *logrus.Entry, operation string) *Timer {
	return &Timer{
		start:     time.Now(),
		operation: operation,
		logger:    logger.WithField(logging.StandardFields.Operation, operation),
		fields:    make(logrus.Fields),
		ctx:       ctx,
	}
}

// AddField attaches a metadata field to be logged when the timer stops.
// Supports method chaining.
func (t *Timer) AddField(key string, value interface{}) *Timer {
	t.fields[key] = value
	return t
}

// Stop completes the measurement and logs the duration. Slow
// operations log at WARN, everything else at DEBUG.
func (t *Timer) Stop() time.Duration {
	duration := time.Since(t.start)

	t.fields[logging.StandardFields.DurationMs] = duration.Milliseconds()
	t.fields["duration_human"] = duration.String()

	if duration > slowOperationThreshold {
		t.logger.WithFields(t.fields).Warn("Operation took longer than expected")
	} else {
		t.logger.WithFields(t.fields).Debug("Operation completed")
	}

	return duration
}

// StopWithError completes the measurement with error context. Failed
// operations log at ERROR regardless of duration.
func (t *Timer) StopWithError(err error) time.Duration {
	duration := time.Since(t.start)

	t.fields[logging.StandardFields.DurationMs] = duration.Milliseconds()
	t.fields["duration_human"] = duration.String()

	if err != nil {
		t.fields[logging.StandardFields.Error] = err.Error()
		t.fields[logging.StandardFields.Status] = "failed"
		t.logger.WithFields(t.fields).Error("Operation failed")
		return duration
	}

	t.fields[logging.StandardFields.Status] = "completed"
	if duration > slowOperationThreshold {
		t.logger.WithFields(t.fields).Warn("Operation completed but took longer than expected")
	} else {
		t.logger.WithFields(t.fields).Debug("Operation completed successfully")
	}

	return duration
}

// CheckCancellation reports whether the operation context has been
// canceled. Does not affect timer state.
func (t *Timer) CheckCancellation() bool {
	select {
	case <-t.ctx.Done():
		return true
	default:
		return false
	}
}

// GetElapsed returns the elapsed time without stopping the timer.
func (t *Timer) GetElapsed() time.Duration {
	return time.Since(t.start)
}
