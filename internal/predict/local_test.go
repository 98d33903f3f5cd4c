package predict

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cyclewise/cyclewise/internal/cycle"
)

func fixedClock(iso string) Clock {
	t, _ := time.Parse(time.RFC3339, iso)
	return func() time.Time { return t }
}

func logsFrom(t *testing.T, dates ...string) []cycle.Log {
	t.Helper()
	logs := make([]cycle.Log, 0, len(dates))
	for _, d := range dates {
		day, err := time.Parse("2006-01-02", d)
		require.NoError(t, err)
		logs = append(logs, cycle.Log{ID: d, StartDate: day, CreatedAt: day})
	}
	return logs
}

func TestLocalEstimateSteadyHistory(t *testing.T) {
	est := NewLocalEstimator(fixedClock("2025-03-01T12:00:00Z"))
	logs := logsFrom(t, "2025-01-01", "2025-01-29", "2025-02-26")

	got := est.Estimate(logs, Config{OwnerKey: "owner-1"})

	assert.Equal(t, time.Date(2025, 3, 26, 0, 0, 0, 0, time.UTC), got.PredictedDate)
	assert.Equal(t, 28, got.AverageDays)
	assert.InDelta(t, 0.85, got.Confidence, 1e-9)
	assert.Equal(t, 28, got.MinDays)
	assert.Equal(t, 28, got.MaxDays)
	assert.Equal(t, "owner-1", got.OwnerKey)
	assert.Contains(t, got.Reasoning, "2 recorded cycles")
	assert.Contains(t, got.Reasoning, "28 days")
}

func TestLocalEstimateSingleLogUsesDefaultLength(t *testing.T) {
	est := NewLocalEstimator(fixedClock("2025-03-01T12:00:00Z"))
	logs := logsFrom(t, "2025-02-10")

	got := est.Estimate(logs, Config{})

	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), got.PredictedDate)
	assert.Equal(t, cycle.DefaultLengthDays, got.AverageDays)
	assert.InDelta(t, cycle.ConfidenceInsufficientData, got.Confidence, 1e-9)
	assert.Equal(t, insufficientDataReasoning, got.Reasoning)
	assert.Zero(t, got.MinDays)
	assert.Zero(t, got.MaxDays)
}

func TestLocalEstimateAllIntervalsFilteredFallsBack(t *testing.T) {
	est := NewLocalEstimator(fixedClock("2025-06-01T00:00:00Z"))
	// One 90-day gap, far beyond the upper bound plus slack.
	logs := logsFrom(t, "2025-01-01", "2025-04-01")

	got := est.Estimate(logs, Config{})

	assert.Equal(t, time.Date(2025, 4, 29, 0, 0, 0, 0, time.UTC), got.PredictedDate)
	assert.Equal(t, cycle.DefaultLengthDays, got.AverageDays)
	assert.InDelta(t, cycle.ConfidenceInsufficientData, got.Confidence, 1e-9)
}

func TestLocalEstimateUnsortedInputIsSortedFirst(t *testing.T) {
	est := NewLocalEstimator(fixedClock("2025-03-01T12:00:00Z"))
	logs := logsFrom(t, "2025-02-26", "2025-01-01", "2025-01-29")

	got := est.Estimate(logs, Config{})

	// The anchor must be the latest date, not the last element.
	assert.Equal(t, time.Date(2025, 3, 26, 0, 0, 0, 0, time.UTC), got.PredictedDate)
}

func TestLocalEstimateIrregularHistoryLowersConfidence(t *testing.T) {
	est := NewLocalEstimator(fixedClock("2025-06-01T00:00:00Z"))
	// Intervals 21, 45, 21, 45: stddev 12, well above the irregular threshold.
	logs := logsFrom(t, "2025-01-01", "2025-01-22", "2025-03-08", "2025-03-29", "2025-05-13")

	got := est.Estimate(logs, Config{})

	assert.InDelta(t, 0.40, got.Confidence, 1e-9)
	assert.Contains(t, got.Reasoning, "irregular")
}

func TestLocalEstimateDeterministic(t *testing.T) {
	est := NewLocalEstimator(fixedClock("2025-03-01T12:00:00Z"))
	logs := logsFrom(t, "2025-01-01", "2025-01-29", "2025-02-26")

	first := est.Estimate(logs, Config{})
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, est.Estimate(logs, Config{}))
	}
}
