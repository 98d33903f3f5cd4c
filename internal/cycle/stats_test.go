package cycle

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// logsFromDates builds logs from ISO dates for test input.
func logsFromDates(t *testing.T, dates ...string) []Log {
	t.Helper()

	logs := make([]Log, 0, len(dates))
	for i, d := range dates {
		day, err := time.Parse("2006-01-02", d)
		require.NoError(t, err)
		logs = append(logs, Log{
			ID:        d,
			OwnerKey:  "owner-1",
			StartDate: day,
			CreatedAt: day.Add(time.Duration(i) * time.Hour),
		})
	}
	return logs
}

func TestComputeStats(t *testing.T) {
	tests := []struct {
		name     string
		dates    []string
		minBound int
		maxBound int
		want     *Stats
	}{
		{
			name:     "no logs",
			dates:    nil,
			minBound: 21,
			maxBound: 35,
			want:     nil,
		},
		{
			name:     "single log has no intervals",
			dates:    []string{"2025-01-01"},
			minBound: 21,
			maxBound: 35,
			want:     nil,
		},
		{
			name:     "two logs with perfect interval",
			dates:    []string{"2025-01-01", "2025-01-29"},
			minBound: 21,
			maxBound: 35,
			want: &Stats{
				AverageDays: 28,
				MinDays:     28,
				MaxDays:     28,
				StdDev:      0,
				Regularity:  VeryRegular,
				SampleCount: 1,
			},
		},
		{
			name:     "three logs zero variance",
			dates:    []string{"2025-01-01", "2025-01-29", "2025-02-26"},
			minBound: 21,
			maxBound: 35,
			want: &Stats{
				AverageDays: 28,
				MinDays:     28,
				MaxDays:     28,
				StdDev:      0,
				Regularity:  VeryRegular,
				SampleCount: 2,
			},
		},
		{
			name: "mixed intervals with small variance",
			// Intervals: 26, 30, 28 -> mean 28, stddev sqrt((4+4+0)/3).
			dates:    []string{"2025-01-01", "2025-01-27", "2025-02-26", "2025-03-26"},
			minBound: 21,
			maxBound: 35,
			want: &Stats{
				AverageDays: 28,
				MinDays:     26,
				MaxDays:     30,
				StdDev:      1.632993161855452,
				Regularity:  VeryRegular,
				SampleCount: 3,
			},
		},
		{
			name: "entry-error gap filtered out",
			// 28-day interval, then a 90-day gap that must not poison the mean.
			dates:    []string{"2025-01-01", "2025-01-29", "2025-04-29"},
			minBound: 21,
			maxBound: 35,
			want: &Stats{
				AverageDays: 28,
				MinDays:     28,
				MaxDays:     28,
				StdDev:      0,
				Regularity:  VeryRegular,
				SampleCount: 1,
			},
		},
		{
			name: "long cycle inside slack window survives",
			// 40 days is within maxBound+10, so it is a legitimate sample.
			dates:    []string{"2025-01-01", "2025-02-10"},
			minBound: 21,
			maxBound: 35,
			want: &Stats{
				AverageDays: 40,
				MinDays:     40,
				MaxDays:     40,
				StdDev:      0,
				Regularity:  VeryRegular,
				SampleCount: 1,
			},
		},
		{
			name:     "all intervals filtered returns nil",
			dates:    []string{"2025-01-01", "2025-01-05", "2025-01-09"},
			minBound: 21,
			maxBound: 35,
			want:     nil,
		},
		{
			name: "unsorted input is sorted internally",
			// Same dates as the zero-variance case, shuffled.
			dates:    []string{"2025-02-26", "2025-01-01", "2025-01-29"},
			minBound: 21,
			maxBound: 35,
			want: &Stats{
				AverageDays: 28,
				MinDays:     28,
				MaxDays:     28,
				StdDev:      0,
				Regularity:  VeryRegular,
				SampleCount: 2,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeStats(logsFromDates(t, tt.dates...), tt.minBound, tt.maxBound)
			if tt.want == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.want.AverageDays, got.AverageDays)
			assert.Equal(t, tt.want.MinDays, got.MinDays)
			assert.Equal(t, tt.want.MaxDays, got.MaxDays)
			assert.InDelta(t, tt.want.StdDev, got.StdDev, 1e-9)
			assert.Equal(t, tt.want.Regularity, got.Regularity)
			assert.Equal(t, tt.want.SampleCount, got.SampleCount)
		})
	}
}

func TestComputeStatsSampleCountAndNonNegativeStdDev(t *testing.T) {
	// Any list of n>=2 logs with intervals inside [21,35] yields n-1 samples.
	logs := logsFromDates(t,
		"2025-01-01", "2025-01-24", "2025-02-20", "2025-03-22", "2025-04-20",
	)

	stats := ComputeStats(logs, 21, 35)
	require.NotNil(t, stats)
	assert.Equal(t, len(logs)-1, stats.SampleCount)
	assert.GreaterOrEqual(t, stats.StdDev, 0.0)
	assert.LessOrEqual(t, stats.MinDays, stats.AverageDays)
	assert.GreaterOrEqual(t, stats.MaxDays, stats.AverageDays)
}

func TestComputeStatsDeterministic(t *testing.T) {
	logs := logsFromDates(t,
		"2025-01-01", "2025-01-30", "2025-02-24", "2025-03-27", "2025-04-21",
	)

	first := ComputeStats(logs, 21, 35)
	require.NotNil(t, first)
	for i := 0; i < 10; i++ {
		again := ComputeStats(logs, 21, 35)
		require.NotNil(t, again)
		assert.Equal(t, *first, *again)
	}
}

func TestClassifyRegularity(t *testing.T) {
	tests := []struct {
		name   string
		stdDev float64
		want   Regularity
	}{
		{name: "zero deviation", stdDev: 0, want: VeryRegular},
		{name: "boundary two", stdDev: 2, want: VeryRegular},
		{name: "just above two", stdDev: 2.01, want: Regular},
		{name: "boundary four", stdDev: 4, want: Regular},
		{name: "boundary seven", stdDev: 7, want: SomewhatIrregular},
		{name: "above seven", stdDev: 7.5, want: Irregular},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyRegularity(tt.stdDev))
		})
	}
}

func TestDaysBetweenIgnoresTimeOfDay(t *testing.T) {
	a := time.Date(2025, 1, 1, 23, 50, 0, 0, time.UTC)
	b := time.Date(2025, 1, 29, 0, 10, 0, 0, time.UTC)
	assert.Equal(t, 28, DaysBetween(a, b))
}

func TestSortByStartDateDoesNotMutateInput(t *testing.T) {
	logs := logsFromDates(t, "2025-02-26", "2025-01-01", "2025-01-29")
	original := make([]Log, len(logs))
	copy(original, logs)

	sorted := SortByStartDate(logs)

	assert.Equal(t, original, logs)
	assert.True(t, sorted[0].StartDate.Before(sorted[1].StartDate))
	assert.True(t, sorted[1].StartDate.Before(sorted[2].StartDate))
}
