// Package cycle provides the core domain types and statistics for
// recurring cycle tracking: logged start dates, inter-event interval
// statistics, and the regularity classification derived from them.
package cycle

import (
	"sort"
	"time"
)

// DefaultLengthDays is the assumed cycle length when there is not
// enough data to compute one.
const DefaultLengthDays = 28

// Default sanity bounds for a plausible cycle length, in days.
const (
	DefaultMinLengthDays = 21
	DefaultMaxLengthDays = 35
)

// OutlierSlackDays is added above the configured maximum when filtering
// intervals. A long-but-legitimate cycle survives the filter; a true
// data-entry error (months between logs) does not poison the mean.
const OutlierSlackDays = 10

// Log is one recorded cycle start date. Logs are immutable once
// created; at most one log exists per (OwnerKey, StartDate) calendar day.
type Log struct {
	// ID is an opaque unique identifier (UUID in practice).
	ID string `json:"id"`

	// OwnerKey identifies whose cycle this log belongs to.
	OwnerKey string `json:"owner_key,omitempty"`

	// StartDate is the calendar day the cycle started. Time-of-day is
	// not significant; callers should normalize with DateOnly.
	StartDate time.Time `json:"start_date"`

	// CreatedAt is when the log was recorded.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is when the log was last touched.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
}

// Regularity buckets the standard deviation of cycle intervals.
type Regularity string

// Regularity classes from most to least regular.
const (
	VeryRegular       Regularity = "very_regular"
	Regular           Regularity = "regular"
	SomewhatIrregular Regularity = "somewhat_irregular"
	Irregular         Regularity = "irregular"
)

// Label returns a human-readable form of the regularity class.
func (r Regularity) Label() string {
	switch r {
	case VeryRegular:
		return "very regular"
	case Regular:
		return "regular"
	case SomewhatIrregular:
		return "somewhat irregular"
	case Irregular:
		return "irregular"
	default:
		return "unknown"
	}
}

// Stats holds derived interval statistics for a list of logs.
// It is ephemeral: recomputed from the full log list on every request,
// never persisted directly.
type Stats struct {
	// AverageDays is the rounded mean of surviving intervals.
	AverageDays int `json:"average_length_days"`

	// MinDays and MaxDays are the extrema of the surviving intervals.
	MinDays int `json:"min_length_days"`
	MaxDays int `json:"max_length_days"`

	// StdDev is the population standard deviation about AverageDays.
	StdDev float64 `json:"standard_deviation"`

	// Regularity classifies StdDev.
	Regularity Regularity `json:"regularity"`

	// SampleCount is the number of intervals that survived filtering.
	SampleCount int `json:"sample_count"`
}

// DateOnly truncates t to midnight in its location, giving the
// calendar-day granularity the uniqueness invariant is defined on.
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// DaysBetween returns the whole days from a to b (positive when b is
// after a). Both endpoints are normalized to calendar days first.
func DaysBetween(a, b time.Time) int {
	return int(DateOnly(b).Sub(DateOnly(a)).Hours() / 24)
}

// SortByStartDate returns a copy of logs sorted ascending by start
// date. The input slice is never mutated.
func SortByStartDate(logs []Log) []Log {
	sorted := make([]Log, 0, len(logs))
	sorted = append(sorted, logs...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartDate.Before(sorted[j].StartDate)
	})
	return sorted
}
