package cycle

import "math"

// Regularity thresholds on the interval standard deviation, in days.
// Inclusive upper bounds.
const (
	veryRegularMaxStdDev       = 2.0
	regularMaxStdDev           = 4.0
	somewhatIrregularMaxStdDev = 7.0
)

// ComputeStats derives interval statistics from logged start dates.
//
// Logs need not be pre-sorted; they are sorted ascending by start date
// internally. Consecutive whole-day intervals outside
// [minBound, maxBound+OutlierSlackDays] are discarded as outliers.
//
// Returns nil when statistics are undefined: fewer than two logs, or
// every interval filtered out. Deterministic for a given input; the
// mean is accumulated in sorted order so results are reproducible.
func ComputeStats(logs []Log, minBound, maxBound int) *Stats {
	if len(logs) < 2 {
		return nil
	}

	sorted := SortByStartDate(logs)

	intervals := make([]int, 0, len(sorted)-1)
	for i := 1; i < len(sorted); i++ {
		d := DaysBetween(sorted[i-1].StartDate, sorted[i].StartDate)
		if d < minBound || d > maxBound+OutlierSlackDays {
			continue
		}
		intervals = append(intervals, d)
	}

	if len(intervals) == 0 {
		return nil
	}

	sum := 0
	minDays := intervals[0]
	maxDays := intervals[0]
	for _, d := range intervals {
		sum += d
		if d < minDays {
			minDays = d
		}
		if d > maxDays {
			maxDays = d
		}
	}

	average := int(math.Round(float64(sum) / float64(len(intervals))))

	// Population standard deviation about the rounded average.
	var sumSquares float64
	for _, d := range intervals {
		diff := float64(d - average)
		sumSquares += diff * diff
	}
	stdDev := math.Sqrt(sumSquares / float64(len(intervals)))

	return &Stats{
		AverageDays: average,
		MinDays:     minDays,
		MaxDays:     maxDays,
		StdDev:      stdDev,
		Regularity:  classifyRegularity(stdDev),
		SampleCount: len(intervals),
	}
}

// classifyRegularity buckets a standard deviation into a regularity class.
func classifyRegularity(stdDev float64) Regularity {
	switch {
	case stdDev <= veryRegularMaxStdDev:
		return VeryRegular
	case stdDev <= regularMaxStdDev:
		return Regular
	case stdDev <= somewhatIrregularMaxStdDev:
		return SomewhatIrregular
	default:
		return Irregular
	}
}
