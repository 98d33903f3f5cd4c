package predict

import (
	"fmt"
	"time"

	"github.com/cyclewise/cyclewise/internal/cycle"
)

// insufficientDataReasoning is the fixed explanation used when no
// interval statistics could be computed.
const insufficientDataReasoning = "Insufficient cycle data, using the default 28-day cycle."

// LocalEstimator produces predictions from interval statistics alone,
// with no external dependencies.
type LocalEstimator struct {
	now Clock
}

// NewLocalEstimator creates a local estimator with the given clock.
// A nil clock defaults to time.Now.
func NewLocalEstimator(clock Clock) *LocalEstimator {
	if clock == nil {
		clock = time.Now
	}
	return &LocalEstimator{now: clock}
}

// Estimate produces a prediction from the logged start dates.
//
// Requires logs to be non-empty; the Predictor guarantees this before
// delegating. When statistics are unavailable (a single log, or every
// interval filtered as an outlier) the estimate falls back to the
// default cycle length at reduced confidence.
func (e *LocalEstimator) Estimate(logs []cycle.Log, cfg Config) Prediction {
	cfg = cfg.withDefaults()
	sorted := cycle.SortByStartDate(logs)
	last := sorted[len(sorted)-1]

	stats := cycle.ComputeStats(sorted, cfg.MinLengthDays, cfg.MaxLengthDays)
	if stats == nil {
		return Prediction{
			PredictedDate: cycle.DateOnly(last.StartDate).AddDate(0, 0, cycle.DefaultLengthDays),
			AverageDays:   cycle.DefaultLengthDays,
			Confidence:    cycle.ConfidenceInsufficientData,
			CalculatedAt:  e.now(),
			Reasoning:     insufficientDataReasoning,
			OwnerKey:      cfg.OwnerKey,
		}
	}

	return Prediction{
		PredictedDate: cycle.DateOnly(last.StartDate).AddDate(0, 0, stats.AverageDays),
		AverageDays:   stats.AverageDays,
		Confidence:    cycle.ConfidenceFor(stats.Regularity),
		CalculatedAt:  e.now(),
		MinDays:       stats.MinDays,
		MaxDays:       stats.MaxDays,
		Reasoning: fmt.Sprintf("Based on %d recorded cycles averaging %d days (%s).",
			stats.SampleCount, stats.AverageDays, stats.Regularity.Label()),
		OwnerKey: cfg.OwnerKey,
	}
}
