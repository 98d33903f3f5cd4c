package predict

import (
	"time"

	"github.com/cyclewise/cyclewise/internal/cycle"
)

// MaxPredictionAge is the staleness ceiling: a prediction older than
// this is recomputed regardless of anything else.
const MaxPredictionAge = 30 * 24 * time.Hour

// Policy decides whether a stored prediction is still usable. It is a
// pure predicate consumed by the layer that wraps the engine, never by
// the Predictor itself, which keeps the Predictor side-effect-free.
type Policy struct {
	now Clock
}

// NewPolicy creates a recalculation policy with the given clock.
// A nil clock defaults to time.Now.
func NewPolicy(clock Clock) *Policy {
	if clock == nil {
		clock = time.Now
	}
	return &Policy{now: clock}
}

// NeedsRecalculation reports whether current must be replaced.
//
// True when there is no current prediction, when it is older than
// MaxPredictionAge, when any log was recorded after it was computed,
// or when its predicted date has already elapsed.
func (p *Policy) NeedsRecalculation(current *Prediction, logs []cycle.Log) bool {
	if current == nil {
		return true
	}

	now := p.now()

	if now.Sub(current.CalculatedAt) > MaxPredictionAge {
		return true
	}

	for _, log := range logs {
		if log.CreatedAt.After(current.CalculatedAt) {
			return true
		}
	}

	return current.PredictedDate.Before(now)
}
