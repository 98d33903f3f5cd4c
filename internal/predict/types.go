// Package predict implements the cycle prediction engine: the local
// statistical estimator, the orchestrator that chooses between local
// and AI-backed estimation, and the recalculation policy that decides
// when a stored prediction has gone stale.
//
// The engine is stateless: every call receives its full input and
// returns a new value, so a single Predictor can be shared across
// concurrent callers without coordination.
package predict

import (
	"time"

	"github.com/cyclewise/cyclewise/internal/cycle"
)

// Clock supplies the current time. Injectable for testability;
// NewPredictor and friends default it to time.Now.
type Clock func() time.Time

// Prediction is the engine's single output value: one best-estimate
// next cycle start with a confidence score.
type Prediction struct {
	// PredictedDate is the forecast next cycle start (calendar day).
	PredictedDate time.Time `json:"predicted_date"`

	// AverageDays is the cycle length the prediction is based on.
	AverageDays int `json:"average_cycle_length_days"`

	// Confidence is in [0,1].
	Confidence float64 `json:"confidence"`

	// CalculatedAt is when this prediction was computed.
	CalculatedAt time.Time `json:"calculated_at"`

	// MinDays and MaxDays are the observed interval extrema when local
	// statistics were available; zero otherwise.
	MinDays int `json:"min_cycle_length_days,omitempty"`
	MaxDays int `json:"max_cycle_length_days,omitempty"`

	// Reasoning is a short human-readable explanation of the estimate.
	Reasoning string `json:"reasoning,omitempty"`

	// OwnerKey identifies whose prediction this is.
	OwnerKey string `json:"owner_key,omitempty"`
}

// Config is the per-invocation estimation configuration. Immutable for
// the duration of one Predictor call.
type Config struct {
	// AIEligible reports whether this owner may use external
	// estimation at all. Any allow-list policy is the caller's concern;
	// the engine only sees the resulting boolean.
	AIEligible bool

	// AIEnabled reports whether the owner has opted in to external
	// estimation.
	AIEnabled bool

	// MinLengthDays and MaxLengthDays bound a plausible cycle length.
	// Zero values fall back to the domain defaults (21 and 35).
	MinLengthDays int
	MaxLengthDays int

	// OwnerKey identifies the owner; stamped onto the returned Prediction.
	OwnerKey string
}

// UseExternal reports whether the external estimation path applies.
func (c Config) UseExternal() bool {
	return c.AIEligible && c.AIEnabled
}

// withDefaults normalizes unset bounds to the domain defaults.
func (c Config) withDefaults() Config {
	if c.MinLengthDays == 0 {
		c.MinLengthDays = cycle.DefaultMinLengthDays
	}
	if c.MaxLengthDays == 0 {
		c.MaxLengthDays = cycle.DefaultMaxLengthDays
	}
	return c
}
