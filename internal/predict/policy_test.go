package predict

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/cyclewise/cyclewise/internal/cycle"
)

func TestNeedsRecalculation(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	policy := NewPolicy(func() time.Time { return now })

	fresh := &Prediction{
		PredictedDate: now.AddDate(0, 0, 10),
		CalculatedAt:  now.AddDate(0, 0, -2),
	}

	tests := []struct {
		name    string
		current *Prediction
		logs    []cycle.Log
		want    bool
	}{
		{
			name:    "no current prediction",
			current: nil,
			want:    true,
		},
		{
			name:    "fresh prediction with future date and no new logs",
			current: fresh,
			logs:    []cycle.Log{{CreatedAt: now.AddDate(0, 0, -5)}},
			want:    false,
		},
		{
			name: "older than thirty days",
			current: &Prediction{
				PredictedDate: now.AddDate(0, 0, 10),
				CalculatedAt:  now.AddDate(0, 0, -31),
			},
			want: true,
		},
		{
			name: "exactly at the age ceiling is still fresh",
			current: &Prediction{
				PredictedDate: now.AddDate(0, 0, 10),
				CalculatedAt:  now.Add(-MaxPredictionAge),
			},
			want: false,
		},
		{
			name:    "log recorded after calculation",
			current: fresh,
			logs:    []cycle.Log{{CreatedAt: now.AddDate(0, 0, -1)}},
			want:    true,
		},
		{
			name: "predicted date already elapsed",
			current: &Prediction{
				PredictedDate: now.AddDate(0, 0, -1),
				CalculatedAt:  now.AddDate(0, 0, -2),
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, policy.NeedsRecalculation(tt.current, tt.logs))
		})
	}
}
