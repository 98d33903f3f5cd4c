package db

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cyclewise/cyclewise/internal/cycle"
	"github.com/cyclewise/cyclewise/internal/predict"
)

func TestLogConversionThroughStorage(t *testing.T) {
	db := TestDB(t)
	repo := NewLogRepository(db)
	ctx := context.Background()

	domain := cycle.Log{
		OwnerKey:  "owner-1",
		StartDate: time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC),
	}
	model := FromDomainLog(domain)
	require.NoError(t, repo.Create(ctx, model))

	stored, err := repo.ListByOwner(ctx, "owner-1")
	require.NoError(t, err)
	require.Len(t, stored, 1)

	back := ToDomainLogs(stored)[0]
	assert.Equal(t, model.ExternalID, back.ID)
	assert.Equal(t, "owner-1", back.OwnerKey)
	assert.Equal(t, "2025-01-01", back.StartDate.Format("2006-01-02"))
	assert.False(t, back.CreatedAt.IsZero())
}

func TestPredictionConversionThroughStorage(t *testing.T) {
	repo := NewPredictionRepository(TestDB(t))
	ctx := context.Background()

	domain := &predict.Prediction{
		PredictedDate: time.Date(2025, 3, 26, 0, 0, 0, 0, time.UTC),
		AverageDays:   28,
		Confidence:    0.85,
		CalculatedAt:  time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		MinDays:       27,
		MaxDays:       29,
		Reasoning:     "steady history",
		OwnerKey:      "owner-1",
	}
	require.NoError(t, repo.SaveCurrent(ctx, FromDomainPrediction(domain)))

	stored, err := repo.GetCurrent(ctx, "owner-1")
	require.NoError(t, err)

	back := ToDomainPrediction(stored)
	assert.Equal(t, domain.AverageDays, back.AverageDays)
	assert.InDelta(t, domain.Confidence, back.Confidence, 1e-9)
	assert.Equal(t, domain.MinDays, back.MinDays)
	assert.Equal(t, domain.MaxDays, back.MaxDays)
	assert.Equal(t, domain.Reasoning, back.Reasoning)
	assert.Equal(t, "2025-03-26", back.PredictedDate.Format("2006-01-02"))
}

func TestToPredictConfig(t *testing.T) {
	settings := &OwnerSettings{
		OwnerKey:      "owner-1",
		AIEligible:    true,
		AIEnabled:     true,
		MinLengthDays: 24,
		MaxLengthDays: 32,
	}

	cfg := ToPredictConfig(settings)
	assert.True(t, cfg.UseExternal())
	assert.Equal(t, 24, cfg.MinLengthDays)
	assert.Equal(t, 32, cfg.MaxLengthDays)
	assert.Equal(t, "owner-1", cfg.OwnerKey)
}
