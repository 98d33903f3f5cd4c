package db

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsRepositoryGetOrCreate(t *testing.T) {
	repo := NewSettingsRepository(TestDB(t))
	ctx := context.Background()

	settings, err := repo.GetOrCreate(ctx, "owner-1")
	require.NoError(t, err)
	assert.Equal(t, "owner-1", settings.OwnerKey)
	assert.False(t, settings.AIEnabled)
	assert.Zero(t, settings.MinLengthDays, "zero bounds mean domain defaults")

	// Second call returns the same row, not a new one.
	again, err := repo.GetOrCreate(ctx, "owner-1")
	require.NoError(t, err)
	assert.Equal(t, settings.ID, again.ID)
}

func TestSettingsRepositoryUpdate(t *testing.T) {
	repo := NewSettingsRepository(TestDB(t))
	ctx := context.Background()

	settings, err := repo.GetOrCreate(ctx, "owner-1")
	require.NoError(t, err)

	settings.AIEligible = true
	settings.AIEnabled = true
	settings.MinLengthDays = 24
	settings.MaxLengthDays = 32
	require.NoError(t, repo.Update(ctx, settings))

	got, err := repo.GetOrCreate(ctx, "owner-1")
	require.NoError(t, err)
	assert.True(t, got.AIEnabled)
	assert.Equal(t, 24, got.MinLengthDays)
	assert.Equal(t, 32, got.MaxLengthDays)
}

func TestSettingsRejectInvertedBounds(t *testing.T) {
	repo := NewSettingsRepository(TestDB(t))
	ctx := context.Background()

	settings, err := repo.GetOrCreate(ctx, "owner-1")
	require.NoError(t, err)

	settings.MinLengthDays = 40
	settings.MaxLengthDays = 30
	err = repo.Update(ctx, settings)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidationFailed)
}
