package db

import (
	"context"
	"time"
)

// LogRepository manages CycleLog CRUD operations
type LogRepository interface {
	Create(ctx context.Context, log *CycleLog) error
	GetByExternalID(ctx context.Context, externalID string) (*CycleLog, error)
	// ListByOwner returns all logs for an owner ordered by start date ascending
	ListByOwner(ctx context.Context, ownerKey string) ([]*CycleLog, error)
	// LatestByOwner returns the most recent log for an owner
	LatestByOwner(ctx context.Context, ownerKey string) (*CycleLog, error)
	CountByOwner(ctx context.Context, ownerKey string) (int64, error)
	Delete(ctx context.Context, externalID string) error
	// DeleteByDate removes the log on the given calendar day for an owner
	DeleteByDate(ctx context.Context, ownerKey string, startDate time.Time) error
}

// PredictionRepository manages stored predictions. One prediction per
// owner is marked current at any time.
type PredictionRepository interface {
	// GetCurrent returns the owner's current prediction, or ErrRecordNotFound
	GetCurrent(ctx context.Context, ownerKey string) (*PredictionRecord, error)
	// SaveCurrent stores a new prediction and demotes any previous current one
	SaveCurrent(ctx context.Context, record *PredictionRecord) error
	// History returns past predictions for an owner, newest first
	History(ctx context.Context, ownerKey string, limit int) ([]*PredictionRecord, error)
	DeleteByOwner(ctx context.Context, ownerKey string) error
}

// SettingsRepository manages per-owner settings
type SettingsRepository interface {
	// GetOrCreate returns the owner's settings, creating defaults on first use
	GetOrCreate(ctx context.Context, ownerKey string) (*OwnerSettings, error)
	Update(ctx context.Context, settings *OwnerSettings) error
}
