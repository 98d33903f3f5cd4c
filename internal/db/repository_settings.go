package db

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new SettingsRepository
func NewSettingsRepository(db *gorm.DB) SettingsRepository {
	return &settingsRepository{db: db}
}

func (r *settingsRepository) GetOrCreate(ctx context.Context, ownerKey string) (*OwnerSettings, error) {
	var settings OwnerSettings
	err := r.db.WithContext(ctx).
		Where("owner_key = ?", ownerKey).
		First(&settings).Error
	if err == nil {
		return &settings, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	settings = OwnerSettings{OwnerKey: ownerKey}
	if err := r.db.WithContext(ctx).Create(&settings).Error; err != nil {
		return nil, err
	}
	return &settings, nil
}

func (r *settingsRepository) Update(ctx context.Context, settings *OwnerSettings) error {
	return r.db.WithContext(ctx).Save(settings).Error
}
