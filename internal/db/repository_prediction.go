package db

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type predictionRepository struct {
	db *gorm.DB
}

// NewPredictionRepository creates a new PredictionRepository
func NewPredictionRepository(db *gorm.DB) PredictionRepository {
	return &predictionRepository{db: db}
}

func (r *predictionRepository) GetCurrent(ctx context.Context, ownerKey string) (*PredictionRecord, error) {
	var record PredictionRecord
	if err := r.db.WithContext(ctx).
		Where("owner_key = ? AND current = ?", ownerKey, true).
		First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: no current prediction for owner %s", ErrRecordNotFound, ownerKey)
		}
		return nil, err
	}
	return &record, nil
}

// SaveCurrent demotes the previous current prediction and inserts the
// new one in a single transaction, so readers never observe two
// current rows for one owner.
func (r *predictionRepository) SaveCurrent(ctx context.Context, record *PredictionRecord) error {
	record.Current = true
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&PredictionRecord{}).
			Where("owner_key = ? AND current = ?", record.OwnerKey, true).
			Update("current", false).Error; err != nil {
			return err
		}
		return tx.Create(record).Error
	})
}

func (r *predictionRepository) History(ctx context.Context, ownerKey string, limit int) ([]*PredictionRecord, error) {
	query := r.db.WithContext(ctx).
		Where("owner_key = ?", ownerKey).
		Order("calculated_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var records []*PredictionRecord
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *predictionRepository) DeleteByOwner(ctx context.Context, ownerKey string) error {
	return r.db.WithContext(ctx).
		Where("owner_key = ?", ownerKey).
		Delete(&PredictionRecord{}).Error
}
