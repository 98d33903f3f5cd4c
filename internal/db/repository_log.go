package db

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/cyclewise/cyclewise/internal/cycle"
)

type logRepository struct {
	db *gorm.DB
}

// NewLogRepository creates a new LogRepository
func NewLogRepository(db *gorm.DB) LogRepository {
	return &logRepository{db: db}
}

func (r *logRepository) Create(ctx context.Context, log *CycleLog) error {
	if err := r.db.WithContext(ctx).Create(log).Error; err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: owner=%s date=%s", ErrDuplicateLog,
				log.OwnerKey, log.StartDate.Format("2006-01-02"))
		}
		return err
	}
	return nil
}

func (r *logRepository) GetByExternalID(ctx context.Context, externalID string) (*CycleLog, error) {
	var log CycleLog
	if err := r.db.WithContext(ctx).
		Where("external_id = ?", externalID).
		First(&log).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: cycle log %s", ErrRecordNotFound, externalID)
		}
		return nil, err
	}
	return &log, nil
}

func (r *logRepository) ListByOwner(ctx context.Context, ownerKey string) ([]*CycleLog, error) {
	var logs []*CycleLog
	if err := r.db.WithContext(ctx).
		Where("owner_key = ?", ownerKey).
		Order("start_date ASC").
		Find(&logs).Error; err != nil {
		return nil, err
	}
	return logs, nil
}

func (r *logRepository) LatestByOwner(ctx context.Context, ownerKey string) (*CycleLog, error) {
	var log CycleLog
	if err := r.db.WithContext(ctx).
		Where("owner_key = ?", ownerKey).
		Order("start_date DESC").
		First(&log).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: no cycle logs for owner %s", ErrRecordNotFound, ownerKey)
		}
		return nil, err
	}
	return &log, nil
}

func (r *logRepository) CountByOwner(ctx context.Context, ownerKey string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&CycleLog{}).
		Where("owner_key = ?", ownerKey).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *logRepository) Delete(ctx context.Context, externalID string) error {
	result := r.db.WithContext(ctx).
		Where("external_id = ?", externalID).
		Delete(&CycleLog{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: cycle log %s", ErrRecordNotFound, externalID)
	}
	return nil
}

func (r *logRepository) DeleteByDate(ctx context.Context, ownerKey string, startDate time.Time) error {
	result := r.db.WithContext(ctx).
		Where("owner_key = ? AND start_date = ?", ownerKey, cycle.DateOnly(startDate)).
		Delete(&CycleLog{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: no cycle log for owner %s on %s", ErrRecordNotFound,
			ownerKey, startDate.Format("2006-01-02"))
	}
	return nil
}

// isUniqueViolation reports whether err is a SQLite unique constraint
// failure. The pure-Go driver does not expose a typed error for this.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
