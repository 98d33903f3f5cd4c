package db

import (
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cyclewise/cyclewise/internal/cycle"
)

// BeforeCreate validates a CycleLog and assigns its external ID before insertion.
func (l *CycleLog) BeforeCreate(_ *gorm.DB) error {
	if l.OwnerKey == "" {
		return fmt.Errorf("%w: %w", ErrValidationFailed, ErrMissingOwnerKey)
	}
	if l.StartDate.IsZero() {
		return fmt.Errorf("%w: start_date is required", ErrValidationFailed)
	}
	l.StartDate = cycle.DateOnly(l.StartDate)
	if l.ExternalID == "" {
		l.ExternalID = uuid.NewString()
	}
	return nil
}

// BeforeUpdate keeps the start date normalized on update.
func (l *CycleLog) BeforeUpdate(_ *gorm.DB) error {
	if !l.StartDate.IsZero() {
		l.StartDate = cycle.DateOnly(l.StartDate)
	}
	return nil
}

// BeforeCreate validates a PredictionRecord before insertion.
func (p *PredictionRecord) BeforeCreate(_ *gorm.DB) error {
	if p.OwnerKey == "" {
		return fmt.Errorf("%w: %w", ErrValidationFailed, ErrMissingOwnerKey)
	}
	if p.PredictedDate.IsZero() {
		return fmt.Errorf("%w: predicted_date is required", ErrValidationFailed)
	}
	return nil
}

// BeforeCreate validates OwnerSettings before insertion.
func (s *OwnerSettings) BeforeCreate(_ *gorm.DB) error {
	if s.OwnerKey == "" {
		return fmt.Errorf("%w: %w", ErrValidationFailed, ErrMissingOwnerKey)
	}
	if s.MinLengthDays < 0 || s.MaxLengthDays < 0 {
		return fmt.Errorf("%w: cycle length bounds must not be negative", ErrValidationFailed)
	}
	if s.MinLengthDays > 0 && s.MaxLengthDays > 0 && s.MinLengthDays > s.MaxLengthDays {
		return fmt.Errorf("%w: min_length_days exceeds max_length_days", ErrValidationFailed)
	}
	return nil
}

// BeforeUpdate re-validates OwnerSettings on update.
func (s *OwnerSettings) BeforeUpdate(_ *gorm.DB) error {
	return s.BeforeCreate(nil)
}
