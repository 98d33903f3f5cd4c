package db

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// BaseModel contains common columns for all tables following GORM conventions
type BaseModel struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
	Metadata  Metadata       `gorm:"type:text" json:"metadata,omitempty"`
}

// Metadata is a JSON key/value map stored as TEXT, provides extensibility on every table
//
//nolint:recvcheck // mixed receivers required by driver.Valuer/sql.Scanner interface
type Metadata map[string]interface{}

// Value implements driver.Valuer for database storage
func (m Metadata) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil //nolint:nilnil // database/sql pattern for NULL values
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner for database retrieval
func (m *Metadata) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("%w for Metadata", ErrInvalidType)
	}

	return json.Unmarshal(bytes, m)
}

// CycleLog is one recorded cycle start date. The composite unique index
// on (owner_key, start_date) enforces at most one log per owner per
// calendar day; callers normalize start_date to midnight before insert.
type CycleLog struct {
	BaseModel
	ExternalID string    `gorm:"uniqueIndex;size:64" json:"external_id"`
	OwnerKey   string    `gorm:"uniqueIndex:idx_owner_start;index;size:128" json:"owner_key"`
	StartDate  time.Time `gorm:"uniqueIndex:idx_owner_start" json:"start_date"`
}

// TableName overrides the default GORM table name
func (CycleLog) TableName() string {
	return "cycle_logs"
}

// PredictionRecord is a stored next-cycle prediction. At most one row
// per owner has Current=true; SaveCurrent maintains that invariant.
type PredictionRecord struct {
	BaseModel
	OwnerKey      string    `gorm:"index;size:128" json:"owner_key"`
	Current       bool      `gorm:"index" json:"current"`
	PredictedDate time.Time `json:"predicted_date"`
	AverageDays   int       `json:"average_cycle_length_days"`
	Confidence    float64   `json:"confidence"`
	MinDays       int       `json:"min_cycle_length_days"`
	MaxDays       int       `json:"max_cycle_length_days"`
	Reasoning     string    `gorm:"type:text" json:"reasoning"`
	CalculatedAt  time.Time `json:"calculated_at"`
}

// TableName overrides the default GORM table name
func (PredictionRecord) TableName() string {
	return "predictions"
}

// OwnerSettings holds per-owner tracking preferences. Bounds of zero
// mean "use the domain defaults".
type OwnerSettings struct {
	BaseModel
	OwnerKey      string `gorm:"uniqueIndex;size:128" json:"owner_key"`
	AIEligible    bool   `json:"ai_eligible"`
	AIEnabled     bool   `json:"ai_enabled"`
	MinLengthDays int    `json:"min_length_days"`
	MaxLengthDays int    `json:"max_length_days"`
}

// TableName overrides the default GORM table name
func (OwnerSettings) TableName() string {
	return "owner_settings"
}
