// Package logging provides logging configuration types and utilities.
package logging

// StandardFields defines the standardized field names for structured logging
// across all components to ensure consistency and enable better log analysis.
//
//nolint:gochecknoglobals // Intentional global constants for standardized field names
var StandardFields = struct {
	// Ownership
	OwnerKey string

	// Timing and Performance
	DurationMs string
	StartTime  string
	EndTime    string
	Timestamp  string

	// Operation Context
	Component     string
	Operation     string
	CorrelationID string

	// Cycle Data
	LogID         string
	StartDate     string
	SampleCount   string
	AverageDays   string
	Regularity    string
	Confidence    string
	PredictedDate string

	// AI Context
	Provider   string
	Model      string
	TokensUsed string
	CacheHit   string
	Attempt    string

	// Error Information
	Error     string
	ErrorType string

	// Status
	Status string
}{
	OwnerKey: "owner_key",

	DurationMs: "duration_ms",
	StartTime:  "start_time",
	EndTime:    "end_time",
	Timestamp:  "@timestamp",

	Component:     "component",
	Operation:     "operation",
	CorrelationID: "correlation_id",

	LogID:         "log_id",
	StartDate:     "start_date",
	SampleCount:   "sample_count",
	AverageDays:   "average_days",
	Regularity:    "regularity",
	Confidence:    "confidence",
	PredictedDate: "predicted_date",

	Provider:   "provider",
	Model:      "model",
	TokensUsed: "tokens_used",
	CacheHit:   "cache_hit",
	Attempt:    "attempt",

	Error:     "error",
	ErrorType: "error_type",

	Status: "status",
}

// ComponentNames defines standardized component names for logging consistency
//
//nolint:gochecknoglobals // Intentional global constants for standardized component names
var ComponentNames = struct {
	DB      string
	AI      string
	Predict string
	Service string
	CLI     string
}{
	DB:      "db",
	AI:      "ai-provider",
	Predict: "predict-engine",
	Service: "tracker-service",
	CLI:     "cli",
}

// OperationTypes defines standardized operation type names
//
//nolint:gochecknoglobals // Intentional global constants for standardized operation types
var OperationTypes = struct {
	LogCreate      string
	LogDelete      string
	StatsCompute   string
	PredictNext    string
	AIGenerate     string
	ConfigValidate string
}{
	LogCreate:      "log_create",
	LogDelete:      "log_delete",
	StatsCompute:   "stats_compute",
	PredictNext:    "predict_next",
	AIGenerate:     "ai_generate",
	ConfigValidate: "config_validate",
}
