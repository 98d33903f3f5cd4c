package db

import "errors"

// Sentinel errors following internal/ai/errors.go conventions
var (
	// ErrEmptyPath is returned when opening a database with no path
	ErrEmptyPath = errors.New("database path is empty")

	// ErrRecordNotFound is returned when a requested record does not exist
	ErrRecordNotFound = errors.New("record not found")

	// ErrDuplicateLog is returned when a cycle log already exists for the
	// same owner and start date
	ErrDuplicateLog = errors.New("cycle log already exists for this date")

	// ErrMissingOwnerKey is returned when a record is created without an owner key
	ErrMissingOwnerKey = errors.New("owner_key is required")

	// ErrValidationFailed is returned when model validation fails
	ErrValidationFailed = errors.New("validation failed")

	// ErrInvalidType is returned when scanning a value of incorrect type
	ErrInvalidType = errors.New("invalid type")
)
