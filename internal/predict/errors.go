package predict

import "errors"

// Sentinel errors for the prediction engine.
var (
	// ErrNoLogs is returned when the caller asks for a prediction with
	// zero logs. This is a programming error in the caller, not a
	// user-recoverable condition.
	ErrNoLogs = errors.New("no cycle logs provided")

	// ErrExternalUnavailable is returned when the external path was
	// requested but no provider capability was injected.
	ErrExternalUnavailable = errors.New("external estimation requested but no provider available")
)
