package store

import "errors"

// Common errors returned by the store.
var (
	// ErrSessionNotFound is returned when a session id is not registered.
	ErrSessionNotFound = errors.New("session not found")

	// ErrEmptyBatch is returned when a sample batch is empty.
	ErrEmptyBatch = errors.New("samples must be non-empty")

	// ErrSessionIDMismatch is returned when a sample's session id does
	// not match the target session of the submission.
	ErrSessionIDMismatch = errors.New("sample session_id does not match target session")

	// ErrNegativeSample is returned when a sample carries a negative
	// chars_typed or duration_ms value.
	ErrNegativeSample = errors.New("chars_typed and duration_ms must be non-negative")
)

// IsValidation reports whether err is a batch validation failure.
//
// Validation failures are distinct from ErrSessionNotFound so callers can
// map them to different outcomes (bad request vs. resource not found).
func IsValidation(err error) bool {
	return errors.Is(err, ErrEmptyBatch) ||
		errors.Is(err, ErrSessionIDMismatch) ||
		errors.Is(err, ErrNegativeSample)
}
