package storage

import "errors"

// Common errors returned by the store. Callers match them with
// errors.Is; none of them are retried internally.
var (
	// ErrNotFound indicates no record exists with the requested id.
	ErrNotFound = errors.New("application not found")

	// ErrValidation indicates malformed or missing required input.
	ErrValidation = errors.New("invalid application data")

	// ErrStorage indicates the database file could not be created,
	// opened, or written.
	ErrStorage = errors.New("storage unavailable")
)

// IsNotFound returns true if the error indicates a missing record.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsValidation returns true if the error indicates rejected input.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsStorage returns true if the error indicates an inaccessible database.
func IsStorage(err error) bool {
	return errors.Is(err, ErrStorage)
}
