package main

// Exit codes. The three store error kinds map to distinct codes so
// scripts can tell them apart.
const (
	ExitSuccess      = 0 // Success
	ExitError        = 1 // General error (invalid arguments, runtime failure)
	ExitStorageError = 2 // Database file cannot be created, opened, or written
	ExitDataError    = 3 // Validation failure (empty company/role, non-numeric id)
	ExitNotFound     = 4 // No record with the requested id
)
