// Package common defines shared constants and sentinel errors used across
// the diary components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Validation errors: a required field is empty or a value is outside
	// its allowed set. Recoverable by the user.
	ErrValidation = errors.New("validation error")

	// ErrIndexOutOfRange is returned when a positional operation addresses
	// a slot that does not exist in the collection. The collection is left
	// unchanged.
	ErrIndexOutOfRange = errors.New("index out of range")

	// Credential errors.
	ErrCredentialMismatch = errors.New("credential mismatch")

	// ErrCorruptState is returned when a persisted record exists but cannot
	// be deserialized. It must never be masked as an empty state.
	ErrCorruptState = errors.New("corrupt stored state")
)
