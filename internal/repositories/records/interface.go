package records

import (
	"context"
)

// Repository is the durable local storage of the diary: a flat set of
// records addressed by stable names. Each record holds one serialized
// value (the credential hash, the entry collection, preferences).
type Repository interface {
	// Get returns the record value, or (nil, nil) if the record is absent.
	Get(ctx context.Context, name string) ([]byte, error)

	// Set writes the record value, overwriting any prior one. The write is
	// atomic: a reader never observes a partially written record.
	Set(ctx context.Context, name string, value []byte) error

	// Delete removes the record. Deleting an absent record is not an error.
	Delete(ctx context.Context, name string) error

	// List returns all records keyed by name.
	List(ctx context.Context) (map[string][]byte, error)

	// Clear removes every record.
	Clear(ctx context.Context) error
}
