package types

import "errors"

// Table provides uniform CRUD operations for a single entity type.
// Get and Fetch return any; callers type-assert to the concrete entity
// struct.
type Table interface {
	// Get retrieves the entity with the given ID. For the pokemon table
	// the ID is the dex number in decimal; other tables use UUIDs.
	// Returns ErrNotFound if no entity exists with that ID.
	Get(id string) (any, error)

	// Set creates or updates an entity. When id is empty a new entity is
	// created: UUID-keyed tables generate a UUID v7, the pokemon table
	// derives the ID from the dex number. Returns the actual ID used.
	Set(id string, data any) (string, error)

	// Delete removes the entity with the given ID.
	// Returns ErrNotFound if no entity exists with that ID.
	Delete(id string) error

	// Fetch returns all entities matching the filter. An empty filter
	// returns every entity in the table. String-valued filters match as
	// case-insensitive substrings.
	Fetch(filter map[string]any) ([]any, error)
}

// Table operation errors.
var (
	ErrNotFound        = errors.New("entity not found")
	ErrInvalidID       = errors.New("invalid entity ID")
	ErrInvalidData     = errors.New("invalid entity data")
	ErrInvalidFilter   = errors.New("invalid filter value type")
	ErrDuplicateNumber = errors.New("duplicate dex number")
	ErrDuplicateName   = errors.New("duplicate name")
)
