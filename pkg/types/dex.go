package types

import "errors"

// Dex defines the interface for backend-agnostic storage access.
// Callers attach to a backend, access catalogs by table name, and detach
// when done.
type Dex interface {
	// GetTable returns the Table for the given name.
	// Returns ErrTableNotFound if the name is not a standard table.
	GetTable(name string) (Table, error)

	// Attach connects the Dex to the backend described by config.
	// Creates the DataDir if it does not exist and loads any catalog
	// data files found there. Returns ErrAlreadyAttached if called
	// while already attached.
	Attach(config Config) error

	// Detach releases backend resources. Idempotent: multiple calls
	// succeed. After Detach, GetTable returns ErrDexDetached.
	Detach() error
}

// Dex lifecycle errors.
var (
	ErrDexDetached     = errors.New("dex is detached")
	ErrAlreadyAttached = errors.New("dex is already attached")
	ErrTableNotFound   = errors.New("table not found")
)
