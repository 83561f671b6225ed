// Package types defines the Dex and Table interfaces, the catalog entity
// types (Pokemon, Move, Item, Trainer), and the standard errors shared by
// all storage backends.
package types
