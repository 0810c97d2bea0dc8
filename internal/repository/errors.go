package repository

import "errors"

var (
	// ErrNotFound - no row exists for the given key
	ErrNotFound = errors.New("not found")

	// ErrInvalidID - a route parameter could not be parsed as an entity id
	ErrInvalidID = errors.New("invalid identifier")

	// ErrConsistency - stored data violates an internal invariant, such as an
	// entity without an assigned identity or a post whose author is missing.
	// Never surfaced verbatim to the caller.
	ErrConsistency = errors.New("internal consistency violation")
)
