package store

import "errors"

// Sentinel errors returned by store implementations.
var (
	// ErrNotFound is returned when a lookup or delete targets a missing row,
	// or when an insert references a row that does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrAlreadyExists is returned when an insert violates a uniqueness constraint.
	ErrAlreadyExists = errors.New("resource already exists")

	// ErrReferenced is returned when a delete is rejected because other rows
	// still reference the target.
	ErrReferenced = errors.New("resource is still referenced")
)
