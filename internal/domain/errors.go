package domain

import "errors"

var (
	// ErrNotFound signals a lookup or delete for a string that is not stored.
	ErrNotFound = errors.New("string not found")
	// ErrAlreadyExists signals a create for a value that is already stored.
	ErrAlreadyExists = errors.New("string already exists")
	// ErrInvalidValue signals a malformed or oversized input value.
	ErrInvalidValue = errors.New("invalid value")
	// ErrUnknownPredicate signals a predicate kind the engine cannot evaluate.
	// Unreachable through the public filter constructors.
	ErrUnknownPredicate = errors.New("unknown predicate kind")
)
