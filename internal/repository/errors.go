package repository

import "errors"

var (
	// ErrNotFound means the requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateKey means an insert violated a uniqueness constraint
	// (username or email).
	ErrDuplicateKey = errors.New("duplicate key")
)
