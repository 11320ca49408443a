package models

import "errors"

// Domain errors shared across layers
var (
	// ErrNotFound indicates the requested entity was not found
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates a uniqueness conflict on the store key
	ErrAlreadyExists = errors.New("already exists")
)
