package domain

import "errors"

// Sentinel errors for the catalog domain. Use errors.Is() to check these.
var (
	// ErrCardNotFound indicates the requested card does not exist in the collection.
	ErrCardNotFound = errors.New("card not found")

	// ErrInvalidCollection indicates the embedded seed data violates a
	// collection invariant (duplicate id, bad year, negative money field).
	ErrInvalidCollection = errors.New("invalid card collection")
)
