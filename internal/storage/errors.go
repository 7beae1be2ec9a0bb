package storage

import "errors"

// Errors shared by the memory, Postgres and ClickHouse stores.
var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateKey is returned when a record with the same key was already
	// appended. Journals never update rows in place.
	ErrDuplicateKey = errors.New("duplicate key: record already journaled")

	// ErrInvalidInput is returned when input validation fails.
	ErrInvalidInput = errors.New("invalid input")
)
