package repository

import "errors"

var (
	// ErrNotFound indicates the requested session does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates a save lost an optimistic-concurrency race:
	// another turn mutated the session since it was read.
	ErrConflict = errors.New("session was modified concurrently")
)
