package app

import "errors"

var (
	// ErrProfileMissing is returned when an operation needs a taste
	// profile the user has not built yet.
	ErrProfileMissing = errors.New("app: taste profile missing")

	// ErrNotFound is returned for unknown favorite or share ids.
	ErrNotFound = errors.New("app: not found")

	// ErrInvalidInput is returned for requests missing required
	// fields.
	ErrInvalidInput = errors.New("app: invalid input")
)
