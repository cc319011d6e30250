package repository

import "errors"

var (
	// ErrNotFound is returned when the requested record does not
	// exist or has expired.
	ErrNotFound = errors.New("repository: not found")

	// ErrInvalidInput is returned for records missing required ids.
	ErrInvalidInput = errors.New("repository: invalid input")
)
