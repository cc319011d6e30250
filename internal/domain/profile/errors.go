package profile

import "errors"

var (
	// ErrEmptyUserID is returned when Build is called without a user.
	ErrEmptyUserID = errors.New("profile: empty user id")

	// ErrEmptyHistory is returned when the history source has no
	// artists for the user.
	ErrEmptyHistory = errors.New("profile: listening history is empty")
)
