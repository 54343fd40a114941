package services

import "errors"

// Domain outcomes the presentation layer is expected to branch on. Everything
// else a service returns is a wrapped storage error.
var (
	ErrInvalidInput     = errors.New("invalid_input")
	ErrNotFound         = errors.New("not_found")
	ErrNoAvailability   = errors.New("no_rooms_available")
	ErrNotCheckedIn     = errors.New("not_checked_in")
	ErrAlreadyCheckedIn = errors.New("already_checked_in")
)
