package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	// ErrNotAuthenticated is returned on write-or-logout paths when the
	// supplied token does not identify a live session.
	ErrNotAuthenticated = errors.New("not authenticated")

	// ErrInvalidVisibility is returned when an article's visibility is not
	// one of the allowed tiers.
	ErrInvalidVisibility = errors.New("invalid visibility")
)
