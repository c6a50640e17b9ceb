package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLoginAlreadyExists is returned when an attempt to register a new user
	// fails because a user with the same login already exists.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrUserNotFound is returned when a lookup expected to match a user
	// record produces no result.
	ErrUserNotFound = errors.New("user not found")

	// ErrSessionNotFound is returned when a token does not map to any live
	// session in the registry.
	ErrSessionNotFound = errors.New("session not found")

	// ErrArticleAlreadyExists is returned when an attempt to publish an
	// article fails because an article with the same id already exists.
	ErrArticleAlreadyExists = errors.New("article id already exists")
)
