// Package store owns all mutable application state: the user directory, the
// session registry, and the article store. Each repository is an explicit
// object constructed once at process start and passed into the service layer
// by reference; there is no package-level state.
//
// All repositories are in-memory by design — the service does not persist
// anything across restarts — and each one serializes its own mutations so it
// is safe under concurrent request handling.
package store

import (
	"context"

	"github.com/MKhiriev/go-article-board/models"
)

// UserRepository owns user identity records. It enforces login uniqueness
// and tracks each user's active session token.
type UserRepository interface {
	// CreateUser inserts a new user record with no active token.
	// Returns ErrLoginAlreadyExists if the login is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByLogin returns the record for the given login or
	// ErrUserNotFound.
	FindUserByLogin(ctx context.Context, login string) (models.User, error)

	// Exists reports whether a record with the given login is registered.
	Exists(ctx context.Context, login string) bool

	// SetActiveToken records token as the user's current live session.
	// Returns ErrUserNotFound for an unknown login.
	SetActiveToken(ctx context.Context, login string, token models.Token) error

	// ClearActiveToken removes the user's active session reference.
	// Returns ErrUserNotFound for an unknown login.
	ClearActiveToken(ctx context.Context, login string) error
}

// SessionRepository owns the token → login mapping for live sessions.
type SessionRepository interface {
	// Issue registers the mapping. The caller guarantees token uniqueness.
	Issue(ctx context.Context, token models.Token, login string) error

	// Resolve returns the login owning the token or ErrSessionNotFound.
	Resolve(ctx context.Context, token models.Token) (string, error)

	// Revoke removes the mapping. Revoking an unknown token is a no-op.
	Revoke(ctx context.Context, token models.Token) error
}

// ArticleRepository owns published article records.
type ArticleRepository interface {
	// CreateArticle inserts a new article record.
	// Returns ErrArticleAlreadyExists if the article id is taken.
	CreateArticle(ctx context.Context, article models.Article) (models.Article, error)

	// GetAll returns every stored article in insertion order.
	GetAll(ctx context.Context) ([]models.Article, error)
}
