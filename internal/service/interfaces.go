package service

import (
	"context"

	"github.com/MKhiriev/go-article-board/models"
)

// AuthService is the core identity and session API. The HTTP adapter calls
// it with already-parsed, typed inputs and maps the returned errors onto
// transport responses.
type AuthService interface {
	// RegisterUser creates a new account with no active session.
	RegisterUser(ctx context.Context, user models.User) (models.User, error)

	// Login verifies credentials and issues a fresh session token,
	// invalidating any previously issued token for the same user.
	Login(ctx context.Context, login, password string) (models.Token, error)

	// Logout revokes the session identified by token and clears the owning
	// user's active-token reference in a single step.
	Logout(ctx context.Context, token models.Token) error

	// Identify resolves a token to the owning user's id.
	// Returns ErrNotAuthenticated for an unknown token.
	Identify(ctx context.Context, token models.Token) (models.UserID, error)
}

// ArticleService is the core content API: publishing and visibility-filtered
// retrieval.
type ArticleService interface {
	// Publish stores a new article on behalf of authorID.
	Publish(ctx context.Context, article models.Article, authorID models.UserID) (models.Article, error)

	// List returns the articles visible to viewerID, in insertion order.
	// An empty viewerID means the anonymous viewer.
	List(ctx context.Context, viewerID models.UserID) ([]models.Article, error)
}

// TokenGenerator produces the opaque session tokens issued on login.
// Implemented by [utils.TokenGenerator]; tests substitute deterministic
// generators.
type TokenGenerator interface {
	Generate() models.Token
}
