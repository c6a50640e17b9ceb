package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-article-board/internal/logger"
	"github.com/MKhiriev/go-article-board/internal/store"
	"github.com/MKhiriev/go-article-board/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and the session
// token lifecycle using a UserRepository and a SessionRepository.
type authService struct {
	// users is the user directory: identity records and active-token state.
	users store.UserRepository

	// sessions is the registry of live token → login mappings.
	sessions store.SessionRepository

	// tokens generates the opaque token issued on each successful login.
	tokens TokenGenerator

	// mu serializes Login and Logout. Both are read-modify-write sequences
	// spanning the two repositories, and the "exactly one active token per
	// user" invariant requires them to be atomic with respect to concurrent
	// calls for the same login or token.
	mu sync.Mutex

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given repositories
// and token generator.
func NewAuthService(users store.UserRepository, sessions store.SessionRepository, tokens TokenGenerator, logger *logger.Logger) AuthService {
	return &authService{
		users:    users,
		sessions: sessions,
		tokens:   tokens,
		logger:   logger,
	}
}

// RegisterUser creates a new user account with no active session.
//
// It validates that UserID, Login, and Password are non-empty and delegates
// insertion to the UserRepository.
//
// Returns the stored user or:
//   - ErrInvalidDataProvided if a required field is empty.
//   - A wrapped storage error if the repository call fails (login already
//     taken — see store.ErrLoginAlreadyExists).
func (a *authService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.UserID == "" || user.Login == "" || user.Password == "" {
		log.Error().Str("login", user.Login).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	registeredUser, err := a.users.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("login", user.Login).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user and issues a fresh session token.
//
// The credential check is exact string equality behind credentialsMatch.
// On success the previous token for the same user, if any, is revoked from
// the session registry before the new one becomes visible, so an old token
// can never outlive a re-login.
//
// Returns the new token or:
//   - ErrInvalidDataProvided if login or password is empty.
//   - A wrapped store.ErrUserNotFound if the login is unknown.
//   - ErrWrongPassword if the credentials do not match.
func (a *authService) Login(ctx context.Context, login, password string) (models.Token, error) {
	log := logger.FromContext(ctx)

	if login == "" || password == "" {
		log.Error().Str("login", login).Msg("invalid credentials provided")
		return "", ErrInvalidDataProvided
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	foundUser, err := a.users.FindUserByLogin(ctx, login)
	if err != nil {
		log.Err(err).Str("login", login).Msg("user search by login failed")
		return "", fmt.Errorf("user search by login failed: %w", err)
	}

	if !credentialsMatch(foundUser.Password, password) {
		log.Error().Str("login", login).Msg("wrong password")
		return "", ErrWrongPassword
	}

	token := a.tokens.Generate()

	// a re-login replaces the previous session; the old token must be gone
	// from the registry before the new mapping appears
	if foundUser.ActiveToken != "" {
		if err := a.sessions.Revoke(ctx, foundUser.ActiveToken); err != nil {
			log.Err(err).Str("login", login).Msg("revoking previous session failed")
			return "", fmt.Errorf("revoking previous session failed: %w", err)
		}
	}

	if err := a.sessions.Issue(ctx, token, login); err != nil {
		log.Err(err).Str("login", login).Msg("issuing session failed")
		return "", fmt.Errorf("issuing session failed: %w", err)
	}

	if err := a.users.SetActiveToken(ctx, login, token); err != nil {
		log.Err(err).Str("login", login).Msg("recording active token failed")
		return "", fmt.Errorf("recording active token failed: %w", err)
	}

	return token, nil
}

// Logout revokes the session identified by token.
//
// Revoking the registry entry and clearing the user's active-token reference
// happen under the same lock: there is no observable state where one side is
// applied without the other.
//
// Returns ErrNotAuthenticated if the token does not identify a live session.
func (a *authService) Logout(ctx context.Context, token models.Token) error {
	log := logger.FromContext(ctx)

	a.mu.Lock()
	defer a.mu.Unlock()

	login, err := a.sessions.Resolve(ctx, token)
	if err != nil {
		log.Debug().Msg("logout with unknown token")
		return ErrNotAuthenticated
	}

	if err := a.sessions.Revoke(ctx, token); err != nil {
		log.Err(err).Str("login", login).Msg("revoking session failed")
		return fmt.Errorf("revoking session failed: %w", err)
	}

	if err := a.users.ClearActiveToken(ctx, login); err != nil {
		log.Err(err).Str("login", login).Msg("clearing active token failed")
		return fmt.Errorf("clearing active token failed: %w", err)
	}

	return nil
}

// Identify resolves a session token to the owning user's id.
//
// Any resolution failure is normalised to ErrNotAuthenticated so that
// callers do not need to distinguish an unknown token from a missing user
// record behind it.
func (a *authService) Identify(ctx context.Context, token models.Token) (models.UserID, error) {
	login, err := a.sessions.Resolve(ctx, token)
	if err != nil {
		return "", ErrNotAuthenticated
	}

	user, err := a.users.FindUserByLogin(ctx, login)
	if err != nil {
		return "", ErrNotAuthenticated
	}

	return user.UserID, nil
}
