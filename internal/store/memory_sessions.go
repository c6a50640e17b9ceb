package store

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-article-board/internal/logger"
	"github.com/MKhiriev/go-article-board/models"
)

// sessionRepository is the in-memory implementation of [SessionRepository].
// It holds the token → login mapping for every live session. Tokens do not
// expire; entries leave the registry only through Revoke.
type sessionRepository struct {
	logger *logger.Logger

	mu       sync.RWMutex
	sessions map[models.Token]string
}

// NewSessionRepository constructs an empty in-memory [SessionRepository].
func NewSessionRepository(logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		logger:   logger,
		sessions: make(map[models.Token]string),
	}
}

func (r *sessionRepository) Issue(ctx context.Context, token models.Token, login string) error {
	log := logger.FromContext(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[token] = login
	log.Debug().Str("login", login).Msg("session issued")

	return nil
}

func (r *sessionRepository) Resolve(ctx context.Context, token models.Token) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	login, ok := r.sessions[token]
	if !ok {
		return "", ErrSessionNotFound
	}

	return login, nil
}

func (r *sessionRepository) Revoke(ctx context.Context, token models.Token) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, token)

	return nil
}
