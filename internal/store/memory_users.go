package store

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-article-board/internal/logger"
	"github.com/MKhiriev/go-article-board/models"
)

// userRepository is the in-memory implementation of [UserRepository].
// Records are keyed by login; a RWMutex serializes mutations so the
// repository is safe for concurrent request handling.
type userRepository struct {
	logger *logger.Logger

	mu    sync.RWMutex
	users map[string]models.User
}

// NewUserRepository constructs an empty in-memory [UserRepository].
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewUserRepository(logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		logger: logger,
		users:  make(map[string]models.User),
	}
}

// CreateUser inserts a new user record with no active token.
//
// Duplicate registration attempts are rejected with [ErrLoginAlreadyExists],
// never merged, regardless of the password supplied on the second attempt.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.Login]; ok {
		log.Debug().Str("login", user.Login).Msg("login already exists")
		return models.User{}, ErrLoginAlreadyExists
	}

	user.ActiveToken = ""
	r.users[user.Login] = user

	return user, nil
}

func (r *userRepository) FindUserByLogin(ctx context.Context, login string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[login]
	if !ok {
		return models.User{}, ErrUserNotFound
	}

	return user, nil
}

func (r *userRepository) Exists(ctx context.Context, login string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.users[login]
	return ok
}

func (r *userRepository) SetActiveToken(ctx context.Context, login string, token models.Token) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[login]
	if !ok {
		return ErrUserNotFound
	}

	user.ActiveToken = token
	r.users[login] = user

	return nil
}

func (r *userRepository) ClearActiveToken(ctx context.Context, login string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[login]
	if !ok {
		return ErrUserNotFound
	}

	user.ActiveToken = ""
	r.users[login] = user

	return nil
}
