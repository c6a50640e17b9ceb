package store

import (
	"github.com/MKhiriev/go-article-board/internal/logger"
)

// Stores aggregates every repository owned by the application. One instance
// is created at startup and shared by all services.
type Stores struct {
	UserRepository    UserRepository
	SessionRepository SessionRepository
	ArticleRepository ArticleRepository
}

func NewStores(logger *logger.Logger) *Stores {
	logger.Info().Msg("creating stores...")

	return &Stores{
		UserRepository:    NewUserRepository(logger),
		SessionRepository: NewSessionRepository(logger),
		ArticleRepository: NewArticleRepository(logger),
	}
}
