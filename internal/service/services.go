package service

import (
	"github.com/MKhiriev/go-article-board/internal/logger"
	"github.com/MKhiriev/go-article-board/internal/store"
	"github.com/MKhiriev/go-article-board/internal/utils"
)

type Services struct {
	AuthService    AuthService
	ArticleService ArticleService
}

func NewServices(stores *store.Stores, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(stores.UserRepository, stores.SessionRepository, utils.NewTokenGenerator(), logger),
		ArticleService: NewArticleService(stores.ArticleRepository, logger),
	}
}
