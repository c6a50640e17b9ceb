// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. This layer is a thin adapter: it parses bodies, resolves
// the caller's identity from the session token header, calls into the
// service layer with typed inputs, and maps core errors onto status codes.
package http

import (
	"github.com/MKhiriev/go-article-board/internal/logger"
	"github.com/MKhiriev/go-article-board/internal/service"
	"github.com/MKhiriev/go-article-board/internal/validators"
)

type Handler struct {
	services *service.Services

	userValidator    validators.Validator
	articleValidator validators.Validator

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:         services,
		userValidator:    validators.NewUserValidator(),
		articleValidator: validators.NewArticleValidator(),
		logger:           logger,
	}
}
