package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.identify)

	router.Post("/api/user", h.register)
	router.Post("/api/authenticate", h.authenticate)
	router.Post("/api/logout", h.logout)

	router.Post("/api/articles", h.publishArticle)
	router.Get("/api/articles", h.listArticles)

	return router
}
