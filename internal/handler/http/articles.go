package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-article-board/internal/logger"
	"github.com/MKhiriev/go-article-board/internal/service"
	"github.com/MKhiriev/go-article-board/internal/store"
	"github.com/MKhiriev/go-article-board/internal/utils"
	"github.com/MKhiriev/go-article-board/models"
)

// publishArticle handles POST /api/articles.
//
// Status mapping:
//   - 400 — malformed JSON, missing required field, or a visibility value
//     outside the allowed set.
//   - 401 — anonymous caller.
//   - 409 — article id already taken.
//   - 201 — article stored.
func (h *Handler) publishArticle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var article models.Article
	if err := json.NewDecoder(r.Body).Decode(&article); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.Message{Message: msgBodyInvalid}, http.StatusBadRequest)
		return
	}

	if err := h.articleValidator.Validate(ctx, article); err != nil {
		log.Err(err).Msg("article payload failed validation")
		utils.WriteJSON(w, models.Message{Message: msgBodyInvalid}, http.StatusBadRequest)
		return
	}

	authorID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Debug().Msg("anonymous caller tried to publish an article")
		utils.WriteJSON(w, models.Message{Message: msgUnauthorized}, http.StatusUnauthorized)
		return
	}

	if _, err := h.services.ArticleService.Publish(ctx, article, authorID); err != nil {
		switch {
		case errors.Is(err, store.ErrArticleAlreadyExists):
			log.Err(err).Str("article_id", article.ArticleID).Msg("article id already exists")
			utils.WriteJSON(w, models.Message{Message: msgArticleExists}, http.StatusConflict)
			return
		case errors.Is(err, service.ErrInvalidVisibility), errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid article data provided")
			utils.WriteJSON(w, models.Message{Message: msgBodyInvalid}, http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during article publishing")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.Message{Message: msgArticleCreated}, http.StatusCreated)
}

// listArticles handles GET /api/articles.
//
// Always 200. An absent or unknown token means the anonymous view, never an
// error: the identity middleware simply leaves the context without a user ID
// and the visibility filter does the rest.
func (h *Handler) listArticles(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	viewerID, _ := utils.GetUserIDFromContext(ctx)

	articles, err := h.services.ArticleService.List(ctx, viewerID)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during article listing")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, articles, http.StatusOK)
}
