package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-article-board/internal/logger"
	"github.com/MKhiriev/go-article-board/internal/store"
	"github.com/MKhiriev/go-article-board/models"
)

// articleService is the concrete implementation of ArticleService.
type articleService struct {
	articles store.ArticleRepository
	logger   *logger.Logger
}

// NewArticleService constructs an ArticleService backed by the given
// ArticleRepository.
func NewArticleService(articles store.ArticleRepository, logger *logger.Logger) ArticleService {
	return &articleService{
		articles: articles,
		logger:   logger,
	}
}

// Publish stores a new article on behalf of authorID.
//
// The author recorded on the article is always the authenticated caller's
// UserID; any author value supplied in the input is overwritten.
//
// Returns the stored article or:
//   - ErrInvalidDataProvided if a required field is empty.
//   - ErrInvalidVisibility if the visibility tier is not allowed.
//   - A wrapped storage error if the repository call fails (duplicate id —
//     see store.ErrArticleAlreadyExists).
func (s *articleService) Publish(ctx context.Context, article models.Article, authorID models.UserID) (models.Article, error) {
	log := logger.FromContext(ctx)

	if article.ArticleID == "" || article.Title == "" || article.Content == "" {
		log.Error().Str("article_id", article.ArticleID).Msg("invalid article data provided")
		return models.Article{}, ErrInvalidDataProvided
	}

	if !article.Visibility.Valid() {
		log.Error().Str("visibility", string(article.Visibility)).Msg("invalid visibility provided")
		return models.Article{}, ErrInvalidVisibility
	}

	article.AuthorID = authorID

	createdArticle, err := s.articles.CreateArticle(ctx, article)
	if err != nil {
		log.Err(err).Str("article_id", article.ArticleID).Msg("article creation ended with error")
		return models.Article{}, fmt.Errorf("article creation ended with error: %w", err)
	}

	return createdArticle, nil
}

// List returns the articles visible to viewerID in insertion order.
// An empty viewerID means the anonymous viewer.
func (s *articleService) List(ctx context.Context, viewerID models.UserID) ([]models.Article, error) {
	log := logger.FromContext(ctx)

	articles, err := s.articles.GetAll(ctx)
	if err != nil {
		log.Err(err).Msg("loading articles ended with error")
		return nil, fmt.Errorf("loading articles ended with error: %w", err)
	}

	return FilterVisible(articles, viewerID), nil
}
