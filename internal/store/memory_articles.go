package store

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-article-board/internal/logger"
	"github.com/MKhiriev/go-article-board/models"
)

// articleRepository is the in-memory implementation of [ArticleRepository].
//
// Map iteration order is not stable, so the repository keeps an explicit
// ordered list of article ids next to the id index. GetAll walks the list,
// which guarantees insertion order in every enumeration.
type articleRepository struct {
	logger *logger.Logger

	mu    sync.RWMutex
	order []string
	byID  map[string]models.Article
}

// NewArticleRepository constructs an empty in-memory [ArticleRepository].
func NewArticleRepository(logger *logger.Logger) ArticleRepository {
	logger.Debug().Msg("creating article repository")
	return &articleRepository{
		logger: logger,
		byID:   make(map[string]models.Article),
	}
}

// CreateArticle inserts a new article record.
//
// Reusing an article id is rejected with [ErrArticleAlreadyExists]; articles
// are immutable after creation, so there is nothing a second write could
// legitimately change.
func (r *articleRepository) CreateArticle(ctx context.Context, article models.Article) (models.Article, error) {
	log := logger.FromContext(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[article.ArticleID]; ok {
		log.Debug().Str("article_id", article.ArticleID).Msg("article id already exists")
		return models.Article{}, ErrArticleAlreadyExists
	}

	r.byID[article.ArticleID] = article
	r.order = append(r.order, article.ArticleID)

	return article, nil
}

// GetAll returns a copy of every stored article in insertion order.
func (r *articleRepository) GetAll(ctx context.Context) ([]models.Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	articles := make([]models.Article, 0, len(r.order))
	for _, id := range r.order {
		articles = append(articles, r.byID[id])
	}

	return articles, nil
}
