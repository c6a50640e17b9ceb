package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-article-board/internal/logger"
	"github.com/MKhiriev/go-article-board/internal/store"
	"github.com/MKhiriev/go-article-board/models"
)

// ─────────────────────────────────────────────
// Mock: store.ArticleRepository
// ─────────────────────────────────────────────

type mockArticleRepository struct {
	createFn func(ctx context.Context, article models.Article) (models.Article, error)
	getAllFn func(ctx context.Context) ([]models.Article, error)
}

func (m *mockArticleRepository) CreateArticle(ctx context.Context, article models.Article) (models.Article, error) {
	if m.createFn != nil {
		return m.createFn(ctx, article)
	}
	return article, nil
}

func (m *mockArticleRepository) GetAll(ctx context.Context) ([]models.Article, error) {
	if m.getAllFn != nil {
		return m.getAllFn(ctx)
	}
	return nil, nil
}

var errStorage = errors.New("storage error")

func validArticle() models.Article {
	return models.Article{
		ArticleID:  "a1",
		Title:      "title",
		Content:    "content",
		Visibility: models.VisibilityPrivate,
	}
}

// ─────────────────────────────────────────────
// Publish
// ─────────────────────────────────────────────

// TestPublish_StampsAuthor verifies that the stored author is always the
// authenticated caller, even when the payload smuggles a different one.
func TestPublish_StampsAuthor(t *testing.T) {
	var stored models.Article
	repo := &mockArticleRepository{
		createFn: func(_ context.Context, article models.Article) (models.Article, error) {
			stored = article
			return article, nil
		},
	}
	svc := NewArticleService(repo, logger.Nop())

	input := validArticle()
	input.AuthorID = "someone-else"

	_, err := svc.Publish(context.Background(), input, "u1")
	require.NoError(t, err)
	assert.Equal(t, models.UserID("u1"), stored.AuthorID)
}

func TestPublish_InvalidVisibility(t *testing.T) {
	svc := NewArticleService(&mockArticleRepository{}, logger.Nop())

	input := validArticle()
	input.Visibility = "friends_only"

	_, err := svc.Publish(context.Background(), input, "u1")
	assert.ErrorIs(t, err, ErrInvalidVisibility)
}

func TestPublish_MissingFields(t *testing.T) {
	svc := NewArticleService(&mockArticleRepository{}, logger.Nop())

	tests := []struct {
		name   string
		mutate func(*models.Article)
	}{
		{name: "no article id", mutate: func(a *models.Article) { a.ArticleID = "" }},
		{name: "no title", mutate: func(a *models.Article) { a.Title = "" }},
		{name: "no content", mutate: func(a *models.Article) { a.Content = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validArticle()
			tt.mutate(&input)

			_, err := svc.Publish(context.Background(), input, "u1")
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
		})
	}
}

func TestPublish_StorageError(t *testing.T) {
	repo := &mockArticleRepository{
		createFn: func(_ context.Context, _ models.Article) (models.Article, error) {
			return models.Article{}, errStorage
		},
	}
	svc := NewArticleService(repo, logger.Nop())

	_, err := svc.Publish(context.Background(), validArticle(), "u1")
	assert.ErrorIs(t, err, errStorage)
}

func TestPublish_DuplicateID(t *testing.T) {
	svc := NewArticleService(store.NewArticleRepository(logger.Nop()), logger.Nop())

	_, err := svc.Publish(context.Background(), validArticle(), "u1")
	require.NoError(t, err)

	_, err = svc.Publish(context.Background(), validArticle(), "u2")
	assert.ErrorIs(t, err, store.ErrArticleAlreadyExists)
}

// ─────────────────────────────────────────────
// List
// ─────────────────────────────────────────────

func TestList_FiltersForViewer(t *testing.T) {
	repo := &mockArticleRepository{
		getAllFn: func(_ context.Context) ([]models.Article, error) {
			return []models.Article{
				article("pub", models.VisibilityPublic, "u1"),
				article("prv", models.VisibilityPrivate, "u1"),
			}, nil
		},
	}
	svc := NewArticleService(repo, logger.Nop())

	visible, err := svc.List(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, "pub", visible[0].ArticleID)
}

func TestList_StorageError(t *testing.T) {
	repo := &mockArticleRepository{
		getAllFn: func(_ context.Context) ([]models.Article, error) {
			return nil, errStorage
		},
	}
	svc := NewArticleService(repo, logger.Nop())

	_, err := svc.List(context.Background(), "u1")
	assert.ErrorIs(t, err, errStorage)
}
