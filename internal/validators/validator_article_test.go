package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-article-board/models"
)

func validTestArticle() models.Article {
	return models.Article{
		ArticleID:  "a1",
		Title:      "title",
		Content:    "content",
		Visibility: models.VisibilityPublic,
	}
}

func TestArticleValidator_AllFields(t *testing.T) {
	v := NewArticleValidator()

	tests := []struct {
		name    string
		mutate  func(*models.Article)
		wantErr error
	}{
		{name: "valid public", mutate: func(*models.Article) {}, wantErr: nil},
		{name: "valid private", mutate: func(a *models.Article) { a.Visibility = models.VisibilityPrivate }, wantErr: nil},
		{name: "valid logged_in", mutate: func(a *models.Article) { a.Visibility = models.VisibilityLoggedIn }, wantErr: nil},
		{name: "missing article id", mutate: func(a *models.Article) { a.ArticleID = "" }, wantErr: ErrInvalidArticleID},
		{name: "missing title", mutate: func(a *models.Article) { a.Title = "" }, wantErr: ErrInvalidTitle},
		{name: "missing content", mutate: func(a *models.Article) { a.Content = "" }, wantErr: ErrInvalidContent},
		{name: "missing visibility", mutate: func(a *models.Article) { a.Visibility = "" }, wantErr: ErrInvalidVisibility},
		{name: "visibility outside allowed set", mutate: func(a *models.Article) { a.Visibility = "friends_only" }, wantErr: ErrInvalidVisibility},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			article := validTestArticle()
			tt.mutate(&article)

			err := v.Validate(context.Background(), article)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestArticleValidator_PointerInput(t *testing.T) {
	v := NewArticleValidator()

	article := validTestArticle()
	assert.NoError(t, v.Validate(context.Background(), &article))
}

func TestArticleValidator_UnsupportedType(t *testing.T) {
	v := NewArticleValidator()

	assert.ErrorIs(t, v.Validate(context.Background(), 42), ErrUnsupportedType)
}

func TestArticleValidator_UnknownField(t *testing.T) {
	v := NewArticleValidator()

	assert.ErrorIs(t, v.Validate(context.Background(), validTestArticle(), "slug"), ErrUnknownField)
}
