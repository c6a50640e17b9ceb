package validators

import (
	"context"

	"github.com/MKhiriev/go-article-board/models"
)

// Field names accepted by ArticleValidator.
const (
	FieldArticleID  = "article_id"
	FieldTitle      = "title"
	FieldContent    = "content"
	FieldVisibility = "visibility"
)

// allowedVisibilities is the enumerated set accepted for the visibility field.
var allowedVisibilities = []string{
	string(models.VisibilityPublic),
	string(models.VisibilityPrivate),
	string(models.VisibilityLoggedIn),
}

// articleRules declares the validation for article payloads.
var articleRules = map[string]FieldRule{
	FieldArticleID:  {Rule: RuleRequired, Err: ErrInvalidArticleID},
	FieldTitle:      {Rule: RuleRequired, Err: ErrInvalidTitle},
	FieldContent:    {Rule: RuleRequired, Err: ErrInvalidContent},
	FieldVisibility: {Rule: RuleOneOf, Allowed: allowedVisibilities, Err: ErrInvalidVisibility},
}

type ArticleValidator struct {
}

func NewArticleValidator() Validator {
	return &ArticleValidator{}
}

func (v *ArticleValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Article:
		return v.validateArticle(ctx, value, fields...)
	case *models.Article:
		return v.validateArticle(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ArticleValidator) validateArticle(ctx context.Context, article models.Article, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldArticleID, FieldTitle, FieldContent, FieldVisibility}
	}

	for _, f := range fields {
		rule, ok := articleRules[f]
		if !ok {
			return ErrUnknownField
		}

		if err := rule.apply(articleField(article, f)); err != nil {
			return err
		}
	}

	return nil
}

func articleField(article models.Article, field string) string {
	switch field {
	case FieldArticleID:
		return article.ArticleID
	case FieldTitle:
		return article.Title
	case FieldContent:
		return article.Content
	case FieldVisibility:
		return string(article.Visibility)
	default:
		return ""
	}
}
