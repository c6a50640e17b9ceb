package service

import (
	"github.com/MKhiriev/go-article-board/models"
)

// FilterVisible returns the subset of articles visible to the given viewer,
// preserving the input order. An empty viewerID means the anonymous viewer.
//
// An article is included iff any of:
//   - its visibility is public (visible to everyone, anonymous included);
//   - its visibility is logged_in and the viewer is authenticated, whoever
//     they are;
//   - its visibility is private and the viewer is its author. A different
//     authenticated viewer does not qualify.
//
// The function is pure and total: every article is either included or
// excluded, and unknown visibility values are excluded for every viewer.
func FilterVisible(articles []models.Article, viewerID models.UserID) []models.Article {
	filtered := make([]models.Article, 0, len(articles))

	for _, article := range articles {
		if visibleTo(article, viewerID) {
			filtered = append(filtered, article)
		}
	}

	return filtered
}

func visibleTo(article models.Article, viewerID models.UserID) bool {
	switch article.Visibility {
	case models.VisibilityPublic:
		return true
	case models.VisibilityLoggedIn:
		return viewerID != ""
	case models.VisibilityPrivate:
		return viewerID != "" && viewerID == article.AuthorID
	default:
		return false
	}
}
