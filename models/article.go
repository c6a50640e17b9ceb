package models

// Visibility controls which viewers an article is listed for.
type Visibility string

const (
	// VisibilityPublic makes an article visible to every viewer, including
	// anonymous ones.
	VisibilityPublic Visibility = "public"

	// VisibilityPrivate makes an article visible to its author only.
	VisibilityPrivate Visibility = "private"

	// VisibilityLoggedIn makes an article visible to any authenticated
	// viewer.
	VisibilityLoggedIn Visibility = "logged_in"
)

// Valid reports whether v is one of the three recognized visibility levels.
func (v Visibility) Valid() bool {
	switch v {
	case VisibilityPublic, VisibilityPrivate, VisibilityLoggedIn:
		return true
	default:
		return false
	}
}

// Article is a published piece of content. The author is referenced by
// UserID; the publishing handler stamps it from the caller's session, so a
// client-supplied value is never trusted.
type Article struct {
	// ArticleID is the caller-supplied unique identifier of the article.
	ArticleID string `json:"article_id"`

	// Title is the article headline.
	Title string `json:"title"`

	// Content is the article body.
	Content string `json:"content"`

	// Visibility selects the audience: "public", "private" or "logged_in".
	Visibility Visibility `json:"visibility"`

	// AuthorID is the UserID of the publishing account.
	AuthorID UserID `json:"user_id"`
}
