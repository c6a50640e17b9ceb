package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID     = errors.New("invalid user ID")
	ErrInvalidLogin      = errors.New("invalid login")
	ErrInvalidPassword   = errors.New("invalid password")
	ErrInvalidArticleID  = errors.New("invalid article id")
	ErrInvalidTitle      = errors.New("invalid title")
	ErrInvalidContent    = errors.New("invalid content")
	ErrInvalidVisibility = errors.New("invalid visibility")
)
