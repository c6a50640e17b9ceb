package http

import "errors"

var (
	// ErrEmptyAuthenticationHeader indicates a request that carried no
	// session token at all.
	ErrEmptyAuthenticationHeader = errors.New("empty authentication header")
)

// Response messages returned in JSON bodies. Kept stable for existing
// clients.
const (
	msgBodyInvalid      = "request body invalid"
	msgLoginExists      = "login exists"
	msgUserCreated      = "user created"
	msgUserNotFound     = "user not found"
	msgWrongCredentials = "credential does not match"
	msgUnauthorized     = "unauthorized"
	msgLogoutSuccess    = "logout success"
	msgArticleCreated   = "article created"
	msgArticleExists    = "article id exists"
)
