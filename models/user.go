package models

// UserID is the opaque, caller-supplied identifier of a user account.
// It is distinct from the login: articles reference their author by UserID,
// never by login.
type UserID string

// Token is an opaque session identifier issued on successful authentication.
// A token is valid only while it is present in the session registry; logout
// or a repeated login for the same user removes it.
type Token string

// User represents a registered account used for authentication and
// authorization.
//
// Login is the unique lookup key and is immutable after registration.
// Password is stored exactly as supplied at registration time; comparison
// happens behind a single substitutable function in the service layer so a
// derived-credential scheme can replace it without touching callers.
type User struct {
	// UserID is the caller-supplied account identifier.
	UserID UserID `json:"user_id"`

	// Login is the unique, case-sensitive login name.
	Login string `json:"login"`

	// Password is the stored credential. Accepted on registration and
	// authentication requests; never included in responses.
	Password string `json:"password,omitempty"`

	// ActiveToken references the user's current live session, if any.
	// At most one token per user is live at any time. Internal state,
	// excluded from JSON.
	ActiveToken Token `json:"-"`
}
