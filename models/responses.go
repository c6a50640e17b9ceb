package models

// Message is the generic JSON response body used for acknowledgements and
// error descriptions: {"message": "..."}.
type Message struct {
	Message string `json:"message"`
}

// TokenResponse carries a freshly issued session token back to the client
// after successful authentication.
type TokenResponse struct {
	Token Token `json:"token"`
}
