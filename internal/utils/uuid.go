package utils

import (
	"github.com/google/uuid"

	"github.com/MKhiriev/go-article-board/models"
)

// TokenGenerator produces opaque, globally-unique session tokens.
type TokenGenerator struct {
}

func NewTokenGenerator() *TokenGenerator {
	return &TokenGenerator{}
}

// Generate returns a fresh session token. UUID v7 is preferred; on the rare
// entropy failure it falls back to a v4 value.
func (g *TokenGenerator) Generate() models.Token {
	v7, err := uuid.NewV7()
	if err != nil {
		return models.Token(uuid.NewString())
	}

	return models.Token(v7.String())
}
