package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-article-board/internal/logger"
	"github.com/MKhiriev/go-article-board/internal/utils"
	"github.com/MKhiriev/go-article-board/models"
)

// authenticationHeader is the custom header carrying the opaque session
// token. The name is kept from the previous implementation of this API.
const authenticationHeader = "Authentication-Header"

// identify is an HTTP middleware that resolves the caller's identity from
// the session token header.
//
// A present, live token puts the owning user's ID into the request context
// under [utils.UserIDCtxKey]. An absent or unknown token leaves the context
// untouched: the request proceeds as anonymous, and it is up to each write
// handler to reject anonymous callers with 401. Read access treats anonymous
// as a regular viewer, so identity resolution itself never fails a request.
func (h *Handler) identify(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := tokenFromRequest(r)
		if token == "" {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		userID, err := h.services.AuthService.Identify(ctx, token)
		if err != nil {
			logger.FromRequest(r).Debug().Msg("unknown session token, continuing as anonymous")
			next.ServeHTTP(w, r)
			return
		}

		ctx = context.WithValue(ctx, utils.UserIDCtxKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// tokenFromRequest returns the raw session token carried by the request, or
// the empty token when the header is absent.
func tokenFromRequest(r *http.Request) models.Token {
	return models.Token(r.Header.Get(authenticationHeader))
}
