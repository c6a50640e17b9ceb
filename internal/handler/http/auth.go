package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-article-board/internal/logger"
	"github.com/MKhiriev/go-article-board/internal/service"
	"github.com/MKhiriev/go-article-board/internal/store"
	"github.com/MKhiriev/go-article-board/internal/utils"
	"github.com/MKhiriev/go-article-board/internal/validators"
	"github.com/MKhiriev/go-article-board/models"
)

// register handles POST /api/user.
//
// Status mapping:
//   - 400 — malformed JSON or a missing required field.
//   - 409 — login already registered.
//   - 201 — account created.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.Message{Message: msgBodyInvalid}, http.StatusBadRequest)
		return
	}

	if err := h.userValidator.Validate(ctx, user); err != nil {
		log.Err(err).Msg("user payload failed validation")
		utils.WriteJSON(w, models.Message{Message: msgBodyInvalid}, http.StatusBadRequest)
		return
	}

	if _, err := h.services.AuthService.RegisterUser(ctx, user); err != nil {
		switch {
		case errors.Is(err, store.ErrLoginAlreadyExists):
			log.Err(err).Str("login", user.Login).Msg("login already exists")
			utils.WriteJSON(w, models.Message{Message: msgLoginExists}, http.StatusConflict)
			return
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteJSON(w, models.Message{Message: msgBodyInvalid}, http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.Message{Message: msgUserCreated}, http.StatusCreated)
}

// authenticate handles POST /api/authenticate.
//
// Status mapping:
//   - 400 — malformed JSON or a missing login/password.
//   - 404 — unknown login. Distinct from a credential mismatch, matching the
//     behavior existing clients depend on.
//   - 401 — wrong password.
//   - 200 — token issued, returned as {"token": t}.
func (h *Handler) authenticate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		utils.WriteJSON(w, models.Message{Message: msgBodyInvalid}, http.StatusBadRequest)
		return
	}

	if err := h.userValidator.Validate(ctx, user, validators.FieldLogin, validators.FieldPassword); err != nil {
		log.Err(err).Msg("credentials payload failed validation")
		utils.WriteJSON(w, models.Message{Message: msgBodyInvalid}, http.StatusBadRequest)
		return
	}

	token, err := h.services.AuthService.Login(ctx, user.Login, user.Password)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUserNotFound):
			log.Err(err).Str("login", user.Login).Msg("user not found")
			utils.WriteJSON(w, models.Message{Message: msgUserNotFound}, http.StatusNotFound)
			return
		case errors.Is(err, service.ErrWrongPassword):
			log.Err(err).Str("login", user.Login).Msg("wrong password")
			utils.WriteJSON(w, models.Message{Message: msgWrongCredentials}, http.StatusUnauthorized)
			return
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteJSON(w, models.Message{Message: msgBodyInvalid}, http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.TokenResponse{Token: token}, http.StatusOK)
}

// logout handles POST /api/logout.
//
// Status mapping:
//   - 401 — absent or unknown session token.
//   - 200 — session revoked.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	token := tokenFromRequest(r)
	if token == "" {
		log.Err(ErrEmptyAuthenticationHeader).Send()
		utils.WriteJSON(w, models.Message{Message: msgUnauthorized}, http.StatusUnauthorized)
		return
	}

	if err := h.services.AuthService.Logout(ctx, token); err != nil {
		switch {
		case errors.Is(err, service.ErrNotAuthenticated):
			log.Err(err).Msg("logout with unknown token")
			utils.WriteJSON(w, models.Message{Message: msgUnauthorized}, http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during logout")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.Message{Message: msgLogoutSuccess}, http.StatusOK)
}
