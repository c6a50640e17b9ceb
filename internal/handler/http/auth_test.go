package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-article-board/internal/logger"
	"github.com/MKhiriev/go-article-board/internal/service"
	"github.com/MKhiriev/go-article-board/internal/store"
	"github.com/MKhiriev/go-article-board/models"
)

// ─────────────────────────────────────────────
// Mock AuthService
// ─────────────────────────────────────────────

// mockAuthService implements service.AuthService for unit tests.
// Each method field can be overridden per test case.
type mockAuthService struct {
	registerUserFn func(ctx context.Context, user models.User) (models.User, error)
	loginFn        func(ctx context.Context, login, password string) (models.Token, error)
	logoutFn       func(ctx context.Context, token models.Token) error
	identifyFn     func(ctx context.Context, token models.Token) (models.UserID, error)
}

func (m *mockAuthService) RegisterUser(ctx context.Context, user models.User) (models.User, error) {
	return m.registerUserFn(ctx, user)
}

func (m *mockAuthService) Login(ctx context.Context, login, password string) (models.Token, error) {
	return m.loginFn(ctx, login, password)
}

func (m *mockAuthService) Logout(ctx context.Context, token models.Token) error {
	return m.logoutFn(ctx, token)
}

func (m *mockAuthService) Identify(ctx context.Context, token models.Token) (models.UserID, error) {
	return m.identifyFn(ctx, token)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newHandlerWithAuth builds a Handler with the given AuthService mock.
func newHandlerWithAuth(t *testing.T, auth service.AuthService) *Handler {
	t.Helper()
	svcs := &service.Services{
		AuthService: auth,
	}
	return NewHandler(svcs, logger.Nop())
}

// userBody serialises a models.User to a JSON request body string.
func userBody(t *testing.T, u models.User) string {
	t.Helper()
	b, err := json.Marshal(u)
	require.NoError(t, err)
	return string(b)
}

// validUser is a convenience fixture used across multiple tests.
var validUser = models.User{
	UserID:   "u1",
	Login:    "alice",
	Password: "p",
}

// ─────────────────────────────────────────────
// register
// ─────────────────────────────────────────────

// TestRegister_Success verifies that a valid registration request results in
// 201 Created and the "user created" acknowledgement.
func TestRegister_Success(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, u models.User) (models.User, error) {
			return u, nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/user", strings.NewReader(userBody(t, validUser)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), msgUserCreated)
}

// TestRegister_InvalidJSON verifies that a malformed request body results in
// 400 Bad Request before the service is called.
func TestRegister_InvalidJSON(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/api/user", strings.NewReader("{invalid json}"))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), msgBodyInvalid)
}

// TestRegister_MissingFields verifies that an incomplete payload is rejected
// with 400 by the declarative validator.
func TestRegister_MissingFields(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	tests := []struct {
		name string
		user models.User
	}{
		{name: "no user id", user: models.User{Login: "alice", Password: "p"}},
		{name: "no login", user: models.User{UserID: "u1", Password: "p"}},
		{name: "no password", user: models.User{UserID: "u1", Login: "alice"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/user", strings.NewReader(userBody(t, tt.user)))
			rec := httptest.NewRecorder()

			h.register(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

// TestRegister_LoginTaken verifies the 409 mapping for duplicate logins.
func TestRegister_LoginTaken(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, store.ErrLoginAlreadyExists
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/user", strings.NewReader(userBody(t, validUser)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), msgLoginExists)
}

func TestRegister_UnexpectedError(t *testing.T) {
	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, assert.AnError
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/user", strings.NewReader(userBody(t, validUser)))
	rec := httptest.NewRecorder()

	h.register(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

// ─────────────────────────────────────────────
// authenticate
// ─────────────────────────────────────────────

// TestAuthenticate_Success verifies the 200 mapping and the token payload.
func TestAuthenticate_Success(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, login, password string) (models.Token, error) {
			assert.Equal(t, "alice", login)
			assert.Equal(t, "p", password)
			return "issued-token", nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/authenticate", strings.NewReader(`{"login":"alice","password":"p"}`))
	rec := httptest.NewRecorder()

	h.authenticate(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.TokenResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, models.Token("issued-token"), resp.Token)
}

// TestAuthenticate_DoesNotRequireUserID verifies that the authenticate
// payload is validated with login/password scoping only.
func TestAuthenticate_DoesNotRequireUserID(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _, _ string) (models.Token, error) {
			return "issued-token", nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/authenticate", strings.NewReader(`{"login":"alice","password":"p"}`))
	rec := httptest.NewRecorder()

	h.authenticate(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

// TestAuthenticate_UserNotFound verifies the 404 mapping for unknown logins,
// distinct from a wrong password.
func TestAuthenticate_UserNotFound(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _, _ string) (models.Token, error) {
			return "", store.ErrUserNotFound
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/authenticate", strings.NewReader(`{"login":"nobody","password":"p"}`))
	rec := httptest.NewRecorder()

	h.authenticate(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), msgUserNotFound)
}

// TestAuthenticate_WrongPassword verifies the 401 mapping.
func TestAuthenticate_WrongPassword(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _, _ string) (models.Token, error) {
			return "", service.ErrWrongPassword
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/authenticate", strings.NewReader(`{"login":"alice","password":"wrong"}`))
	rec := httptest.NewRecorder()

	h.authenticate(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), msgWrongCredentials)
}

func TestAuthenticate_MissingFields(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/api/authenticate", strings.NewReader(`{"login":"alice"}`))
	rec := httptest.NewRecorder()

	h.authenticate(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// logout
// ─────────────────────────────────────────────

// TestLogout_Success verifies that the token from the authentication header
// reaches the service and a successful revocation maps to 200.
func TestLogout_Success(t *testing.T) {
	auth := &mockAuthService{
		logoutFn: func(_ context.Context, token models.Token) error {
			assert.Equal(t, models.Token("live-token"), token)
			return nil
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/logout", nil)
	req.Header.Set(authenticationHeader, "live-token")
	rec := httptest.NewRecorder()

	h.logout(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), msgLogoutSuccess)
}

func TestLogout_MissingHeader(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	req := httptest.NewRequest(http.MethodPost, "/api/logout", nil)
	rec := httptest.NewRecorder()

	h.logout(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), msgUnauthorized)
}

func TestLogout_UnknownToken(t *testing.T) {
	auth := &mockAuthService{
		logoutFn: func(_ context.Context, _ models.Token) error {
			return service.ErrNotAuthenticated
		},
	}

	h := newHandlerWithAuth(t, auth)
	req := httptest.NewRequest(http.MethodPost, "/api/logout", nil)
	req.Header.Set(authenticationHeader, "stale-token")
	rec := httptest.NewRecorder()

	h.logout(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
