package auth

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/EgorLis/file-vault/internal/domain"
	"github.com/EgorLis/file-vault/internal/transport/web/mw"
)

type fakeSessions struct {
	tokens  map[string]domain.UserID
	email   string
	pswd    string
	user    domain.User
	loginFn func() (string, error)
}

func newFakeSessions(email, pswd string) *fakeSessions {
	return &fakeSessions{
		tokens: map[string]domain.UserID{},
		email:  email,
		pswd:   pswd,
		user:   domain.User{ID: uuid.New(), Email: email},
	}
}

func (s *fakeSessions) Login(_ context.Context, email, pswd string) (string, error) {
	if s.loginFn != nil {
		return s.loginFn()
	}
	if email != s.email || pswd != s.pswd {
		return "", domain.ErrUnauth
	}
	token := uuid.NewString()
	s.tokens[token] = s.user.ID
	return token, nil
}

func (s *fakeSessions) Logout(_ context.Context, token string) error {
	if token == "" {
		return domain.ErrUnauth
	}
	delete(s.tokens, token)
	return nil
}

func (s *fakeSessions) Authenticate(_ context.Context, token string) (domain.User, error) {
	if _, ok := s.tokens[token]; !ok {
		return domain.User{}, domain.ErrUnauth
	}
	return s.user, nil
}

func newHandler(sessions SessionManager) *Handler {
	return &Handler{Log: log.New(io.Discard, "", 0), Sessions: sessions}
}

func basic(email, pswd string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(email+":"+pswd))
}

func connect(h *Handler, authHeader string) *httptest.ResponseRecorder {
	r := httptest.NewRequest(http.MethodGet, "/connect", nil)
	if authHeader != "" {
		r.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	h.Connect(rec, r)
	return rec
}

func TestConnect(t *testing.T) {
	t.Parallel()

	sessions := newFakeSessions("bob@dylan.com", "toto1234!")
	h := newHandler(sessions)

	rec := connect(h, basic("bob@dylan.com", "toto1234!"))
	require.Equal(t, http.StatusOK, rec.Code)

	var out connectResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.NotEmpty(t, out.Token)
	assert.Equal(t, out.Token, rec.Header().Get("X-Token"))
	assert.Contains(t, sessions.tokens, out.Token)
}

func TestConnect_Unauthorized(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"not basic", "Bearer abc"},
		{"broken base64", "Basic %%%"},
		{"no colon", "Basic " + base64.StdEncoding.EncodeToString([]byte("bobdylan.com"))},
		{"wrong password", basic("bob@dylan.com", "nope")},
		{"unknown user", basic("nobody@dylan.com", "toto1234!")},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := newHandler(newFakeSessions("bob@dylan.com", "toto1234!"))
			rec := connect(h, tc.header)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.JSONEq(t, `{"error":"Unauthorized"}`, rec.Body.String())
		})
	}
}

func TestConnect_StoreFailure(t *testing.T) {
	t.Parallel()

	sessions := newFakeSessions("bob@dylan.com", "toto1234!")
	sessions.loginFn = func() (string, error) { return "", errors.New("redis down") }
	h := newHandler(sessions)

	rec := connect(h, basic("bob@dylan.com", "toto1234!"))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestDisconnect(t *testing.T) {
	t.Parallel()

	sessions := newFakeSessions("bob@dylan.com", "toto1234!")
	h := newHandler(sessions)

	rec := connect(h, basic("bob@dylan.com", "toto1234!"))
	require.Equal(t, http.StatusOK, rec.Code)
	var out connectResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))

	drop := func(token string) *httptest.ResponseRecorder {
		r := httptest.NewRequest(http.MethodGet, "/disconnect", nil)
		if token != "" {
			r.Header.Set("X-Token", token)
		}
		rec := httptest.NewRecorder()
		h.Disconnect(rec, r)
		return rec
	}

	require.Equal(t, http.StatusNoContent, drop(out.Token).Code)
	assert.NotContains(t, sessions.tokens, out.Token)

	// повторный disconnect того же токена — тоже 204
	assert.Equal(t, http.StatusNoContent, drop(out.Token).Code)

	// без токена — 401
	assert.Equal(t, http.StatusUnauthorized, drop("").Code)
}

// Отозванный токен перестаёт проходить через RequireAuth.
func TestDisconnect_RevokesAccess(t *testing.T) {
	t.Parallel()

	sessions := newFakeSessions("bob@dylan.com", "toto1234!")
	h := newHandler(sessions)

	rec := connect(h, basic("bob@dylan.com", "toto1234!"))
	require.Equal(t, http.StatusOK, rec.Code)
	token := rec.Header().Get("X-Token")

	protected := mw.RequireAuth(sessions, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	call := func() int {
		r := httptest.NewRequest(http.MethodGet, "/users/me", nil)
		r.Header.Set("X-Token", token)
		rec := httptest.NewRecorder()
		protected.ServeHTTP(rec, r)
		return rec.Code
	}

	require.Equal(t, http.StatusOK, call())

	r := httptest.NewRequest(http.MethodGet, "/disconnect", nil)
	r.Header.Set("X-Token", token)
	drop := httptest.NewRecorder()
	h.Disconnect(drop, r)
	require.Equal(t, http.StatusNoContent, drop.Code)

	assert.Equal(t, http.StatusUnauthorized, call())
}
