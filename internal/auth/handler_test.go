package auth_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velvet-portal/velvet-portal/internal/auth"
	"github.com/velvet-portal/velvet-portal/internal/shared"
	_ "github.com/velvet-portal/velvet-portal/testing"
)

func newHandler(t *testing.T) (*auth.Handler, *auth.Tokens) {
	t.Helper()
	dir, err := auth.NewStaticDirectory([]auth.Seed{
		{Email: "poc@velvet.fr", Password: "Velvet#POC2026!", Name: "Utilisateur POC"},
	})
	require.NoError(t, err)
	tokens := auth.NewTokens("test-secret", 24*time.Hour)
	logger := slog.New(slog.DiscardHandler)
	return auth.NewHandler(logger, auth.NewService(dir), tokens), tokens
}

func postLogin(t *testing.T, handler *auth.Handler, payload string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	res := httptest.NewRecorder()
	handler.Login(res, req)
	return res
}

func TestLoginMissingFields(t *testing.T) {
	handler, _ := newHandler(t)

	for name, payload := range map[string]string{
		"empty object":     `{}`,
		"missing password": `{"email":"poc@velvet.fr"}`,
		"missing email":    `{"password":"Velvet#POC2026!"}`,
		"malformed json":   `{`,
	} {
		res := postLogin(t, handler, payload)
		assert.Equal(t, http.StatusBadRequest, res.Code, name)
		assert.JSONEq(t, `{"error":"email and password are required"}`, res.Body.String(), name)
	}
}

func TestLoginBadCredentialsIndistinguishable(t *testing.T) {
	handler, _ := newHandler(t)

	unknown := postLogin(t, handler, `{"email":"nobody@velvet.fr","password":"Velvet#POC2026!"}`)
	wrong := postLogin(t, handler, `{"email":"poc@velvet.fr","password":"wrong"}`)

	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.Equal(t, http.StatusUnauthorized, wrong.Code)
	assert.Equal(t, unknown.Body.String(), wrong.Body.String())
	assert.NotContains(t, wrong.Body.String(), "token")
}

func TestLoginSuccess(t *testing.T) {
	handler, tokens := newHandler(t)

	res := postLogin(t, handler, `{"email":"POC@Velvet.fr","password":"Velvet#POC2026!"}`)
	require.Equal(t, http.StatusOK, res.Code)

	var body struct {
		Token string `json:"token"`
		User  struct {
			Email string `json:"email"`
			Name  string `json:"name"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(res.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Token)
	assert.Equal(t, "poc@velvet.fr", body.User.Email)
	assert.Equal(t, "Utilisateur POC", body.User.Name)
	assert.NotContains(t, res.Body.String(), "password")

	result := tokens.Verify(body.Token)
	require.Equal(t, auth.TokenValid, result.Status)
	assert.Equal(t, "poc@velvet.fr", result.Claims.Email)
}

func TestMeReturnsPrincipal(t *testing.T) {
	handler, _ := newHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
	ctx := shared.ContextWithPrincipal(req.Context(), shared.Principal{
		Email: "poc@velvet.fr",
		Name:  "Utilisateur POC",
	})
	res := httptest.NewRecorder()
	handler.Me(res, req.WithContext(ctx))

	assert.Equal(t, http.StatusOK, res.Code)
	assert.JSONEq(t, `{"user":{"email":"poc@velvet.fr","name":"Utilisateur POC"}}`, res.Body.String())
}
