package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/novareservas/reservation-api/internal/auth"
)

func newGuardedEngine(t *testing.T, tokens *auth.TokenService) (*gin.Engine, *bool) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	reached := false
	r := gin.New()
	r.Use(AuthMiddleware(tokens))
	r.GET("/protected", func(c *gin.Context) {
		reached = true
		c.JSON(http.StatusOK, gin.H{
			"client_id": c.GetUint(ContextClientID),
			"email":     c.GetString(ContextClientEmail),
		})
	})

	return r, &reached
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", time.Hour)
	r, reached := newGuardedEngine(t, tokens)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.JSONEq(t, `{"error":"Missing authorization token"}`, w.Body.String())
	require.False(t, *reached, "handler must not run without a token")
}

func TestAuthMiddleware_NotBearer(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", time.Hour)
	r, reached := newGuardedEngine(t, tokens)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Basic dXNlcjpwdw==")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.False(t, *reached)
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", time.Hour)
	r, reached := newGuardedEngine(t, tokens)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.JSONEq(t, `{"error":"Invalid token"}`, w.Body.String())
	require.False(t, *reached)
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	expired := auth.NewTokenService("test-secret", -time.Minute)
	token, err := expired.Issue(auth.Identity{ClientID: 1, Email: "ana@x.com"})
	require.NoError(t, err)

	tokens := auth.NewTokenService("test-secret", time.Hour)
	r, reached := newGuardedEngine(t, tokens)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.False(t, *reached)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	tokens := auth.NewTokenService("test-secret", time.Hour)
	token, err := tokens.Issue(auth.Identity{ClientID: 7, Email: "ana@x.com"})
	require.NoError(t, err)

	r, reached := newGuardedEngine(t, tokens)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.True(t, *reached)
	require.JSONEq(t, `{"client_id":7,"email":"ana@x.com"}`, w.Body.String())
}
