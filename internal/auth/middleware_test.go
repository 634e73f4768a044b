package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"booklibrary/internal/httpx"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddleware(t *testing.T) {
	var gotUser string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser = httpx.UserIDFrom(r)
		w.WriteHeader(http.StatusOK)
	})
	token, _, err := GenerateToken("secret", "u-1", "USER", time.Hour)
	require.NoError(t, err)

	t.Run("required and present", func(t *testing.T) {
		gotUser = ""
		req := httptest.NewRequest(http.MethodGet, "/v1/me/shelf", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		Middleware("secret", nil)(next).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "u-1", gotUser)
	})

	t.Run("required and missing", func(t *testing.T) {
		w := httptest.NewRecorder()
		Middleware("secret", nil)(next).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/me/shelf", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("optional and invalid", func(t *testing.T) {
		gotUser = "stale"
		req := httptest.NewRequest(http.MethodGet, "/v1/books/x", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		w := httptest.NewRecorder()
		OptionalMiddleware("secret", nil)(next).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, gotUser)
	})

	t.Run("revoked token", func(t *testing.T) {
		claims, err := ParseToken("secret", token)
		require.NoError(t, err)
		revoked := memRevocations{claims.ID: true}

		req := httptest.NewRequest(http.MethodGet, "/v1/me/shelf", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		Middleware("secret", revoked)(next).ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

type memRevocations map[string]bool

func (m memRevocations) Revoke(_ context.Context, jti, _ string, _ time.Time) error {
	m[jti] = true
	return nil
}

func (m memRevocations) IsRevoked(_ context.Context, jti string) (bool, error) {
	return m[jti], nil
}
