package testutil

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"booklibrary/internal/auth"
	"booklibrary/internal/httpx"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRequest(t *testing.T) {
	r := NewRequest(http.MethodPost, "/v1/books/dune/borrow", map[string]string{"return_date": "2024-05-20"})
	assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

	raw := NewRequest(http.MethodPost, "/x", `{"a":1}`)
	assert.Equal(t, int64(7), raw.ContentLength)

	empty := NewRequest(http.MethodGet, "/x", nil)
	assert.Empty(t, empty.Header.Get("Content-Type"))
}

func TestWithUser(t *testing.T) {
	r := WithUser(NewRequest(http.MethodGet, "/", nil), "u-9")
	assert.Equal(t, "u-9", httpx.UserIDFrom(r))
}

func TestTokens(t *testing.T) {
	claims, err := auth.ParseToken(TestSecret, GenerateTestToken(t, TestUserID))
	require.NoError(t, err)
	assert.Equal(t, TestUserID, claims.Sub)

	_, err = auth.ParseToken(TestSecret, GenerateExpiredToken(t, TestUserID))
	assert.Error(t, err)
}

func TestErrorCode(t *testing.T) {
	w := httptest.NewRecorder()
	httpx.JSONError(w, NewRequest(http.MethodGet, "/", nil), http.StatusNotFound, "NOT_FOUND", "Book not found", nil)
	assert.Equal(t, "NOT_FOUND", ErrorCode(t, w))
}
