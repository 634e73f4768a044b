// Package testutil holds request builders and response decoders shared by
// the HTTP handler tests.
package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"booklibrary/internal/auth"
	"booklibrary/internal/httpx"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const (
	TestSecret = "test-secret"
	TestUserID = "u-1"
)

// NewRequest builds a request with body JSON-encoded when it is not a string.
func NewRequest(method, path string, body any) *http.Request {
	var r *http.Request
	switch b := body.(type) {
	case nil:
		r = httptest.NewRequest(method, path, nil)
	case string:
		r = httptest.NewRequest(method, path, bytes.NewBufferString(b))
	default:
		raw, _ := json.Marshal(b)
		r = httptest.NewRequest(method, path, bytes.NewReader(raw))
	}
	if body != nil {
		r.Header.Set("Content-Type", "application/json")
	}
	return r
}

// WithUser attaches an authenticated caller the way auth.Middleware does.
func WithUser(r *http.Request, userID string) *http.Request {
	return r.WithContext(httpx.ContextWithUser(r.Context(), userID, "USER"))
}

// WithBearer sets the Authorization header.
func WithBearer(r *http.Request, token string) *http.Request {
	r.Header.Set("Authorization", "Bearer "+token)
	return r
}

func GenerateTestToken(t *testing.T, userID string) string {
	t.Helper()
	token, _, err := auth.GenerateToken(TestSecret, userID, "USER", time.Hour)
	require.NoError(t, err)
	return token
}

func GenerateExpiredToken(t *testing.T, userID string) string {
	t.Helper()
	c := auth.Claims{
		Sub:  userID,
		Role: "USER",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, c).SignedString([]byte(TestSecret))
	require.NoError(t, err)
	return token
}

// DecodeBody unmarshals the recorded JSON envelope.
func DecodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

// ErrorCode extracts error.code from a JSONError envelope.
func ErrorCode(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	body := DecodeBody(t, w)
	e, ok := body["error"].(map[string]any)
	require.True(t, ok, "response has no error object: %s", w.Body.String())
	code, _ := e["code"].(string)
	return code
}
