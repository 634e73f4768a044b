package contribute

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"booklibrary/internal/httpx"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestHTTPHandler_Contribute(t *testing.T) {
	t.Run("unauthorized", func(t *testing.T) {
		handler := NewHTTPHandler(newMocks(t).service(false), zap.NewNop())

		w := httptest.NewRecorder()
		handler.Contribute(w, httptest.NewRequest(http.MethodPost, "/v1/contribute", strings.NewReader(`{}`)))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("missing fields", func(t *testing.T) {
		handler := NewHTTPHandler(newMocks(t).service(false), zap.NewNop())

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/v1/contribute", strings.NewReader(`{"method":"ISBN"}`))
		r = r.WithContext(httpx.ContextWithUser(r.Context(), "u-1", "USER"))
		handler.Contribute(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"field":"bibkey"`)
	})

	t.Run("bad method", func(t *testing.T) {
		handler := NewHTTPHandler(newMocks(t).service(false), zap.NewNop())

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/v1/contribute", strings.NewReader(`{"method":"ASIN","bibkey":"B000FC1PJI"}`))
		r = r.WithContext(httpx.ContextWithUser(r.Context(), "u-1", "USER"))
		handler.Contribute(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Method is not valid")
	})
}
