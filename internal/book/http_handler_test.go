package book

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"booklibrary/internal/apperr"
	"booklibrary/internal/httpx"
	"booklibrary/internal/rating"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestHTTPHandler_GetBySlug(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc, m := newTestService(t)
		handler := NewHTTPHandler(svc, zap.NewNop())
		m.repo.EXPECT().GetBySlug(gomock.Any(), "dune").Return(Book{ID: "b-1", Slug: "dune"}, nil)
		m.ratings.EXPECT().Summary(gomock.Any(), "b-1", true).Return(rating.Summary{Text: "Not rated yet"}, nil)
		m.ratings.EXPECT().UserRating(gomock.Any(), "u-1", "b-1").Return(nil, nil)
		m.reviews.EXPECT().ListForBook(gomock.Any(), "b-1").Return(nil, nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/v1/books/dune", nil)
		r = r.WithContext(httpx.ContextWithUser(r.Context(), "u-1", "USER"))
		r.SetPathValue("slug", "dune")
		handler.GetBySlug(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Not rated yet")
	})

	t.Run("not found", func(t *testing.T) {
		svc, m := newTestService(t)
		handler := NewHTTPHandler(svc, zap.NewNop())
		m.repo.EXPECT().GetBySlug(gomock.Any(), "nope").Return(Book{}, apperr.NotFound("Book"))

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/v1/books/nope", nil)
		r.SetPathValue("slug", "nope")
		handler.GetBySlug(w, r)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
