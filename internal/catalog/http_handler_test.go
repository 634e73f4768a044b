package catalog

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"booklibrary/internal/apperr"
	"booklibrary/internal/category"
	"booklibrary/internal/testutil"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestHTTPHandler_Books(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc, m := newTestService(t)
		handler := NewHTTPHandler(svc, zap.NewNop())
		m.repo.EXPECT().Count(gomock.Any(), Filter{}).Return(9, nil)
		m.repo.EXPECT().List(gomock.Any(), Unpopular, Filter{}, DefaultPageSize, 8).Return(items("last"), nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/v1/books?sort=not_popular&page=2", nil)
		handler.Books(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		meta := testutil.DecodeBody(t, w)["meta"].(map[string]any)
		assert.Equal(t, float64(2), meta["page"])
		assert.Equal(t, float64(2), meta["total_pages"])
		assert.Equal(t, "unpopular", meta["sort"])
	})

	t.Run("bad page falls back to first", func(t *testing.T) {
		svc, m := newTestService(t)
		handler := NewHTTPHandler(svc, zap.NewNop())
		m.repo.EXPECT().Count(gomock.Any(), Filter{}).Return(1, nil)
		m.repo.EXPECT().List(gomock.Any(), TopRated, Filter{}, DefaultPageSize, 0).Return(items("a"), nil)

		w := httptest.NewRecorder()
		handler.Books(w, httptest.NewRequest(http.MethodGet, "/v1/books?sort=banana&page=abc", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("error", func(t *testing.T) {
		svc, m := newTestService(t)
		handler := NewHTTPHandler(svc, zap.NewNop())
		m.repo.EXPECT().Count(gomock.Any(), Filter{}).Return(0, errors.New("db down"))

		w := httptest.NewRecorder()
		handler.Books(w, httptest.NewRequest(http.MethodGet, "/v1/books", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestHTTPHandler_Search(t *testing.T) {
	svc, m := newTestService(t)
	handler := NewHTTPHandler(svc, zap.NewNop())
	f := Filter{Search: "dune", Publisher: "penguin"}
	m.repo.EXPECT().Count(gomock.Any(), f).Return(0, nil)

	w := httptest.NewRecorder()
	handler.Search(w, httptest.NewRequest(http.MethodGet, "/v1/search?q=dune&publisher=penguin", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []any{}, testutil.DecodeBody(t, w)["data"])
}

func TestHTTPHandler_Shelf(t *testing.T) {
	t.Run("requires user", func(t *testing.T) {
		svc, _ := newTestService(t)
		handler := NewHTTPHandler(svc, zap.NewNop())

		w := httptest.NewRecorder()
		handler.Shelf(w, httptest.NewRequest(http.MethodGet, "/v1/me/shelf", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("filters by owner", func(t *testing.T) {
		svc, m := newTestService(t)
		handler := NewHTTPHandler(svc, zap.NewNop())
		f := Filter{OwnerID: "u-1"}
		m.repo.EXPECT().Count(gomock.Any(), f).Return(1, nil)
		m.repo.EXPECT().List(gomock.Any(), TopRated, f, DefaultPageSize, 0).Return(items("mine"), nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/v1/me/shelf", nil)
		r = testutil.WithUser(r, "u-1")
		handler.Shelf(w, r)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"slug":"mine"`)
	})
}

func TestHTTPHandler_CategoryBooks(t *testing.T) {
	svc, m := newTestService(t)
	handler := NewHTTPHandler(svc, zap.NewNop())
	m.categories.EXPECT().GetBySlug(gomock.Any(), "poetry").Return(category.Category{}, apperr.NotFound("Category"))

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/v1/categories/poetry/books", nil)
	r.SetPathValue("slug", "poetry")
	handler.CategoryBooks(w, r)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
