package category

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestService_Default(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := NewMockRepository(ctrl)
	repo.EXPECT().Ensure(gomock.Any(), "Uncategorized", DefaultSlug).Return(Category{ID: "c-0", Slug: DefaultSlug}, nil)

	c, err := NewService(repo).Default(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "c-0", c.ID)
}

func TestHTTPHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := NewMockRepository(ctrl)
	h := NewHTTPHandler(NewService(repo), zap.NewNop())

	t.Run("success", func(t *testing.T) {
		repo.EXPECT().List(gomock.Any()).Return([]Category{{Name: "Fantasy"}, {Name: "History"}}, nil)

		w := httptest.NewRecorder()
		h.List(w, httptest.NewRequest(http.MethodGet, "/v1/categories", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"total":2`)
	})

	t.Run("error", func(t *testing.T) {
		repo.EXPECT().List(gomock.Any()).Return(nil, errors.New("db down"))

		w := httptest.NewRecorder()
		h.List(w, httptest.NewRequest(http.MethodGet, "/v1/categories", nil))
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
