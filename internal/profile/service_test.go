package profile

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"booklibrary/internal/apperr"
	"booklibrary/internal/catalog"
	"booklibrary/internal/httpx"
	"booklibrary/internal/rating"
	"booklibrary/internal/user"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mocks struct {
	users   *MockUsers
	ratings *MockRatings
	books   *MockBooks
}

func newTestService(t *testing.T) (*Service, mocks) {
	ctrl := gomock.NewController(t)
	m := mocks{users: NewMockUsers(ctrl), ratings: NewMockRatings(ctrl), books: NewMockBooks(ctrl)}
	svc := NewService(m.users, m.ratings, m.books, time.UTC)
	svc.now = func() time.Time { return today.Add(15 * time.Hour) }
	return svc, m
}

func (m mocks) expectStats(id string) {
	m.ratings.EXPECT().UserStats(gomock.Any(), id).Return(rating.Stats{RatingsCount: 2, AverageRating: 4.5}, nil)
	m.books.EXPECT().Count(gomock.Any(), catalog.Filter{OwnerID: id}).Return(3, nil)
}

func TestService_GetOwnProfile(t *testing.T) {
	svc, m := newTestService(t)
	birthday := time.Date(2000, 1, 2, 0, 0, 0, 0, time.UTC)
	m.users.EXPECT().GetByID(gomock.Any(), "u-1").Return(user.User{ID: "u-1", Username: "reader", Birthday: &birthday}, nil)
	m.expectStats("u-1")

	p, err := svc.GetOwnProfile(context.Background(), "u-1")
	require.NoError(t, err)
	assert.Equal(t, Stats{RatingsCount: 2, AverageRating: 4.5, BooksOnShelf: 3}, p.Stats)
	require.NotNil(t, p.Age)
	assert.Equal(t, 24, *p.Age)
}

func TestService_GetPublicProfile(t *testing.T) {
	t.Run("private", func(t *testing.T) {
		svc, m := newTestService(t)
		m.users.EXPECT().GetPublic(gomock.Any(), "u-2").Return(user.User{}, apperr.NotFound("User"))

		_, err := svc.GetPublicProfile(context.Background(), "u-2")
		assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
	})

	t.Run("public", func(t *testing.T) {
		svc, m := newTestService(t)
		m.users.EXPECT().GetPublic(gomock.Any(), "u-3").Return(user.User{ID: "u-3", IsPublic: true}, nil)
		m.expectStats("u-3")

		p, err := svc.GetPublicProfile(context.Background(), "u-3")
		require.NoError(t, err)
		assert.Nil(t, p.Age)
	})
}

func TestService_UpdateProfile(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		svc, m := newTestService(t)
		m.users.EXPECT().Update(gomock.Any(), "u-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, ch user.Changes) (user.User, error) {
				assert.Equal(t, "MI", *ch.City)
				return user.User{ID: "u-1", City: *ch.City}, nil
			})
		m.expectStats("u-1")

		p, err := svc.UpdateProfile(context.Background(), "u-1", UpdateCommand{City: str("MI")})
		require.NoError(t, err)
		assert.Equal(t, "MI", p.User.City)
	})

	t.Run("invalid postcode never reaches storage", func(t *testing.T) {
		svc, _ := newTestService(t)

		_, err := svc.UpdateProfile(context.Background(), "u-1", UpdateCommand{Postcode: str("123")})
		assert.ErrorIs(t, err, ErrPostcode)
	})
}

func TestHTTPHandler_UpdateProfile(t *testing.T) {
	t.Run("validation message", func(t *testing.T) {
		svc, _ := newTestService(t)
		handler := NewHTTPHandler(svc, zap.NewNop())

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPatch, "/v1/me/profile", strings.NewReader(`{"phone":"12345"}`))
		r = r.WithContext(httpx.ContextWithUser(r.Context(), "u-1", "USER"))
		handler.UpdateProfile(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid phone number")
	})

	t.Run("postcode detail", func(t *testing.T) {
		svc, _ := newTestService(t)
		handler := NewHTTPHandler(svc, zap.NewNop())

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPatch, "/v1/me/profile", strings.NewReader(`{"postcode":"12a45","city":"mi"}`))
		r = r.WithContext(httpx.ContextWithUser(r.Context(), "u-1", "USER"))
		handler.UpdateProfile(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"field":"postcode"`)
		assert.Contains(t, w.Body.String(), "Postcode must consist of 5 digits")
		assert.NotContains(t, w.Body.String(), `"field":"city"`)
	})

	t.Run("short username", func(t *testing.T) {
		svc, _ := newTestService(t)
		handler := NewHTTPHandler(svc, zap.NewNop())

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPatch, "/v1/me/profile", strings.NewReader(`{"username":"ab"}`))
		r = r.WithContext(httpx.ContextWithUser(r.Context(), "u-1", "USER"))
		handler.UpdateProfile(w, r)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), `"field":"username"`)
	})

	t.Run("unauthorized", func(t *testing.T) {
		svc, _ := newTestService(t)
		handler := NewHTTPHandler(svc, zap.NewNop())

		w := httptest.NewRecorder()
		handler.UpdateProfile(w, httptest.NewRequest(http.MethodPatch, "/v1/me/profile", strings.NewReader(`{}`)))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestHTTPHandler_GetPublicProfile(t *testing.T) {
	svc, m := newTestService(t)
	handler := NewHTTPHandler(svc, zap.NewNop())
	m.users.EXPECT().GetPublic(gomock.Any(), "u-2").Return(user.User{}, apperr.NotFound("User"))

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/v1/users/u-2/profile", nil)
	r.SetPathValue("id", "u-2")
	handler.GetPublicProfile(w, r)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
