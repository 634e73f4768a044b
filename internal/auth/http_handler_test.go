package auth

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"booklibrary/internal/apperr"
	"booklibrary/internal/user"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestHTTPHandler_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := user.NewMockRepository(ctrl)
	handler := NewHTTPHandler(NewService("secret", user.NewService(mockRepo)), zap.NewNop())

	t.Run("validation", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/v1/users/register", strings.NewReader(`{"email":"bad","username":"ab","password":"weak"}`))
		handler.Register(w, r)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
	})

	t.Run("conflict", func(t *testing.T) {
		mockRepo.EXPECT().GetByEmail(gomock.Any(), "taken@example.com").Return(user.User{ID: "u-1"}, nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/v1/users/register", strings.NewReader(`{"email":"taken@example.com","username":"reader","password":"Secret123!"}`))
		handler.Register(w, r)
		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("created", func(t *testing.T) {
		mockRepo.EXPECT().GetByEmail(gomock.Any(), "new@example.com").Return(user.User{}, apperr.NotFound("User"))
		mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/v1/users/register", strings.NewReader(`{"email":"new@example.com","username":"reader","password":"Secret123!"}`))
		handler.Register(w, r)
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.NotContains(t, w.Body.String(), "password")
	})
}

func TestHTTPHandler_Login_BadBody(t *testing.T) {
	handler := NewHTTPHandler(NewService("secret", nil), zap.NewNop())

	w := httptest.NewRecorder()
	handler.Login(w, httptest.NewRequest(http.MethodPost, "/v1/users/login", strings.NewReader("{")))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
