package user

import (
	"context"
	"testing"

	"booklibrary/internal/apperr"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	service := NewService(mockRepo)
	ctx := context.Background()

	t.Run("creates user with defaults", func(t *testing.T) {
		mockRepo.EXPECT().GetByEmail(gomock.Any(), "reader@example.com").Return(User{}, apperr.NotFound("User"))
		mockRepo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u *User) error {
			u.ID = "u-1"
			return nil
		})

		u, err := service.Register(ctx, "  Reader@Example.com ", "reader", "hash")
		require.NoError(t, err)
		assert.Equal(t, "u-1", u.ID)
		assert.Equal(t, "reader@example.com", u.Email)
		assert.Equal(t, RoleUser, u.Role)
		assert.Equal(t, SexUnknown, u.Sex)
		assert.Equal(t, CityUnknown, u.City)
	})

	t.Run("duplicate email", func(t *testing.T) {
		mockRepo.EXPECT().GetByEmail(gomock.Any(), "taken@example.com").Return(User{ID: "u-2"}, nil)

		_, err := service.Register(ctx, "taken@example.com", "reader", "hash")
		assert.True(t, apperr.IsKind(err, apperr.KindConflict))
	})

	t.Run("lookup failure", func(t *testing.T) {
		mockRepo.EXPECT().GetByEmail(gomock.Any(), "x@example.com").Return(User{}, errors.New("conn reset"))

		_, err := service.Register(ctx, "x@example.com", "reader", "hash")
		assert.Error(t, err)
		assert.Equal(t, apperr.KindInternal, apperr.KindOf(err))
	})
}

func TestService_Update_EmptyChangesReadsCurrent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	service := NewService(mockRepo)

	mockRepo.EXPECT().GetByID(gomock.Any(), "u-1").Return(User{ID: "u-1"}, nil)

	u, err := service.Update(context.Background(), "u-1", Changes{})
	require.NoError(t, err)
	assert.Equal(t, "u-1", u.ID)
}

func TestUser_Public(t *testing.T) {
	pc := "22000"
	u := User{ID: "u-1", Email: "a@b.co", Username: "reader", Postcode: &pc, Phone: "+375 (29) 123-45-67", City: CityMinsk}
	p := u.Public()
	assert.Empty(t, p.Email)
	assert.Nil(t, p.Postcode)
	assert.Empty(t, p.Phone)
	assert.Equal(t, CityMinsk, p.City)
}
