package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestService_Revoke(t *testing.T) {
	ctx := context.Background()

	t.Run("live token", func(t *testing.T) {
		repo := NewMockRepository(gomock.NewController(t))
		svc := NewService(repo, zap.NewNop())
		exp := time.Now().Add(time.Hour)
		repo.EXPECT().Add(ctx, "jti-1", "u-1", exp).Return(nil)

		require.NoError(t, svc.Revoke(ctx, "jti-1", "u-1", exp))
	})

	t.Run("expired token is ignored", func(t *testing.T) {
		repo := NewMockRepository(gomock.NewController(t))
		svc := NewService(repo, zap.NewNop())

		require.NoError(t, svc.Revoke(ctx, "jti-1", "u-1", time.Now().Add(-time.Minute)))
	})
}

func TestService_IsRevoked(t *testing.T) {
	repo := NewMockRepository(gomock.NewController(t))
	svc := NewService(repo, zap.NewNop())
	repo.EXPECT().Exists(gomock.Any(), "jti-1").Return(true, nil)

	revoked, err := svc.IsRevoked(context.Background(), "jti-1")
	require.NoError(t, err)
	assert.True(t, revoked)
}

func TestService_RunCleanup(t *testing.T) {
	repo := NewMockRepository(gomock.NewController(t))
	svc := NewService(repo, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	calls := 0
	repo.EXPECT().DeleteExpired(gomock.Any()).DoAndReturn(func(context.Context) (int64, error) {
		calls++
		if calls == 1 {
			return 0, errors.New("db down")
		}
		cancel()
		return 3, nil
	}).MinTimes(2)

	go func() {
		svc.RunCleanup(ctx, 5*time.Millisecond)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("cleanup loop did not stop")
	}
}
