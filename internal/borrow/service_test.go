package borrow

import (
	"context"
	"errors"
	"testing"
	"time"

	"booklibrary/internal/apperr"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var minsk = time.FixedZone("UTC+3", 3*60*60)

// 22:30 UTC is already the next day in minsk.
var fixedNow = time.Date(2024, 5, 10, 22, 30, 0, 0, time.UTC)

func newTestService(t *testing.T) (*Service, *MockRepository) {
	ctrl := gomock.NewController(t)
	repo := NewMockRepository(ctrl)
	clock := ClockFunc(func() time.Time { return fixedNow })
	return NewService(repo, clock, minsk, zap.NewNop()), repo
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, minsk)
}

func TestService_Today(t *testing.T) {
	svc, _ := newTestService(t)
	assert.Equal(t, day(2024, 5, 11), svc.Today())
}

func TestService_BorrowDueDateWindow(t *testing.T) {
	ctx := context.Background()
	today := day(2024, 5, 11)

	tests := []struct {
		name    string
		due     time.Time
		wantErr error
	}{
		{"yesterday", today.AddDate(0, 0, -1), ErrDateInPast},
		{"today", today, nil},
		{"plus 31 days", today.AddDate(0, 0, 31), nil},
		{"plus 32 days", today.AddDate(0, 0, 32), ErrTooLong},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newTestService(t)
			if tt.wantErr == nil {
				repo.EXPECT().Take(ctx, "dune", "u-1", tt.due).Return(true, nil)
			}

			err := svc.Borrow(ctx, "u-1", "dune", tt.due)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.True(t, apperr.IsKind(err, apperr.KindValidation))
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestService_BorrowUnavailable(t *testing.T) {
	ctx := context.Background()
	due := day(2024, 5, 20)

	t.Run("taken", func(t *testing.T) {
		svc, repo := newTestService(t)
		repo.EXPECT().Take(ctx, "dune", "u-2", due).Return(false, nil)
		repo.EXPECT().Exists(ctx, "dune").Return(true, nil)

		err := svc.Borrow(ctx, "u-2", "dune", due)
		assert.ErrorIs(t, err, ErrTaken)
		assert.True(t, apperr.IsKind(err, apperr.KindConflict))
	})

	t.Run("unknown book", func(t *testing.T) {
		svc, repo := newTestService(t)
		repo.EXPECT().Take(ctx, "nope", "u-2", due).Return(false, nil)
		repo.EXPECT().Exists(ctx, "nope").Return(false, nil)

		err := svc.Borrow(ctx, "u-2", "nope", due)
		assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
	})

	t.Run("repository error", func(t *testing.T) {
		svc, repo := newTestService(t)
		repo.EXPECT().Take(ctx, "dune", "u-2", due).Return(false, errors.New("db down"))

		assert.Error(t, svc.Borrow(ctx, "u-2", "dune", due))
	})
}

func TestService_Return(t *testing.T) {
	ctx := context.Background()

	t.Run("held by caller", func(t *testing.T) {
		svc, repo := newTestService(t)
		repo.EXPECT().Release(ctx, "dune", "u-1").Return(true, nil)
		assert.NoError(t, svc.Return(ctx, "u-1", "dune"))
	})

	t.Run("not held is a no-op", func(t *testing.T) {
		svc, repo := newTestService(t)
		repo.EXPECT().Release(ctx, "dune", "u-9").Return(false, nil)
		assert.NoError(t, svc.Return(ctx, "u-9", "dune"))
	})
}

func TestParseDueDate(t *testing.T) {
	d, err := ParseDueDate("2024-06-01", minsk)
	require.NoError(t, err)
	assert.Equal(t, day(2024, 6, 1), d)

	for _, in := range []string{"", "01.06.2024", "2024-13-01"} {
		_, err := ParseDueDate(in, minsk)
		assert.ErrorIs(t, err, ErrInvalidDate, in)
	}
}
