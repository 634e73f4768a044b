package rating

import (
	"context"
	"testing"

	"booklibrary/internal/apperr"

	"github.com/golang/mock/gomock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var uniqueViolation = &pgconn.PgError{Code: "23505", ConstraintName: "ratings_user_book_key"}

func newTestService(t *testing.T) (*Service, *MockRepository, *MockCache) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	repo := NewMockRepository(ctrl)
	cache := NewMockCache(ctrl)
	return NewService(repo, cache, zap.NewNop()), repo, cache
}

func TestService_Aggregate(t *testing.T) {
	ctx := context.Background()

	t.Run("cache hit skips the repository", func(t *testing.T) {
		svc, _, cache := newTestService(t)
		cache.EXPECT().Get(gomock.Any(), "b-1").Return(Aggregate{TotalScore: intp(9), TotalCount: intp(2)}, true, nil)

		agg, err := svc.Aggregate(ctx, "b-1")
		require.NoError(t, err)
		assert.Equal(t, 9, *agg.TotalScore)
	})

	t.Run("miss reads through and fills", func(t *testing.T) {
		svc, repo, cache := newTestService(t)
		want := Aggregate{TotalScore: intp(12), TotalCount: intp(3)}
		gomock.InOrder(
			cache.EXPECT().Get(gomock.Any(), "b-1").Return(Aggregate{}, false, nil),
			cache.EXPECT().Generation(gomock.Any(), "b-1").Return(int64(3), nil),
			repo.EXPECT().Aggregate(gomock.Any(), "b-1").Return(want, nil),
			cache.EXPECT().Set(gomock.Any(), "b-1", int64(3), want).Return(nil),
		)

		agg, err := svc.Aggregate(ctx, "b-1")
		require.NoError(t, err)
		assert.Equal(t, want, agg)
	})

	t.Run("cache errors are ignored", func(t *testing.T) {
		svc, repo, cache := newTestService(t)
		cache.EXPECT().Get(gomock.Any(), "b-1").Return(Aggregate{}, false, errors.New("redis down"))
		cache.EXPECT().Generation(gomock.Any(), "b-1").Return(int64(0), nil)
		repo.EXPECT().Aggregate(gomock.Any(), "b-1").Return(Aggregate{}, nil)
		cache.EXPECT().Set(gomock.Any(), "b-1", int64(0), Aggregate{}).Return(errors.New("redis down"))

		agg, err := svc.Aggregate(ctx, "b-1")
		require.NoError(t, err)
		assert.Nil(t, agg.TotalScore)
		assert.Nil(t, agg.TotalCount)
	})

	t.Run("unknown generation skips the fill", func(t *testing.T) {
		svc, repo, cache := newTestService(t)
		want := Aggregate{TotalScore: intp(4), TotalCount: intp(1)}
		cache.EXPECT().Get(gomock.Any(), "b-1").Return(Aggregate{}, false, nil)
		cache.EXPECT().Generation(gomock.Any(), "b-1").Return(int64(0), errors.New("redis down"))
		repo.EXPECT().Aggregate(gomock.Any(), "b-1").Return(want, nil)

		agg, err := svc.Aggregate(ctx, "b-1")
		require.NoError(t, err)
		assert.Equal(t, want, agg)
	})
}

func TestService_Summary_NoRatings(t *testing.T) {
	svc := NewService(nil, nil, nil)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := NewMockRepository(ctrl)
	svc.repo = repo
	repo.EXPECT().Aggregate(gomock.Any(), "unknown").Return(Aggregate{}, nil)

	s, err := svc.Summary(context.Background(), "unknown", true)
	require.NoError(t, err)
	assert.Equal(t, "Not rated yet", s.Text)
}

func TestService_Rate(t *testing.T) {
	ctx := context.Background()

	t.Run("out of range", func(t *testing.T) {
		svc, _, _ := newTestService(t)
		for _, score := range []int{0, 6, -1} {
			err := svc.Rate(ctx, "u-1", "b-1", score)
			assert.True(t, apperr.IsKind(err, apperr.KindValidation), "score %d", score)
		}
	})

	t.Run("unknown book", func(t *testing.T) {
		svc, repo, _ := newTestService(t)
		repo.EXPECT().BookExists(gomock.Any(), "b-x").Return(false, nil)

		err := svc.Rate(ctx, "u-1", "b-x", 4)
		assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
	})

	t.Run("upsert and invalidate", func(t *testing.T) {
		svc, repo, cache := newTestService(t)
		gomock.InOrder(
			repo.EXPECT().BookExists(gomock.Any(), "b-1").Return(true, nil),
			repo.EXPECT().Upsert(gomock.Any(), "u-1", "b-1", 4).Return(nil),
			cache.EXPECT().Invalidate(gomock.Any(), "b-1").Return(nil),
		)
		require.NoError(t, svc.Rate(ctx, "u-1", "b-1", 4))
	})

	t.Run("unique violation retried once", func(t *testing.T) {
		svc, repo, cache := newTestService(t)
		repo.EXPECT().BookExists(gomock.Any(), "b-1").Return(true, nil)
		gomock.InOrder(
			repo.EXPECT().Upsert(gomock.Any(), "u-1", "b-1", 5).Return(errors.Wrap(uniqueViolation, "upsert rating")),
			repo.EXPECT().Upsert(gomock.Any(), "u-1", "b-1", 5).Return(nil),
		)
		cache.EXPECT().Invalidate(gomock.Any(), "b-1").Return(nil)

		require.NoError(t, svc.Rate(ctx, "u-1", "b-1", 5))
	})

	t.Run("second unique violation is a conflict", func(t *testing.T) {
		svc, repo, _ := newTestService(t)
		repo.EXPECT().BookExists(gomock.Any(), "b-1").Return(true, nil)
		repo.EXPECT().Upsert(gomock.Any(), "u-1", "b-1", 5).Return(uniqueViolation).Times(2)

		err := svc.Rate(ctx, "u-1", "b-1", 5)
		assert.True(t, apperr.IsKind(err, apperr.KindConflict))
		assert.Equal(t, "already rated", apperr.Message(err))
	})
}

func TestService_Unrate(t *testing.T) {
	ctx := context.Background()

	t.Run("deleted", func(t *testing.T) {
		svc, repo, cache := newTestService(t)
		repo.EXPECT().Delete(gomock.Any(), "u-1", "b-1").Return(true, nil)
		cache.EXPECT().Invalidate(gomock.Any(), "b-1").Return(errors.New("redis down"))

		assert.NoError(t, svc.Unrate(ctx, "u-1", "b-1"))
	})

	t.Run("nothing to delete", func(t *testing.T) {
		svc, repo, _ := newTestService(t)
		repo.EXPECT().Delete(gomock.Any(), "u-1", "b-1").Return(false, nil)

		err := svc.Unrate(ctx, "u-1", "b-1")
		assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
	})
}

// memRepo keeps ratings in a map keyed by (user, book) to check upsert
// semantics end to end through the service.
type memRepo struct {
	scores map[[2]string]int
	// afterAggregate runs once, after the aggregate snapshot is taken.
	afterAggregate func()
}

func (m *memRepo) BookExists(context.Context, string) (bool, error) { return true, nil }
func (m *memRepo) Aggregate(_ context.Context, bookID string) (Aggregate, error) {
	total, count := 0, 0
	for k, v := range m.scores {
		if k[1] == bookID {
			total += v
			count++
		}
	}
	if hook := m.afterAggregate; hook != nil {
		m.afterAggregate = nil
		hook()
	}
	if count == 0 {
		return Aggregate{}, nil
	}
	return Aggregate{TotalScore: &total, TotalCount: &count}, nil
}
func (m *memRepo) Upsert(_ context.Context, userID, bookID string, score int) error {
	m.scores[[2]string{userID, bookID}] = score
	return nil
}
func (m *memRepo) Delete(_ context.Context, userID, bookID string) (bool, error) {
	k := [2]string{userID, bookID}
	_, ok := m.scores[k]
	delete(m.scores, k)
	return ok, nil
}
func (m *memRepo) UserScore(_ context.Context, userID, bookID string) (*int, error) {
	if v, ok := m.scores[[2]string{userID, bookID}]; ok {
		return &v, nil
	}
	return nil, nil
}
func (m *memRepo) UserStats(context.Context, string) (Stats, error) { return Stats{}, nil }

func TestService_RateTwiceKeepsLatest(t *testing.T) {
	repo := &memRepo{scores: map[[2]string]int{}}
	svc := NewService(repo, nil, nil)
	ctx := context.Background()

	require.NoError(t, svc.Rate(ctx, "u-1", "b-1", 2))
	require.NoError(t, svc.Rate(ctx, "u-1", "b-1", 5))

	assert.Len(t, repo.scores, 1)
	score, err := svc.UserRating(ctx, "u-1", "b-1")
	require.NoError(t, err)
	assert.Equal(t, 5, *score)

	agg, err := svc.Aggregate(ctx, "b-1")
	require.NoError(t, err)
	assert.Equal(t, 5, *agg.TotalScore)
	assert.Equal(t, 1, *agg.TotalCount)
}

// memCache mirrors RedisCache: Invalidate bumps a generation and Set is
// dropped when the generation moved since it was read.
type memCache struct {
	values map[string]Aggregate
	gens   map[string]int64
}

func newMemCache() *memCache {
	return &memCache{values: map[string]Aggregate{}, gens: map[string]int64{}}
}

func (c *memCache) Get(_ context.Context, bookID string) (Aggregate, bool, error) {
	agg, ok := c.values[bookID]
	return agg, ok, nil
}
func (c *memCache) Generation(_ context.Context, bookID string) (int64, error) {
	return c.gens[bookID], nil
}
func (c *memCache) Set(_ context.Context, bookID string, gen int64, agg Aggregate) error {
	if c.gens[bookID] == gen {
		c.values[bookID] = agg
	}
	return nil
}
func (c *memCache) Invalidate(_ context.Context, bookID string) error {
	c.gens[bookID]++
	delete(c.values, bookID)
	return nil
}

func TestService_AggregateFillLosesToConcurrentRate(t *testing.T) {
	ctx := context.Background()
	repo := &memRepo{scores: map[[2]string]int{{"u-1", "b-1"}: 4}}
	cache := newMemCache()
	svc := NewService(repo, cache, nil)

	repo.afterAggregate = func() {
		require.NoError(t, svc.Rate(ctx, "u-2", "b-1", 1))
	}

	first, err := svc.Aggregate(ctx, "b-1")
	require.NoError(t, err)
	assert.Equal(t, 1, *first.TotalCount)
	_, cached := cache.values["b-1"]
	assert.False(t, cached, "fill that raced an invalidation must not be stored")

	second, err := svc.Aggregate(ctx, "b-1")
	require.NoError(t, err)
	assert.Equal(t, 5, *second.TotalScore)
	assert.Equal(t, 2, *second.TotalCount)

	third, err := svc.Aggregate(ctx, "b-1")
	require.NoError(t, err)
	assert.Equal(t, second, third)
	assert.Equal(t, second, cache.values["b-1"])
}
