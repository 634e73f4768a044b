package rating

import (
	"context"

	"booklibrary/internal/apperr"
	"booklibrary/internal/platform/postgres"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var (
	ErrScoreRange    = apperr.Validation("Rating must be between 1 and 5")
	ErrAlreadyRated  = apperr.Conflict("already rated")
	errBookNotFound  = apperr.NotFound("Book")
	errRatingMissing = apperr.NotFound("Rating")
)

type Service struct {
	repo  Repository
	cache Cache
	log   *zap.Logger
}

// NewService wires the rating service. A nil cache disables caching.
func NewService(repo Repository, cache Cache, log *zap.Logger) *Service {
	if cache == nil {
		cache = noopCache{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{repo: repo, cache: cache, log: log}
}

// Aggregate returns the sum and count of the book's non-null scores. It does
// not check that the book exists.
func (s *Service) Aggregate(ctx context.Context, bookID string) (Aggregate, error) {
	agg, ok, err := s.cache.Get(ctx, bookID)
	if err != nil {
		s.log.Warn("rating cache read failed", zap.String("book_id", bookID), zap.Error(err))
	} else if ok {
		return agg, nil
	}

	// The generation is read before the query so that a Rate landing in
	// between makes the fill a no-op instead of caching the old aggregate.
	gen, genErr := s.cache.Generation(ctx, bookID)
	if genErr != nil {
		s.log.Warn("rating cache generation read failed", zap.String("book_id", bookID), zap.Error(genErr))
	}

	agg, err = s.repo.Aggregate(ctx, bookID)
	if err != nil {
		return Aggregate{}, err
	}
	if genErr == nil {
		if err := s.cache.Set(ctx, bookID, gen, agg); err != nil {
			s.log.Warn("rating cache write failed", zap.String("book_id", bookID), zap.Error(err))
		}
	}
	return agg, nil
}

func (s *Service) Summary(ctx context.Context, bookID string, showCount bool) (Summary, error) {
	agg, err := s.Aggregate(ctx, bookID)
	if err != nil {
		return Summary{}, err
	}
	return RenderSummary(agg.TotalScore, agg.TotalCount, showCount), nil
}

// Rate records the user's score for the book, replacing any earlier one.
func (s *Service) Rate(ctx context.Context, userID, bookID string, score int) error {
	if !ValidScore(score) {
		return ErrScoreRange
	}
	exists, err := s.repo.BookExists(ctx, bookID)
	if err != nil {
		return err
	}
	if !exists {
		return errBookNotFound
	}

	err = s.repo.Upsert(ctx, userID, bookID, score)
	if postgres.IsUniqueViolation(err) {
		s.log.Info("rating upsert raced, retrying", zap.String("user_id", userID), zap.String("book_id", bookID))
		err = s.repo.Upsert(ctx, userID, bookID, score)
		if postgres.IsUniqueViolation(err) {
			return ErrAlreadyRated
		}
	}
	if err != nil {
		return errors.WithMessage(err, "rate")
	}

	s.invalidate(ctx, bookID)
	return nil
}

// Unrate removes the user's rating. It is NotFound when there was none.
func (s *Service) Unrate(ctx context.Context, userID, bookID string) error {
	deleted, err := s.repo.Delete(ctx, userID, bookID)
	if err != nil {
		return err
	}
	if !deleted {
		return errRatingMissing
	}
	s.invalidate(ctx, bookID)
	return nil
}

func (s *Service) UserRating(ctx context.Context, userID, bookID string) (*int, error) {
	return s.repo.UserScore(ctx, userID, bookID)
}

func (s *Service) UserStats(ctx context.Context, userID string) (Stats, error) {
	return s.repo.UserStats(ctx, userID)
}

func (s *Service) invalidate(ctx context.Context, bookID string) {
	if err := s.cache.Invalidate(ctx, bookID); err != nil {
		s.log.Warn("rating cache invalidate failed", zap.String("book_id", bookID), zap.Error(err))
	}
}

type noopCache struct{}

func (noopCache) Get(context.Context, string) (Aggregate, bool, error) { return Aggregate{}, false, nil }
func (noopCache) Generation(context.Context, string) (int64, error) { return 0, nil }
func (noopCache) Set(context.Context, string, int64, Aggregate) error  { return nil }
func (noopCache) Invalidate(context.Context, string) error             { return nil }
