package borrow

import (
	"context"
	"time"

	"booklibrary/internal/apperr"

	"go.uber.org/zap"
)

type Service struct {
	repo  Repository
	clock Clock
	loc   *time.Location
	log   *zap.Logger
}

func NewService(repo Repository, clock Clock, loc *time.Location, log *zap.Logger) *Service {
	if clock == nil {
		clock = SystemClock
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Service{repo: repo, clock: clock, loc: loc, log: log}
}

// Today is the current date in the service's location.
func (s *Service) Today() time.Time {
	return dateOf(s.clock.Now(), s.loc)
}

func (s *Service) Location() *time.Location {
	return s.loc
}

// Borrow lends the book to userID until due. The availability check and the
// write are one conditional update.
func (s *Service) Borrow(ctx context.Context, userID, bookSlug string, due time.Time) error {
	if err := ValidateDueDate(dateOf(due, s.loc), s.Today()); err != nil {
		return err
	}

	ok, err := s.repo.Take(ctx, bookSlug, userID, dateOf(due, s.loc))
	if err != nil {
		return err
	}
	if ok {
		s.log.Info("book borrowed", zap.String("book", bookSlug), zap.String("user_id", userID))
		return nil
	}

	exists, err := s.repo.Exists(ctx, bookSlug)
	if err != nil {
		return err
	}
	if !exists {
		return apperr.NotFound("Book")
	}
	return ErrTaken
}

// Return releases the caller's loan. Returning a book the caller does not
// hold changes nothing.
func (s *Service) Return(ctx context.Context, userID, bookSlug string) error {
	released, err := s.repo.Release(ctx, bookSlug, userID)
	if err != nil {
		return err
	}
	if released {
		s.log.Info("book returned", zap.String("book", bookSlug), zap.String("user_id", userID))
	}
	return nil
}
