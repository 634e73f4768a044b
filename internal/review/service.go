package review

import (
	"context"
)

type Service struct {
	repo  Repository
	books BookFinder
}

func NewService(repo Repository, books BookFinder) *Service {
	return &Service{repo: repo, books: books}
}

// Add validates text and stores a review of the book identified by bookSlug.
func (s *Service) Add(ctx context.Context, userID, bookSlug, text string) (Review, error) {
	text, err := ValidateText(text)
	if err != nil {
		return Review{}, err
	}
	bookID, err := s.books.IDBySlug(ctx, bookSlug)
	if err != nil {
		return Review{}, err
	}

	r := &Review{UserID: userID, BookID: bookID, Text: text}
	if err := s.repo.Create(ctx, r); err != nil {
		return Review{}, err
	}
	return *r, nil
}

// ListForBook returns the book's reviews, newest first.
func (s *Service) ListForBook(ctx context.Context, bookID string) ([]Review, error) {
	return s.repo.ListForBook(ctx, bookID)
}
