package book

import (
	"context"
	"strconv"

	"booklibrary/internal/apperr"
	"booklibrary/internal/rating"
	"booklibrary/internal/review"

	"github.com/gosimple/slug"
	"github.com/pkg/errors"
)

const maxSlugAttempts = 20

// Detail is the book page: the book, its rating summary, the caller's own
// score and the reviews.
type Detail struct {
	Book    Book            `json:"book"`
	Rating  rating.Summary  `json:"rating"`
	MyScore *int            `json:"my_score,omitempty"`
	Reviews []review.Review `json:"reviews"`
}

// Service provides book-related business logic.
type Service struct {
	repo    Repository
	ratings Ratings
	reviews Reviews
}

// NewService creates a new book service.
func NewService(repo Repository, ratings Ratings, reviews Reviews) *Service {
	return &Service{repo: repo, ratings: ratings, reviews: reviews}
}

// GetBySlug returns a published book.
func (s *Service) GetBySlug(ctx context.Context, slug string) (Book, error) {
	return s.repo.GetBySlug(ctx, slug)
}

func (s *Service) IDBySlug(ctx context.Context, slug string) (string, error) {
	b, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return "", err
	}
	return b.ID, nil
}

// Detail assembles the book page. viewerID may be empty for anonymous callers.
func (s *Service) Detail(ctx context.Context, slug, viewerID string) (Detail, error) {
	b, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return Detail{}, err
	}

	summary, err := s.ratings.Summary(ctx, b.ID, true)
	if err != nil {
		return Detail{}, errors.WithMessage(err, "rating summary")
	}

	d := Detail{Book: b, Rating: summary}
	if viewerID != "" {
		if d.MyScore, err = s.ratings.UserRating(ctx, viewerID, b.ID); err != nil {
			return Detail{}, errors.WithMessage(err, "user rating")
		}
	}

	if d.Reviews, err = s.reviews.ListForBook(ctx, b.ID); err != nil {
		return Detail{}, errors.WithMessage(err, "reviews")
	}
	if d.Reviews == nil {
		d.Reviews = []review.Review{}
	}
	return d, nil
}

// FindOrCreate returns the existing book with the same title and author, or
// inserts b as a new published book with a fresh unique slug.
func (s *Service) FindOrCreate(ctx context.Context, b *Book) (bool, error) {
	existing, err := s.repo.FindByTitleAndAuthor(ctx, b.Title, b.AuthorID)
	if err == nil {
		*b = existing
		return false, nil
	}
	if !apperr.IsKind(err, apperr.KindNotFound) {
		return false, err
	}

	if b.Slug, err = s.uniqueSlug(ctx, b.Title); err != nil {
		return false, err
	}
	if b.PublisherSlug == "" && b.Publisher != "" {
		b.PublisherSlug = slug.Make(b.Publisher)
	}
	b.Language = NormalizeLanguage(b.Language)
	if b.Status == "" {
		b.Status = StatusPublished
	}
	if err := s.repo.Create(ctx, b); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Service) uniqueSlug(ctx context.Context, title string) (string, error) {
	base := slug.Make(title)
	if base == "" {
		base = "book"
	}
	candidate := base
	for i := 2; i <= maxSlugAttempts+1; i++ {
		taken, err := s.repo.SlugTaken(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !taken {
			return candidate, nil
		}
		candidate = base + "-" + strconv.Itoa(i)
	}
	return "", apperr.Conflict("Could not allocate a unique slug")
}
