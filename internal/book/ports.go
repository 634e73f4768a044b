package book

import (
	"context"

	"booklibrary/internal/rating"
	"booklibrary/internal/review"
)

//go:generate mockgen -source=ports.go -destination=mock_ports.go -package=book

// Repository defines the contract for book data storage.
type Repository interface {
	GetBySlug(ctx context.Context, slug string) (Book, error)
	FindByTitleAndAuthor(ctx context.Context, title, authorID string) (Book, error)
	SlugTaken(ctx context.Context, slug string) (bool, error)
	Create(ctx context.Context, b *Book) error
}

// Ratings is what the detail view needs from the rating service.
type Ratings interface {
	Summary(ctx context.Context, bookID string, showCount bool) (rating.Summary, error)
	UserRating(ctx context.Context, userID, bookID string) (*int, error)
}

// Reviews lists a book's reviews newest first.
type Reviews interface {
	ListForBook(ctx context.Context, bookID string) ([]review.Review, error)
}
