package review

import "context"

//go:generate mockgen -source=ports.go -destination=mock_ports.go -package=review

type Repository interface {
	Create(ctx context.Context, r *Review) error
	ListForBook(ctx context.Context, bookID string) ([]Review, error)
}

// BookFinder resolves a public slug to a book id.
type BookFinder interface {
	IDBySlug(ctx context.Context, slug string) (string, error)
}
