package rating

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_ports.go -package=rating

// Repository persists ratings keyed by (user, book).
type Repository interface {
	BookExists(ctx context.Context, bookID string) (bool, error)
	Aggregate(ctx context.Context, bookID string) (Aggregate, error)
	Upsert(ctx context.Context, userID, bookID string, score int) error
	Delete(ctx context.Context, userID, bookID string) (bool, error)
	UserScore(ctx context.Context, userID, bookID string) (*int, error)
	UserStats(ctx context.Context, userID string) (Stats, error)
}

// Cache stores aggregates per book. Implementations may lose entries at any
// time; the repository stays authoritative.
//
// Every Invalidate advances the book's generation. Set must drop the value
// when the generation is no longer gen, the one read before the aggregate
// was loaded.
type Cache interface {
	Get(ctx context.Context, bookID string) (Aggregate, bool, error)
	Generation(ctx context.Context, bookID string) (int64, error)
	Set(ctx context.Context, bookID string, gen int64, agg Aggregate) error
	Invalidate(ctx context.Context, bookID string) error
}

// BookFinder resolves a public slug to a book id.
type BookFinder interface {
	IDBySlug(ctx context.Context, slug string) (string, error)
}
