package catalog

import (
	"context"

	"booklibrary/internal/author"
	"booklibrary/internal/category"
)

//go:generate mockgen -source=ports.go -destination=mock_ports.go -package=catalog

type Repository interface {
	Count(ctx context.Context, f Filter) (int, error)
	List(ctx context.Context, mode SortMode, f Filter, limit, offset int) ([]Item, error)
}

type Categories interface {
	List(ctx context.Context) ([]category.Category, error)
	GetBySlug(ctx context.Context, slug string) (category.Category, error)
}

type Authors interface {
	GetBySlug(ctx context.Context, slug string) (author.Author, error)
}
