package category

import "context"

//go:generate mockgen -source=ports.go -destination=mock_ports.go -package=category

type Repository interface {
	List(ctx context.Context) ([]Category, error)
	GetBySlug(ctx context.Context, slug string) (Category, error)
	Ensure(ctx context.Context, name, slug string) (Category, error)
}
