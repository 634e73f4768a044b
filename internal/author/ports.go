package author

import "context"

//go:generate mockgen -source=ports.go -destination=mock_ports.go -package=author

type Repository interface {
	GetBySlug(ctx context.Context, slug string) (Author, error)
	FindByName(ctx context.Context, fullName string) (Author, error)
	SlugTaken(ctx context.Context, slug string) (bool, error)
	Create(ctx context.Context, a *Author) error
}
