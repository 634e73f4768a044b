package profile

import (
	"context"

	"booklibrary/internal/catalog"
	"booklibrary/internal/rating"
	"booklibrary/internal/user"
)

//go:generate mockgen -source=ports.go -destination=mock_ports.go -package=profile

type Users interface {
	GetByID(ctx context.Context, id string) (user.User, error)
	GetPublic(ctx context.Context, id string) (user.User, error)
	Update(ctx context.Context, id string, changes user.Changes) (user.User, error)
}

type Ratings interface {
	UserStats(ctx context.Context, userID string) (rating.Stats, error)
}

// Books counts catalog rows; the shelf is the set owned by a user.
type Books interface {
	Count(ctx context.Context, f catalog.Filter) (int, error)
}
