package borrow

import (
	"context"
	"time"
)

//go:generate mockgen -source=ports.go -destination=mock_ports.go -package=borrow

type Repository interface {
	// Take marks an available book as borrowed. It reports false when no
	// available published book matched.
	Take(ctx context.Context, bookSlug, userID string, due time.Time) (bool, error)
	// Release clears the loan if userID holds it.
	Release(ctx context.Context, bookSlug, userID string) (bool, error)
	Exists(ctx context.Context, bookSlug string) (bool, error)
}
