package session

import (
	"context"
	"time"
)

//go:generate mockgen -source=ports.go -destination=mock_ports.go -package=session

// Repository stores revoked access tokens keyed by jti.
type Repository interface {
	Add(ctx context.Context, jti, userID string, expiresAt time.Time) error
	Exists(ctx context.Context, jti string) (bool, error)
	DeleteExpired(ctx context.Context) (int64, error)
}
