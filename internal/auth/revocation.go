package auth

import (
	"context"
	"time"
)

// Revocations records tokens that were logged out before they expired.
type Revocations interface {
	Revoke(ctx context.Context, jti, userID string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
}
