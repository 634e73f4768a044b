// Package session tracks logged-out access tokens until they expire.
package session

import (
	"context"
	"time"

	"go.uber.org/zap"
)

const DefaultCleanupInterval = time.Hour

type Service struct {
	repo Repository
	log  *zap.Logger
}

func NewService(repo Repository, log *zap.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// Revoke is a no-op for tokens that are already expired.
func (s *Service) Revoke(ctx context.Context, jti, userID string, expiresAt time.Time) error {
	if !expiresAt.After(time.Now()) {
		return nil
	}
	return s.repo.Add(ctx, jti, userID, expiresAt)
}

func (s *Service) IsRevoked(ctx context.Context, jti string) (bool, error) {
	return s.repo.Exists(ctx, jti)
}

// RunCleanup deletes expired revocations every interval until ctx is done.
func (s *Service) RunCleanup(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := s.repo.DeleteExpired(ctx)
			if err != nil {
				s.log.Warn("revoked token cleanup failed", zap.Error(err))
				continue
			}
			if n > 0 {
				s.log.Debug("revoked tokens purged", zap.Int64("count", n))
			}
		}
	}
}
