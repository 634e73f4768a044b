package category

import (
	"context"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns all categories ordered by name.
func (s *Service) List(ctx context.Context) ([]Category, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetBySlug(ctx context.Context, slug string) (Category, error) {
	return s.repo.GetBySlug(ctx, slug)
}

// Default returns the category contributed books are filed under, creating
// it on first use.
func (s *Service) Default(ctx context.Context) (Category, error) {
	return s.repo.Ensure(ctx, "Uncategorized", DefaultSlug)
}
