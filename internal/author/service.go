package author

import (
	"context"
	"strconv"
	"strings"

	"booklibrary/internal/apperr"

	"github.com/gosimple/slug"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) GetBySlug(ctx context.Context, slug string) (Author, error) {
	return s.repo.GetBySlug(ctx, slug)
}

// FindOrCreate matches authors by full name, case-insensitively. A new author
// gets a slug derived from the name, suffixed until it is free.
func (s *Service) FindOrCreate(ctx context.Context, a *Author) (bool, error) {
	a.FullName = strings.Join(strings.Fields(a.FullName), " ")
	if a.FullName == "" {
		return false, apperr.Validation("Author name is required")
	}

	existing, err := s.repo.FindByName(ctx, a.FullName)
	if err == nil {
		*a = existing
		return false, nil
	}
	if !apperr.IsKind(err, apperr.KindNotFound) {
		return false, err
	}

	base := slug.Make(a.FullName)
	candidate := base
	for i := 2; ; i++ {
		taken, err := s.repo.SlugTaken(ctx, candidate)
		if err != nil {
			return false, err
		}
		if !taken {
			break
		}
		candidate = base + "-" + strconv.Itoa(i)
	}
	a.Slug = candidate

	if err := s.repo.Create(ctx, a); err != nil {
		return false, err
	}
	return true, nil
}
