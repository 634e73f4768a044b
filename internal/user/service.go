package user

import (
	"context"
	"strings"

	"booklibrary/internal/apperr"

	"github.com/pkg/errors"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Register creates a USER account. The password must already be hashed.
func (s *Service) Register(ctx context.Context, email, username, passwordHash string) (User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	_, err := s.repo.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return User{}, apperr.Conflict("Email already exists")
	case !apperr.IsKind(err, apperr.KindNotFound):
		return User{}, err
	}

	u := &User{
		Email:        email,
		Username:     strings.TrimSpace(username),
		PasswordHash: passwordHash,
		Role:         RoleUser,
		Sex:          SexUnknown,
		City:         CityUnknown,
		IsPublic:     true,
	}
	if err := s.repo.Create(ctx, u); err != nil {
		return User{}, errors.WithMessage(err, "register")
	}
	return *u, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) GetByEmail(ctx context.Context, email string) (User, error) {
	return s.repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
}

func (s *Service) GetPublic(ctx context.Context, id string) (User, error) {
	return s.repo.GetPublic(ctx, id)
}

func (s *Service) Update(ctx context.Context, id string, changes Changes) (User, error) {
	if changes.Empty() {
		return s.repo.GetByID(ctx, id)
	}
	return s.repo.Update(ctx, id, changes)
}
