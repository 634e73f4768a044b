package profile

import (
	"context"
	"time"

	"booklibrary/internal/catalog"
	"booklibrary/internal/user"
)

type Service struct {
	users   Users
	ratings Ratings
	books   Books
	loc     *time.Location
	now     func() time.Time
}

func NewService(users Users, ratings Ratings, books Books, loc *time.Location) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{users: users, ratings: ratings, books: books, loc: loc, now: time.Now}
}

func (s *Service) today() time.Time {
	t := s.now().In(s.loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, s.loc)
}

func (s *Service) GetOwnProfile(ctx context.Context, userID string) (Profile, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return Profile{}, err
	}
	return s.build(ctx, u)
}

// GetPublicProfile returns NotFound for private accounts.
func (s *Service) GetPublicProfile(ctx context.Context, userID string) (Profile, error) {
	u, err := s.users.GetPublic(ctx, userID)
	if err != nil {
		return Profile{}, err
	}
	return s.build(ctx, u)
}

func (s *Service) UpdateProfile(ctx context.Context, userID string, cmd UpdateCommand) (Profile, error) {
	changes, err := cmd.Changes(s.today())
	if err != nil {
		return Profile{}, err
	}
	u, err := s.users.Update(ctx, userID, changes)
	if err != nil {
		return Profile{}, err
	}
	return s.build(ctx, u)
}

func (s *Service) build(ctx context.Context, u user.User) (Profile, error) {
	rs, err := s.ratings.UserStats(ctx, u.ID)
	if err != nil {
		return Profile{}, err
	}
	shelf, err := s.books.Count(ctx, catalog.Filter{OwnerID: u.ID})
	if err != nil {
		return Profile{}, err
	}

	p := Profile{
		User: u,
		Stats: Stats{
			RatingsCount:  rs.RatingsCount,
			AverageRating: rs.AverageRating,
			BooksOnShelf:  shelf,
		},
	}
	if u.Birthday != nil {
		a := age(*u.Birthday, s.today())
		p.Age = &a
	}
	return p, nil
}
