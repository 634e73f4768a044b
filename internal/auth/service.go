package auth

import (
	"context"
	"time"

	"booklibrary/internal/apperr"
	"booklibrary/internal/user"
)

const accessTokenTTL = 24 * time.Hour

var errBadCredentials = &apperr.Error{Kind: apperr.KindUnauthorized, Message: "Invalid email or password"}

// Accounts is the slice of the user service that auth needs.
type Accounts interface {
	Register(ctx context.Context, email, username, passwordHash string) (user.User, error)
	GetByEmail(ctx context.Context, email string) (user.User, error)
}

type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type Service struct {
	secret      string
	accounts    Accounts
	revocations Revocations
	ttl         time.Duration
}

func NewService(secret string, accounts Accounts) *Service {
	return &Service{secret: secret, accounts: accounts, ttl: accessTokenTTL}
}

// WithRevocations enables Logout.
func (s *Service) WithRevocations(r Revocations) *Service {
	s.revocations = r
	return s
}

func (s *Service) Register(ctx context.Context, email, username, password string) (user.User, error) {
	hash, err := HashPassword(password)
	if err != nil {
		return user.User{}, err
	}
	return s.accounts.Register(ctx, email, username, hash)
}

// Login verifies the credentials and issues an access token. Unknown emails
// and wrong passwords are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, email, password string) (Token, error) {
	u, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		if apperr.IsKind(err, apperr.KindNotFound) {
			return Token{}, errBadCredentials
		}
		return Token{}, err
	}
	if !VerifyPassword(u.PasswordHash, password) {
		return Token{}, errBadCredentials
	}

	signed, _, err := GenerateToken(s.secret, u.ID, u.Role, s.ttl)
	if err != nil {
		return Token{}, err
	}
	return Token{AccessToken: signed, TokenType: "Bearer", ExpiresIn: int(s.ttl.Seconds())}, nil
}

// Logout revokes the given token until it would have expired anyway.
func (s *Service) Logout(ctx context.Context, token string) error {
	claims, err := ParseToken(s.secret, token)
	if err != nil {
		return apperr.Unauthorized()
	}
	if s.revocations == nil || claims.ID == "" || claims.ExpiresAt == nil {
		return nil
	}
	return s.revocations.Revoke(ctx, claims.ID, claims.Sub, claims.ExpiresAt.Time)
}
