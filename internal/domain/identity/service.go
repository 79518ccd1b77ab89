package identity

import (
	"context"
	"errors"
	"strconv"

	"github.com/healthtrack/healthtrack/internal/platform/auth"
)

// ErrInvalidCredentials covers both unknown email and wrong password so the
// response never reveals which one failed.
var ErrInvalidCredentials = errors.New("invalid email or password")

type Service struct {
	repo   Repository
	tokens *auth.Manager
}

func NewService(repo Repository, tokens *auth.Manager) *Service {
	return &Service{repo: repo, tokens: tokens}
}

// Register creates an account with a hashed password and issues a token for
// the new session.
func (s *Service) Register(ctx context.Context, name, email, password string) (*Account, string, error) {
	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, "", err
	}
	a := &Account{Name: name, Email: email, PasswordHash: hash}
	if err := s.repo.Create(ctx, a); err != nil {
		return nil, "", err
	}
	token, err := s.tokens.Issue(a.ID, a.Name, a.Email)
	if err != nil {
		return nil, "", err
	}
	return a, token, nil
}

// Login checks the credentials and issues a token.
func (s *Service) Login(ctx context.Context, email, password string) (*Account, string, error) {
	a, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if !auth.CheckPassword(a.PasswordHash, password) {
		return nil, "", ErrInvalidCredentials
	}
	token, err := s.tokens.Issue(a.ID, a.Name, a.Email)
	if err != nil {
		return nil, "", err
	}
	return a, token, nil
}

// Verify validates a bearer token and returns its claims.
func (s *Service) Verify(tokenStr string) (*auth.Claims, error) {
	return s.tokens.Verify(tokenStr)
}

// AccountFromToken resolves the account behind a valid token.
func (s *Service) AccountFromToken(ctx context.Context, tokenStr string) (*Account, error) {
	claims, err := s.tokens.Verify(tokenStr)
	if err != nil {
		return nil, err
	}
	id, err := strconv.Atoi(claims.Subject)
	if err != nil {
		return nil, auth.ErrInvalidToken
	}
	return s.repo.GetByID(ctx, id)
}

// Seed registers the demo account used by the development environment.
// Safe to call on a store that already has it.
func Seed(ctx context.Context, repo Repository, tokens *auth.Manager) error {
	svc := NewService(repo, tokens)
	_, _, err := svc.Register(ctx, "Demo User", "demo@healthcare.com", "demo123")
	if errors.Is(err, ErrEmailExists) {
		return nil
	}
	return err
}
