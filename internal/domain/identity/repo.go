package identity

import (
	"context"
	"errors"
)

var (
	ErrNotFound    = errors.New("account not found")
	ErrEmailExists = errors.New("email already registered")
)

// Repository stores user accounts. Email is unique.
type Repository interface {
	Create(ctx context.Context, a *Account) error
	GetByID(ctx context.Context, id int) (*Account, error)
	GetByEmail(ctx context.Context, email string) (*Account, error)
}
