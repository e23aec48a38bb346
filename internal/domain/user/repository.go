package user

import (
	"context"
	"errors"
)

var (
	ErrNotFound     = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already registered")
	ErrTokenUnknown = errors.New("token unknown")
)

type Repository interface {
	Create(ctx context.Context, u User) error
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	List(ctx context.Context, role Role) ([]User, error)
}

// TokenRepository maps issued bearer tokens to user ids. Entries live until
// the store is discarded.
type TokenRepository interface {
	Save(ctx context.Context, token, userID string) error
	UserID(ctx context.Context, token string) (string, error)
}
