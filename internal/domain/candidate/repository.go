package candidate

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("candidate not found")

type Repository interface {
	Create(ctx context.Context, c Candidate) error
	GetByID(ctx context.Context, id string) (Candidate, error)
	List(ctx context.Context, f Filter) ([]Candidate, error)
}
