package job

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("job not found")

type Repository interface {
	Create(ctx context.Context, j Job) error
	GetByID(ctx context.Context, id string) (Job, error)
	List(ctx context.Context, f Filter) ([]Job, error)
	Update(ctx context.Context, id string, p Patch) (Job, error)
	Delete(ctx context.Context, id string) (Job, error)
}
