package application

import (
	"context"
	"errors"
)

var (
	ErrNotFound  = errors.New("application not found")
	ErrDuplicate = errors.New("already applied")
)

type Repository interface {
	// Create fails with ErrDuplicate when the (job, candidate) pair exists.
	Create(ctx context.Context, a Application) error
	GetByID(ctx context.Context, id string) (Application, error)
	ListByJob(ctx context.Context, jobID string) ([]Application, error)
	// Update loads the application, applies fn and persists the result
	// atomically. An error from fn aborts the update.
	Update(ctx context.Context, id string, fn func(*Application) error) (Application, error)
}
