package assessment

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("assessment not found")

type Repository interface {
	CreateDefinition(ctx context.Context, d Definition) error
	GetDefinition(ctx context.Context, id string) (Definition, error)
	ListDefinitions(ctx context.Context) ([]Definition, error)

	// AppendSubmission never rewrites earlier submissions.
	AppendSubmission(ctx context.Context, s Submission) error
	// ListSubmissions returns the pair's submissions in append order.
	ListSubmissions(ctx context.Context, candidateID, assessmentID string) ([]Submission, error)
}
