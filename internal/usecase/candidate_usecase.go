package usecase

import (
	"context"
	"errors"

	"jobmatch/internal/domain/candidate"
)

type CandidateListParams struct {
	Query    string
	MinScore *int
	Skills   []string
}

type CandidateUsecase interface {
	List(ctx context.Context, params CandidateListParams) ([]candidate.Candidate, error)
	Get(ctx context.Context, id string) (candidate.Candidate, error)
}

type Candidates struct {
	candidates candidate.Repository
}

func NewCandidateUsecase(candidates candidate.Repository) *Candidates {
	return &Candidates{candidates: candidates}
}

func (u *Candidates) List(ctx context.Context, params CandidateListParams) ([]candidate.Candidate, error) {
	list, err := u.candidates.List(ctx, candidate.Filter{
		Query:    params.Query,
		MinScore: params.MinScore,
		Skills:   params.Skills,
	})
	if err != nil {
		return nil, ErrInternal
	}
	return list, nil
}

func (u *Candidates) Get(ctx context.Context, id string) (candidate.Candidate, error) {
	c, err := u.candidates.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, candidate.ErrNotFound) {
			return candidate.Candidate{}, ErrCandidateNotFound
		}
		return candidate.Candidate{}, ErrInternal
	}
	return c, nil
}
