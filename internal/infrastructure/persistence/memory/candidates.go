package memory

import (
	"context"
	"sync"

	"jobmatch/internal/domain/candidate"
)

type CandidateRepository struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]candidate.Candidate
}

func NewCandidateRepository() *CandidateRepository {
	return &CandidateRepository{byID: make(map[string]candidate.Candidate)}
}

func (r *CandidateRepository) Create(_ context.Context, c candidate.Candidate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[c.ID]; !ok {
		r.order = append(r.order, c.ID)
	}
	c.Skills = cloneStrings(c.Skills)
	r.byID[c.ID] = c
	return nil
}

func (r *CandidateRepository) GetByID(_ context.Context, id string) (candidate.Candidate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	c, ok := r.byID[id]
	if !ok {
		return candidate.Candidate{}, candidate.ErrNotFound
	}
	c.Skills = cloneStrings(c.Skills)
	return c, nil
}

func (r *CandidateRepository) List(_ context.Context, f candidate.Filter) ([]candidate.Candidate, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]candidate.Candidate, 0, len(r.order))
	for _, id := range r.order {
		c := r.byID[id]
		if !f.Matches(c) {
			continue
		}
		c.Skills = cloneStrings(c.Skills)
		out = append(out, c)
	}
	return out, nil
}
