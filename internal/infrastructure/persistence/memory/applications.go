package memory

import (
	"context"
	"sync"

	"jobmatch/internal/domain/application"
)

type ApplicationRepository struct {
	mu     sync.RWMutex
	order  []string
	byID   map[string]application.Application
	byPair map[[2]string]string
}

func NewApplicationRepository() *ApplicationRepository {
	return &ApplicationRepository{
		byID:   make(map[string]application.Application),
		byPair: make(map[[2]string]string),
	}
}

func (r *ApplicationRepository) Create(_ context.Context, a application.Application) error {
	key := [2]string{a.JobID, a.CandidateID}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byPair[key]; ok {
		return application.ErrDuplicate
	}
	r.byID[a.ID] = a
	r.byPair[key] = a.ID
	r.order = append(r.order, a.ID)
	return nil
}

func (r *ApplicationRepository) GetByID(_ context.Context, id string) (application.Application, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return application.Application{}, application.ErrNotFound
	}
	return a, nil
}

func (r *ApplicationRepository) ListByJob(_ context.Context, jobID string) ([]application.Application, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]application.Application, 0)
	for _, id := range r.order {
		a := r.byID[id]
		if a.JobID == jobID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *ApplicationRepository) Update(_ context.Context, id string, fn func(*application.Application) error) (application.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.byID[id]
	if !ok {
		return application.Application{}, application.ErrNotFound
	}
	if err := fn(&a); err != nil {
		return application.Application{}, err
	}
	r.byID[id] = a
	return a, nil
}
