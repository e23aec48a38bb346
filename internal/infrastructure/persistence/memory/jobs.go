package memory

import (
	"context"
	"slices"
	"sync"

	"jobmatch/internal/domain/job"
)

type JobRepository struct {
	mu    sync.RWMutex
	order []string
	byID  map[string]job.Job
}

func NewJobRepository() *JobRepository {
	return &JobRepository{byID: make(map[string]job.Job)}
}

func cloneJob(j job.Job) job.Job {
	j.Skills = cloneStrings(j.Skills)
	return j
}

func (r *JobRepository) Create(_ context.Context, j job.Job) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[j.ID]; !ok {
		r.order = append(r.order, j.ID)
	}
	r.byID[j.ID] = cloneJob(j)
	return nil
}

func (r *JobRepository) GetByID(_ context.Context, id string) (job.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	j, ok := r.byID[id]
	if !ok {
		return job.Job{}, job.ErrNotFound
	}
	return cloneJob(j), nil
}

func (r *JobRepository) List(_ context.Context, f job.Filter) ([]job.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]job.Job, 0, len(r.order))
	for _, id := range r.order {
		j := r.byID[id]
		if !f.Matches(j) {
			continue
		}
		out = append(out, cloneJob(j))
	}
	return out, nil
}

func (r *JobRepository) Update(_ context.Context, id string, p job.Patch) (job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	j, ok := r.byID[id]
	if !ok {
		return job.Job{}, job.ErrNotFound
	}
	j = cloneJob(p.Apply(j))
	r.byID[id] = j
	return cloneJob(j), nil
}

func (r *JobRepository) Delete(_ context.Context, id string) (job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	j, ok := r.byID[id]
	if !ok {
		return job.Job{}, job.ErrNotFound
	}
	delete(r.byID, id)
	if idx := slices.Index(r.order, id); idx >= 0 {
		r.order = slices.Delete(r.order, idx, idx+1)
	}
	return j, nil
}
