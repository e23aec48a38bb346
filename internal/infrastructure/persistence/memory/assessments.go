package memory

import (
	"context"
	"sync"

	"jobmatch/internal/domain/assessment"
)

type AssessmentRepository struct {
	mu          sync.RWMutex
	defOrder    []string
	defs        map[string]assessment.Definition
	submissions []assessment.Submission
}

func NewAssessmentRepository() *AssessmentRepository {
	return &AssessmentRepository{defs: make(map[string]assessment.Definition)}
}

func cloneDefinition(d assessment.Definition) assessment.Definition {
	qs := make([]assessment.Question, len(d.Questions))
	for i, q := range d.Questions {
		q.Options = cloneStrings(q.Options)
		qs[i] = q
	}
	d.Questions = qs
	return d
}

func cloneSubmission(s assessment.Submission) assessment.Submission {
	s.Breakdown = append([]assessment.BreakdownEntry(nil), s.Breakdown...)
	return s
}

func (r *AssessmentRepository) CreateDefinition(_ context.Context, d assessment.Definition) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.defs[d.ID]; !ok {
		r.defOrder = append(r.defOrder, d.ID)
	}
	r.defs[d.ID] = cloneDefinition(d)
	return nil
}

func (r *AssessmentRepository) GetDefinition(_ context.Context, id string) (assessment.Definition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.defs[id]
	if !ok {
		return assessment.Definition{}, assessment.ErrNotFound
	}
	return cloneDefinition(d), nil
}

func (r *AssessmentRepository) ListDefinitions(_ context.Context) ([]assessment.Definition, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]assessment.Definition, 0, len(r.defOrder))
	for _, id := range r.defOrder {
		out = append(out, cloneDefinition(r.defs[id]))
	}
	return out, nil
}

func (r *AssessmentRepository) AppendSubmission(_ context.Context, s assessment.Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.submissions = append(r.submissions, cloneSubmission(s))
	return nil
}

func (r *AssessmentRepository) ListSubmissions(_ context.Context, candidateID, assessmentID string) ([]assessment.Submission, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]assessment.Submission, 0)
	for _, s := range r.submissions {
		if s.CandidateID == candidateID && s.AssessmentID == assessmentID {
			out = append(out, cloneSubmission(s))
		}
	}
	return out, nil
}
