package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"jobmatch/internal/domain/application"
	"jobmatch/internal/domain/event"
	"jobmatch/internal/domain/job"

	"github.com/google/uuid"
)

type ApplicationUsecase interface {
	Apply(ctx context.Context, jobID, candidateID string) (application.Application, error)
	ListForJob(ctx context.Context, jobID string) ([]application.Application, error)
	UpdateStatus(ctx context.Context, id, status string) (application.Application, error)
}

type Applications struct {
	apps   application.Repository
	jobs   job.Repository
	events EventPublisher
	now    func() time.Time
}

func NewApplicationUsecase(apps application.Repository, jobs job.Repository, events EventPublisher) *Applications {
	return &Applications{
		apps:   apps,
		jobs:   jobs,
		events: publisherOrNoop(events),
		now:    time.Now,
	}
}

func (u *Applications) Apply(ctx context.Context, jobID, candidateID string) (application.Application, error) {
	candidateID = strings.TrimSpace(candidateID)
	if candidateID == "" {
		return application.Application{}, invalid("candidateId is required")
	}

	if _, err := u.jobs.GetByID(ctx, jobID); err != nil {
		return application.Application{}, mapJobRepoError(err)
	}

	a := application.Application{
		ID:          uuid.NewString(),
		JobID:       jobID,
		CandidateID: candidateID,
		Status:      application.StatusApplied,
		AppliedAt:   u.now().UTC(),
	}
	if err := u.apps.Create(ctx, a); err != nil {
		if errors.Is(err, application.ErrDuplicate) {
			return application.Application{}, ErrAlreadyApplied
		}
		return application.Application{}, ErrInternal
	}

	u.events.Publish(newEvent(event.TypeApplicationCreated, a.ID, a.AppliedAt, map[string]string{
		"jobId":       a.JobID,
		"candidateId": a.CandidateID,
		"status":      string(a.Status),
	}))
	return a, nil
}

// ListForJob does not check that the job exists; an unknown job has no
// applicants.
func (u *Applications) ListForJob(ctx context.Context, jobID string) ([]application.Application, error) {
	list, err := u.apps.ListByJob(ctx, jobID)
	if err != nil {
		return nil, ErrInternal
	}
	return list, nil
}

func (u *Applications) UpdateStatus(ctx context.Context, id, status string) (application.Application, error) {
	next := application.Status(strings.TrimSpace(status))
	if !next.Valid() {
		return application.Application{}, ErrInvalidStatus
	}

	var prev application.Status
	at := u.now()
	a, err := u.apps.Update(ctx, id, func(a *application.Application) error {
		prev = a.Status
		return a.Transition(next, at)
	})
	if err != nil {
		switch {
		case errors.Is(err, application.ErrNotFound):
			return application.Application{}, ErrApplicationNotFound
		case errors.Is(err, application.ErrBackwardTransition):
			return application.Application{}, ErrStatusConflict
		default:
			return application.Application{}, ErrInternal
		}
	}

	u.events.Publish(newEvent(event.TypeApplicationStatusChanged, a.ID, at, map[string]string{
		"jobId":       a.JobID,
		"candidateId": a.CandidateID,
		"from":        string(prev),
		"to":          string(a.Status),
	}))
	return a, nil
}
