package usecase

import (
	"context"
	"errors"
	"log"
	"strconv"
	"strings"
	"time"

	"jobmatch/internal/domain/event"
	"jobmatch/internal/domain/job"

	"github.com/google/uuid"
)

type CreateJobInput struct {
	Title      string
	Company    string
	Location   string
	Skills     []string
	MinScore   *int
	EmployerID string
}

type JobUsecase interface {
	List(ctx context.Context, query string) ([]job.Job, error)
	Get(ctx context.Context, id string) (job.Job, error)
	Create(ctx context.Context, in CreateJobInput) (job.Job, error)
	Update(ctx context.Context, id string, p job.Patch) (job.Job, error)
	Delete(ctx context.Context, id string) (job.Job, error)
}

type Jobs struct {
	jobs      job.Repository
	cache     MatchCache
	namespace string
	events    EventPublisher
	logger    *log.Logger
	now       func() time.Time
}

// NewJobUsecase wires job CRUD. namespace must match the one given to the
// matching use case so writes invalidate its cached listings.
func NewJobUsecase(jobs job.Repository, cache MatchCache, namespace string, events EventPublisher, logger *log.Logger) *Jobs {
	if logger == nil {
		logger = log.Default()
	}
	return &Jobs{
		jobs:      jobs,
		cache:     cache,
		namespace: namespace,
		events:    publisherOrNoop(events),
		logger:    logger,
		now:       time.Now,
	}
}

func (u *Jobs) List(ctx context.Context, query string) ([]job.Job, error) {
	list, err := u.jobs.List(ctx, job.Filter{Query: query})
	if err != nil {
		return nil, ErrInternal
	}
	return list, nil
}

func (u *Jobs) Get(ctx context.Context, id string) (job.Job, error) {
	j, err := u.jobs.GetByID(ctx, id)
	if err != nil {
		return job.Job{}, mapJobRepoError(err)
	}
	return j, nil
}

func (u *Jobs) Create(ctx context.Context, in CreateJobInput) (job.Job, error) {
	title := strings.TrimSpace(in.Title)
	company := strings.TrimSpace(in.Company)
	location := strings.TrimSpace(in.Location)
	if title == "" || company == "" || location == "" {
		return job.Job{}, invalid("title, company, location are required")
	}

	skills := make([]string, 0, len(in.Skills))
	skills = append(skills, in.Skills...)

	minScore := job.DefaultMinScore
	if in.MinScore != nil {
		minScore = *in.MinScore
	}

	j := job.Job{
		ID:         uuid.NewString(),
		Title:      title,
		Company:    company,
		Location:   location,
		Skills:     skills,
		MinScore:   minScore,
		EmployerID: strings.TrimSpace(in.EmployerID),
		CreatedAt:  u.now().UTC(),
	}
	if err := u.jobs.Create(ctx, j); err != nil {
		return job.Job{}, ErrInternal
	}

	u.afterWrite(ctx, event.TypeJobCreated, j)
	return j, nil
}

func (u *Jobs) Update(ctx context.Context, id string, p job.Patch) (job.Job, error) {
	j, err := u.jobs.Update(ctx, id, p)
	if err != nil {
		return job.Job{}, mapJobRepoError(err)
	}

	u.afterWrite(ctx, event.TypeJobUpdated, j)
	return j, nil
}

func (u *Jobs) Delete(ctx context.Context, id string) (job.Job, error) {
	j, err := u.jobs.Delete(ctx, id)
	if err != nil {
		return job.Job{}, mapJobRepoError(err)
	}

	u.afterWrite(ctx, event.TypeJobDeleted, j)
	return j, nil
}

func (u *Jobs) afterWrite(ctx context.Context, typ string, j job.Job) {
	if u.cache != nil {
		pattern := matchKeyPrefix(u.namespace, matchKindJobs) + "*"
		if err := u.cache.DeleteByPattern(ctx, pattern); err != nil {
			u.logger.Printf("[Cache] invalidate failed pattern=%s err=%v", pattern, err)
		}
	}

	u.events.Publish(newEvent(typ, j.ID, u.now(), map[string]string{
		"title":    j.Title,
		"company":  j.Company,
		"minScore": strconv.Itoa(j.MinScore),
	}))
}

func mapJobRepoError(err error) error {
	if errors.Is(err, job.ErrNotFound) {
		return ErrJobNotFound
	}
	return ErrInternal
}
