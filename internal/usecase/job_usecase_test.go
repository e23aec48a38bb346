package usecase

import (
	"context"
	"testing"

	"jobmatch/internal/domain/event"
	"jobmatch/internal/domain/job"

	"github.com/stretchr/testify/require"
)

func TestJobs_CreateAppliesDefaults(t *testing.T) {
	s := newSeededStore(t)
	pub := &recordingPublisher{}
	uc := NewJobUsecase(s.Jobs(), nil, "test", pub, nil)
	uc.now = fixedClock

	j, err := uc.Create(context.Background(), CreateJobInput{Title: "QA", Company: "Acme", Location: "Remote"})
	require.NoError(t, err)
	require.NotEmpty(t, j.ID)
	require.Equal(t, job.DefaultMinScore, j.MinScore)
	require.NotNil(t, j.Skills)
	require.Empty(t, j.Skills)
	require.Equal(t, fixedNow, j.CreatedAt)
	require.Equal(t, []string{event.TypeJobCreated}, pub.types())

	got, err := uc.Get(context.Background(), j.ID)
	require.NoError(t, err)
	require.Equal(t, "QA", got.Title)
}

func TestJobs_CreateRequiresFields(t *testing.T) {
	s := newSeededStore(t)
	uc := NewJobUsecase(s.Jobs(), nil, "test", nil, nil)

	_, err := uc.Create(context.Background(), CreateJobInput{Title: "QA", Company: "Acme"})
	require.ErrorIs(t, err, ErrInvalidInput)
	require.EqualError(t, err, "title, company, location are required")
}

func TestJobs_ListSearchesTitleCompanyLocation(t *testing.T) {
	s := newSeededStore(t)
	uc := NewJobUsecase(s.Jobs(), nil, "test", nil, nil)
	ctx := context.Background()

	list, err := uc.List(ctx, "remote")
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "j1", list[0].ID)
	require.Equal(t, "j4", list[1].ID)

	list, err = uc.List(ctx, "dataforge")
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "j2", list[0].ID)

	list, err = uc.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, list, 4)
}

func TestJobs_UpdateAndDelete(t *testing.T) {
	s := newSeededStore(t)
	pub := &recordingPublisher{}
	cache := newMapCache()
	uc := NewJobUsecase(s.Jobs(), cache, "test", pub, nil)
	ctx := context.Background()

	minScore := 80
	j, err := uc.Update(ctx, "j1", job.Patch{MinScore: &minScore})
	require.NoError(t, err)
	require.Equal(t, 80, j.MinScore)
	require.Equal(t, "Frontend Developer", j.Title)

	_, err = uc.Update(ctx, "nope", job.Patch{MinScore: &minScore})
	require.ErrorIs(t, err, ErrJobNotFound)

	removed, err := uc.Delete(ctx, "j1")
	require.NoError(t, err)
	require.Equal(t, "j1", removed.ID)

	_, err = uc.Get(ctx, "j1")
	require.ErrorIs(t, err, ErrJobNotFound)
	_, err = uc.Delete(ctx, "j1")
	require.ErrorIs(t, err, ErrJobNotFound)

	require.Equal(t, []string{event.TypeJobUpdated, event.TypeJobDeleted}, pub.types())
	require.Equal(t, []string{"match:test:jobs:*", "match:test:jobs:*"}, cache.deleted)
}
