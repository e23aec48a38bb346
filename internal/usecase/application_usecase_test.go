package usecase

import (
	"context"
	"testing"

	"jobmatch/internal/domain/application"
	"jobmatch/internal/domain/event"

	"github.com/stretchr/testify/require"
)

func TestApplications_ApplyTwiceConflicts(t *testing.T) {
	s := newSeededStore(t)
	pub := &recordingPublisher{}
	uc := NewApplicationUsecase(s.Applications(), s.Jobs(), pub)
	uc.now = fixedClock
	ctx := context.Background()

	a, err := uc.Apply(ctx, "j1", "u1")
	require.NoError(t, err)
	require.Equal(t, application.StatusApplied, a.Status)
	require.Equal(t, fixedNow, a.AppliedAt)
	require.Nil(t, a.UpdatedAt)

	_, err = uc.Apply(ctx, "j1", "u1")
	require.ErrorIs(t, err, ErrAlreadyApplied)

	list, err := uc.ListForJob(ctx, "j1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, []string{event.TypeApplicationCreated}, pub.types())
}

func TestApplications_ApplyValidation(t *testing.T) {
	s := newSeededStore(t)
	uc := NewApplicationUsecase(s.Applications(), s.Jobs(), nil)
	ctx := context.Background()

	_, err := uc.Apply(ctx, "j1", " ")
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Apply(ctx, "missing", "u1")
	require.ErrorIs(t, err, ErrJobNotFound)

	list, err := uc.ListForJob(ctx, "missing")
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestApplications_UpdateStatusMovesForwardOnly(t *testing.T) {
	s := newSeededStore(t)
	pub := &recordingPublisher{}
	uc := NewApplicationUsecase(s.Applications(), s.Jobs(), pub)
	uc.now = fixedClock
	ctx := context.Background()

	a, err := uc.Apply(ctx, "j2", "u3")
	require.NoError(t, err)

	_, err = uc.UpdateStatus(ctx, a.ID, "archived")
	require.ErrorIs(t, err, ErrInvalidStatus)

	_, err = uc.UpdateStatus(ctx, "missing", "shortlisted")
	require.ErrorIs(t, err, ErrApplicationNotFound)

	got, err := uc.UpdateStatus(ctx, a.ID, "shortlisted")
	require.NoError(t, err)
	require.Equal(t, application.StatusShortlisted, got.Status)
	require.NotNil(t, got.UpdatedAt)
	require.Equal(t, fixedNow, *got.UpdatedAt)

	got, err = uc.UpdateStatus(ctx, a.ID, "shortlisted")
	require.NoError(t, err)
	require.Equal(t, application.StatusShortlisted, got.Status)

	_, err = uc.UpdateStatus(ctx, a.ID, "applied")
	require.ErrorIs(t, err, ErrStatusConflict)

	got, err = uc.UpdateStatus(ctx, a.ID, "hired")
	require.NoError(t, err)
	require.Equal(t, application.StatusHired, got.Status)

	_, err = uc.UpdateStatus(ctx, a.ID, "rejected")
	require.ErrorIs(t, err, ErrStatusConflict)

	pub.mu.Lock()
	last := pub.events[len(pub.events)-1]
	pub.mu.Unlock()
	require.Equal(t, event.TypeApplicationStatusChanged, last.Type)
	require.Equal(t, "shortlisted", last.Attributes["from"])
	require.Equal(t, "hired", last.Attributes["to"])
}
