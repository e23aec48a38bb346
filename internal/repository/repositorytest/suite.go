// Package repositorytest holds the behaviour every repository.Store must
// share, so each backend runs the same assertions.
package repositorytest

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"jobmatch/internal/domain/application"
	"jobmatch/internal/domain/assessment"
	"jobmatch/internal/domain/candidate"
	"jobmatch/internal/domain/job"
	"jobmatch/internal/domain/user"
	"jobmatch/internal/repository"

	"github.com/stretchr/testify/require"
)

// Run executes the contract against stores produced by newStore. Every
// subtest gets a fresh store.
func Run(t *testing.T, newStore func(t *testing.T) repository.Store) {
	t.Helper()

	tests := []struct {
		name string
		fn   func(t *testing.T, s repository.Store)
	}{
		{"users", testUsers},
		{"tokens", testTokens},
		{"jobs", testJobs},
		{"candidates", testCandidates},
		{"unicode text search", testUnicodeTextSearch},
		{"applications", testApplications},
		{"concurrent applications", testConcurrentApplications},
		{"assessments", testAssessments},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newStore(t)
			t.Cleanup(func() { _ = s.Close() })
			tt.fn(t, s)
		})
	}
}

var base = time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

func testUsers(t *testing.T, s repository.Store) {
	ctx := context.Background()
	repo := s.Users()

	require.NoError(t, repo.Create(ctx, user.User{ID: "u1", Name: "Alice", Email: "Alice@Example.com", Role: user.RoleApplicant, CreatedAt: base}))
	require.NoError(t, repo.Create(ctx, user.User{ID: "u2", Name: "Evan", Email: "evan@example.com", Role: user.RoleEmployer, CreatedAt: base}))

	err := repo.Create(ctx, user.User{ID: "u3", Name: "Dup", Email: " alice@example.com ", Role: user.RoleApplicant})
	require.ErrorIs(t, err, user.ErrEmailTaken)

	got, err := repo.GetByEmail(ctx, "ALICE@example.com")
	require.NoError(t, err)
	require.Equal(t, "u1", got.ID)
	require.Equal(t, "alice@example.com", got.Email)

	got, err = repo.GetByID(ctx, "u2")
	require.NoError(t, err)
	require.Equal(t, user.RoleEmployer, got.Role)
	require.True(t, got.CreatedAt.Equal(base))

	_, err = repo.GetByID(ctx, "missing")
	require.ErrorIs(t, err, user.ErrNotFound)
	_, err = repo.GetByEmail(ctx, "nobody@example.com")
	require.ErrorIs(t, err, user.ErrNotFound)

	all, err := repo.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, "u1", all[0].ID)
	require.Equal(t, "u2", all[1].ID)

	employers, err := repo.List(ctx, user.RoleEmployer)
	require.NoError(t, err)
	require.Len(t, employers, 1)
	require.Equal(t, "u2", employers[0].ID)
}

func testTokens(t *testing.T, s repository.Store) {
	ctx := context.Background()
	repo := s.Tokens()

	_, err := repo.UserID(ctx, "nope")
	require.ErrorIs(t, err, user.ErrTokenUnknown)

	require.NoError(t, repo.Save(ctx, "tok-1", "u1"))
	require.NoError(t, repo.Save(ctx, "tok-2", "u1"))

	id, err := repo.UserID(ctx, "tok-1")
	require.NoError(t, err)
	require.Equal(t, "u1", id)

	id, err = repo.UserID(ctx, "tok-2")
	require.NoError(t, err)
	require.Equal(t, "u1", id)
}

func testJobs(t *testing.T, s repository.Store) {
	ctx := context.Background()
	repo := s.Jobs()

	require.NoError(t, repo.Create(ctx, job.Job{ID: "j1", Title: "Frontend Engineer", Company: "Acme", Location: "Remote", Skills: []string{"React", "TypeScript"}, MinScore: 60, CreatedAt: base}))
	require.NoError(t, repo.Create(ctx, job.Job{ID: "j2", Title: "Backend Engineer", Company: "Globex", Location: "Berlin", Skills: []string{"Go"}, MinScore: 70, CreatedAt: base}))

	got, err := repo.GetByID(ctx, "j1")
	require.NoError(t, err)
	require.Equal(t, []string{"React", "TypeScript"}, got.Skills)
	require.Equal(t, 60, got.MinScore)

	_, err = repo.GetByID(ctx, "missing")
	require.ErrorIs(t, err, job.ErrNotFound)

	list, err := repo.List(ctx, job.Filter{Query: "BERLIN"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "j2", list[0].ID)

	list, err = repo.List(ctx, job.Filter{})
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "j1", list[0].ID)

	title := "Senior Frontend Engineer"
	empty := ""
	skills := []string{"Vue"}
	updated, err := repo.Update(ctx, "j1", job.Patch{Title: &title, Company: &empty, Skills: &skills})
	require.NoError(t, err)
	require.Equal(t, title, updated.Title)
	require.Equal(t, "Acme", updated.Company)
	require.Equal(t, []string{"Vue"}, updated.Skills)

	got, err = repo.GetByID(ctx, "j1")
	require.NoError(t, err)
	require.Equal(t, updated.Title, got.Title)
	require.Equal(t, []string{"Vue"}, got.Skills)

	_, err = repo.Update(ctx, "missing", job.Patch{Title: &title})
	require.ErrorIs(t, err, job.ErrNotFound)

	removed, err := repo.Delete(ctx, "j1")
	require.NoError(t, err)
	require.Equal(t, "j1", removed.ID)

	_, err = repo.GetByID(ctx, "j1")
	require.ErrorIs(t, err, job.ErrNotFound)
	_, err = repo.Delete(ctx, "j1")
	require.ErrorIs(t, err, job.ErrNotFound)

	list, err = repo.List(ctx, job.Filter{})
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func testCandidates(t *testing.T, s repository.Store) {
	ctx := context.Background()
	repo := s.Candidates()

	require.NoError(t, repo.Create(ctx, candidate.Candidate{ID: "u1", Name: "Alice", Email: "alice@example.com", Role: user.RoleApplicant, Skills: []string{"React", "Node"}, Score: 65}))
	require.NoError(t, repo.Create(ctx, candidate.Candidate{ID: "u3", Name: "Bob", Email: "bob@example.com", Role: user.RoleApplicant, Skills: []string{"Go"}, Score: 80}))
	require.NoError(t, repo.Create(ctx, candidate.Candidate{ID: "u4", Name: "Carol", Email: "carol@example.com", Role: user.RoleApplicant, Skills: []string{"Python"}, Score: 45}))

	got, err := repo.GetByID(ctx, "u3")
	require.NoError(t, err)
	require.Equal(t, 80, got.Score)

	_, err = repo.GetByID(ctx, "missing")
	require.ErrorIs(t, err, candidate.ErrNotFound)

	minScore := 60
	list, err := repo.List(ctx, candidate.Filter{MinScore: &minScore})
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.Equal(t, "u1", list[0].ID)
	require.Equal(t, "u3", list[1].ID)

	list, err = repo.List(ctx, candidate.Filter{Skills: []string{"python"}})
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "u4", list[0].ID)

	list, err = repo.List(ctx, candidate.Filter{Query: "BOB"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "u3", list[0].ID)

	// Create replaces an existing record in place.
	require.NoError(t, repo.Create(ctx, candidate.Candidate{ID: "u1", Name: "Alice", Email: "alice@example.com", Role: user.RoleApplicant, Skills: []string{"React"}, Score: 90}))
	list, err = repo.List(ctx, candidate.Filter{})
	require.NoError(t, err)
	require.Len(t, list, 3)
	require.Equal(t, "u1", list[0].ID)
	require.Equal(t, 90, list[0].Score)
}

func testUnicodeTextSearch(t *testing.T, s repository.Store) {
	ctx := context.Background()

	require.NoError(t, s.Jobs().Create(ctx, job.Job{ID: "j1", Title: "ÉCOLE Dev", Company: "Lycée", Location: "Zürich", CreatedAt: base}))
	require.NoError(t, s.Jobs().Create(ctx, job.Job{ID: "j2", Title: "Backend Engineer", Company: "Globex", Location: "Berlin", CreatedAt: base}))

	for _, q := range []string{"école", "LYCÉE", "zÜrich"} {
		list, err := s.Jobs().List(ctx, job.Filter{Query: q})
		require.NoError(t, err, q)
		require.Len(t, list, 1, q)
		require.Equal(t, "j1", list[0].ID, q)
	}

	require.NoError(t, s.Candidates().Create(ctx, candidate.Candidate{ID: "u1", Name: "Zoë Åberg", Email: "zoe@example.com", Role: user.RoleApplicant, Score: 70}))
	require.NoError(t, s.Candidates().Create(ctx, candidate.Candidate{ID: "u2", Name: "Bob", Email: "bob@example.com", Role: user.RoleApplicant, Score: 70}))

	list, err := s.Candidates().List(ctx, candidate.Filter{Query: "ÅBERG"})
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "u1", list[0].ID)
}

func testApplications(t *testing.T, s repository.Store) {
	ctx := context.Background()
	repo := s.Applications()

	a := application.Application{ID: "a1", JobID: "j1", CandidateID: "u1", Status: application.StatusApplied, AppliedAt: base}
	require.NoError(t, repo.Create(ctx, a))
	require.NoError(t, repo.Create(ctx, application.Application{ID: "a2", JobID: "j2", CandidateID: "u1", Status: application.StatusApplied, AppliedAt: base}))

	err := repo.Create(ctx, application.Application{ID: "a3", JobID: "j1", CandidateID: "u1", Status: application.StatusApplied, AppliedAt: base})
	require.ErrorIs(t, err, application.ErrDuplicate)

	got, err := repo.GetByID(ctx, "a1")
	require.NoError(t, err)
	require.Equal(t, application.StatusApplied, got.Status)
	require.Nil(t, got.UpdatedAt)

	_, err = repo.GetByID(ctx, "missing")
	require.ErrorIs(t, err, application.ErrNotFound)

	list, err := repo.ListByJob(ctx, "j1")
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "a1", list[0].ID)

	list, err = repo.ListByJob(ctx, "nothing")
	require.NoError(t, err)
	require.Empty(t, list)

	at := base.Add(time.Hour)
	updated, err := repo.Update(ctx, "a1", func(a *application.Application) error {
		return a.Transition(application.StatusShortlisted, at)
	})
	require.NoError(t, err)
	require.Equal(t, application.StatusShortlisted, updated.Status)
	require.NotNil(t, updated.UpdatedAt)

	got, err = repo.GetByID(ctx, "a1")
	require.NoError(t, err)
	require.Equal(t, application.StatusShortlisted, got.Status)
	require.NotNil(t, got.UpdatedAt)
	require.True(t, got.UpdatedAt.Equal(at))

	_, err = repo.Update(ctx, "a1", func(a *application.Application) error {
		return a.Transition(application.StatusApplied, at)
	})
	require.ErrorIs(t, err, application.ErrBackwardTransition)

	got, err = repo.GetByID(ctx, "a1")
	require.NoError(t, err)
	require.Equal(t, application.StatusShortlisted, got.Status)

	_, err = repo.Update(ctx, "missing", func(*application.Application) error { return nil })
	require.ErrorIs(t, err, application.ErrNotFound)
}

func testConcurrentApplications(t *testing.T, s repository.Store) {
	ctx := context.Background()
	repo := s.Applications()

	const workers = 8
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
		dups    int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			err := repo.Create(ctx, application.Application{
				ID:          "app-" + string(rune('a'+i)),
				JobID:       "j1",
				CandidateID: "u1",
				Status:      application.StatusApplied,
				AppliedAt:   base,
			})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				created++
			case errors.Is(err, application.ErrDuplicate):
				dups++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}(i)
	}
	wg.Wait()

	require.Equal(t, 1, created)
	require.Equal(t, workers-1, dups)

	list, err := repo.ListByJob(ctx, "j1")
	require.NoError(t, err)
	require.Len(t, list, 1)
}

func testAssessments(t *testing.T, s repository.Store) {
	ctx := context.Background()
	repo := s.Assessments()

	def := assessment.Definition{
		ID:              "a1",
		Title:           "Frontend Basics",
		Description:     "React fundamentals",
		DurationMinutes: 10,
		Questions: []assessment.Question{
			{ID: "q1", Type: "mcq", Text: "Hook for state?", Options: []string{"useEffect", "useState"}, CorrectOptionIndex: 1},
			{ID: "q2", Type: "mcq", Text: "JSX compiles to?", Options: []string{"HTML", "createElement"}, CorrectOptionIndex: 1},
		},
	}
	require.NoError(t, repo.CreateDefinition(ctx, def))
	require.NoError(t, repo.CreateDefinition(ctx, assessment.Definition{ID: "a2", Title: "Backend Basics"}))

	got, err := repo.GetDefinition(ctx, "a1")
	require.NoError(t, err)
	require.Equal(t, def.Title, got.Title)
	require.Len(t, got.Questions, 2)
	require.Equal(t, []string{"useEffect", "useState"}, got.Questions[0].Options)
	require.Equal(t, 1, got.Questions[1].CorrectOptionIndex)

	_, err = repo.GetDefinition(ctx, "missing")
	require.ErrorIs(t, err, assessment.ErrNotFound)

	defs, err := repo.ListDefinitions(ctx)
	require.NoError(t, err)
	require.Len(t, defs, 2)
	require.Equal(t, "a1", defs[0].ID)
	require.Equal(t, "a2", defs[1].ID)

	subs, err := repo.ListSubmissions(ctx, "u1", "a1")
	require.NoError(t, err)
	require.Empty(t, subs)

	sel := 1
	for i, id := range []string{"s1", "s2"} {
		require.NoError(t, repo.AppendSubmission(ctx, assessment.Submission{
			ID:             id,
			CandidateID:    "u1",
			AssessmentID:   "a1",
			AnswersCount:   1,
			CorrectCount:   i,
			TotalQuestions: 2,
			Score:          i * 50,
			SubmittedAt:    base.Add(time.Duration(i) * time.Minute),
			Breakdown: []assessment.BreakdownEntry{
				{QuestionID: "q1", SelectedIndex: &sel, Correct: true, CorrectOptionIndex: 1},
				{QuestionID: "q2", CorrectOptionIndex: 1},
			},
		}))
	}
	require.NoError(t, repo.AppendSubmission(ctx, assessment.Submission{ID: "s3", CandidateID: "u3", AssessmentID: "a1", SubmittedAt: base}))

	subs, err = repo.ListSubmissions(ctx, "u1", "a1")
	require.NoError(t, err)
	require.Len(t, subs, 2)
	require.Equal(t, "s1", subs[0].ID)
	require.Equal(t, "s2", subs[1].ID)
	require.Equal(t, 50, subs[1].Score)
	require.Len(t, subs[1].Breakdown, 2)
	require.NotNil(t, subs[1].Breakdown[0].SelectedIndex)
	require.Equal(t, 1, *subs[1].Breakdown[0].SelectedIndex)
	require.Nil(t, subs[1].Breakdown[1].SelectedIndex)
}
