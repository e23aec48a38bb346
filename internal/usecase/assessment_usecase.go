package usecase

import (
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"jobmatch/internal/domain/assessment"
	"jobmatch/internal/domain/event"
	"jobmatch/internal/domain/user"

	"github.com/google/uuid"
)

type SubmitAssessmentInput struct {
	CandidateID  string
	AssessmentID string
	// Answers is nil when the caller sent no answers array at all.
	Answers []assessment.Answer
	// Score, when set, replaces the computed score. Only admins may send it.
	Score *int
	Actor *user.User
}

type AssessmentUsecase interface {
	List(ctx context.Context) ([]assessment.Definition, error)
	Get(ctx context.Context, id string) (assessment.Definition, error)
	Submit(ctx context.Context, in SubmitAssessmentInput) (assessment.Submission, error)
	Results(ctx context.Context, candidateID, assessmentID string) (assessment.Results, error)
}

type Assessments struct {
	repo   assessment.Repository
	events EventPublisher
	now    func() time.Time
}

func NewAssessmentUsecase(repo assessment.Repository, events EventPublisher) *Assessments {
	return &Assessments{
		repo:   repo,
		events: publisherOrNoop(events),
		now:    time.Now,
	}
}

func (u *Assessments) List(ctx context.Context) ([]assessment.Definition, error) {
	defs, err := u.repo.ListDefinitions(ctx)
	if err != nil {
		return nil, ErrInternal
	}
	return defs, nil
}

func (u *Assessments) Get(ctx context.Context, id string) (assessment.Definition, error) {
	def, err := u.repo.GetDefinition(ctx, id)
	if err != nil {
		if errors.Is(err, assessment.ErrNotFound) {
			return assessment.Definition{}, ErrAssessmentNotFound
		}
		return assessment.Definition{}, ErrInternal
	}
	return def, nil
}

func (u *Assessments) Submit(ctx context.Context, in SubmitAssessmentInput) (assessment.Submission, error) {
	candidateID := strings.TrimSpace(in.CandidateID)
	assessmentID := strings.TrimSpace(in.AssessmentID)
	if candidateID == "" || assessmentID == "" || in.Answers == nil {
		return assessment.Submission{}, invalid("candidateId, assessmentId and answers[] are required")
	}
	if in.Score != nil && (in.Actor == nil || in.Actor.Role != user.RoleAdmin) {
		return assessment.Submission{}, ErrScoreOverrideDenied
	}

	def, err := u.repo.GetDefinition(ctx, assessmentID)
	if err != nil {
		if errors.Is(err, assessment.ErrNotFound) {
			return assessment.Submission{}, ErrUnknownAssessment
		}
		return assessment.Submission{}, ErrInternal
	}

	g := assessment.GradeAnswers(def, in.Answers)
	score := assessment.Percent(g.CorrectCount, g.TotalQuestions)
	if in.Score != nil {
		score = *in.Score
	}

	sub := assessment.Submission{
		ID:             uuid.NewString(),
		CandidateID:    candidateID,
		AssessmentID:   assessmentID,
		AnswersCount:   len(in.Answers),
		CorrectCount:   g.CorrectCount,
		TotalQuestions: g.TotalQuestions,
		Score:          score,
		SubmittedAt:    u.now().UTC(),
		Breakdown:      g.Breakdown,
	}
	if err := u.repo.AppendSubmission(ctx, sub); err != nil {
		return assessment.Submission{}, ErrInternal
	}

	u.events.Publish(newEvent(event.TypeAssessmentSubmitted, sub.ID, sub.SubmittedAt, map[string]string{
		"candidateId":  sub.CandidateID,
		"assessmentId": sub.AssessmentID,
		"score":        strconv.Itoa(sub.Score),
	}))
	return sub, nil
}

func (u *Assessments) Results(ctx context.Context, candidateID, assessmentID string) (assessment.Results, error) {
	candidateID = strings.TrimSpace(candidateID)
	assessmentID = strings.TrimSpace(assessmentID)
	if candidateID == "" || assessmentID == "" {
		return assessment.Results{}, invalid("candidateId and assessmentId are required")
	}

	subs, err := u.repo.ListSubmissions(ctx, candidateID, assessmentID)
	if err != nil {
		return assessment.Results{}, ErrInternal
	}
	return assessment.Aggregate(candidateID, assessmentID, subs), nil
}
