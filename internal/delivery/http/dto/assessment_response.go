package dto

import (
	"time"

	"jobmatch/internal/domain/assessment"
)

type AssessmentSummaryResponse struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description"`
	DurationMinutes int    `json:"durationMinutes"`
	QuestionCount   int    `json:"questionCount"`
}

func FromDefinitions(defs []assessment.Definition) []AssessmentSummaryResponse {
	out := make([]AssessmentSummaryResponse, 0, len(defs))
	for _, d := range defs {
		out = append(out, AssessmentSummaryResponse{
			ID:              d.ID,
			Title:           d.Title,
			Description:     d.Description,
			DurationMinutes: d.DurationMinutes,
			QuestionCount:   len(d.Questions),
		})
	}
	return out
}

// QuestionResponse omits the answer key.
type QuestionResponse struct {
	ID       string   `json:"id"`
	Type     string   `json:"type"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

type AssessmentResponse struct {
	ID              string             `json:"id"`
	Title           string             `json:"title"`
	Description     string             `json:"description"`
	DurationMinutes int                `json:"durationMinutes"`
	Questions       []QuestionResponse `json:"questions"`
}

func FromDefinition(d assessment.Definition) AssessmentResponse {
	qs := make([]QuestionResponse, 0, len(d.Questions))
	for _, q := range d.Questions {
		qs = append(qs, QuestionResponse{
			ID:       q.ID,
			Type:     q.Type,
			Question: q.Text,
			Options:  nonNilStrings(q.Options),
		})
	}
	return AssessmentResponse{
		ID:              d.ID,
		Title:           d.Title,
		Description:     d.Description,
		DurationMinutes: d.DurationMinutes,
		Questions:       qs,
	}
}

type BreakdownResponse struct {
	QuestionID         string `json:"questionId"`
	SelectedIndex      *int   `json:"selectedIndex"`
	Correct            bool   `json:"correct"`
	CorrectOptionIndex int    `json:"correctOptionIndex"`
}

type SubmissionResponse struct {
	ID             string              `json:"id"`
	CandidateID    string              `json:"candidateId"`
	AssessmentID   string              `json:"assessmentId"`
	AnswersCount   int                 `json:"answersCount"`
	CorrectCount   int                 `json:"correctCount"`
	TotalQuestions int                 `json:"totalQuestions"`
	Score          int                 `json:"score"`
	SubmittedAt    time.Time           `json:"submittedAt"`
	Breakdown      []BreakdownResponse `json:"breakdown"`
}

func FromSubmission(s assessment.Submission) SubmissionResponse {
	bd := make([]BreakdownResponse, 0, len(s.Breakdown))
	for _, b := range s.Breakdown {
		bd = append(bd, BreakdownResponse{
			QuestionID:         b.QuestionID,
			SelectedIndex:      b.SelectedIndex,
			Correct:            b.Correct,
			CorrectOptionIndex: b.CorrectOptionIndex,
		})
	}
	return SubmissionResponse{
		ID:             s.ID,
		CandidateID:    s.CandidateID,
		AssessmentID:   s.AssessmentID,
		AnswersCount:   s.AnswersCount,
		CorrectCount:   s.CorrectCount,
		TotalQuestions: s.TotalQuestions,
		Score:          s.Score,
		SubmittedAt:    s.SubmittedAt,
		Breakdown:      bd,
	}
}

type DatasetResponse struct {
	Label           string   `json:"label"`
	Data            []int    `json:"data"`
	BackgroundColor []string `json:"backgroundColor"`
}

type ChartResponse struct {
	Labels   []string          `json:"labels"`
	Datasets []DatasetResponse `json:"datasets"`
}

type ResultsResponse struct {
	CandidateID  string              `json:"candidateId"`
	AssessmentID string              `json:"assessmentId"`
	Attempts     int                 `json:"attempts"`
	Latest       *SubmissionResponse `json:"latest"`
	Chart        ChartResponse       `json:"chart"`
	PerQuestion  ChartResponse       `json:"perQuestion"`
}

func fromChart(c assessment.Chart) ChartResponse {
	ds := make([]DatasetResponse, 0, len(c.Datasets))
	for _, d := range c.Datasets {
		ds = append(ds, DatasetResponse{
			Label:           d.Label,
			Data:            d.Data,
			BackgroundColor: d.BackgroundColor,
		})
	}
	return ChartResponse{Labels: nonNilStrings(c.Labels), Datasets: ds}
}

func FromResults(r assessment.Results) ResultsResponse {
	out := ResultsResponse{
		CandidateID:  r.CandidateID,
		AssessmentID: r.AssessmentID,
		Attempts:     r.Attempts,
		Chart:        fromChart(r.Chart),
		PerQuestion:  fromChart(r.PerQuestion),
	}
	if r.Latest != nil {
		latest := FromSubmission(*r.Latest)
		out.Latest = &latest
	}
	return out
}
