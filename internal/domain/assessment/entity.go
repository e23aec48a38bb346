package assessment

import "time"

type Question struct {
	ID                 string
	Type               string
	Text               string
	Options            []string
	CorrectOptionIndex int
}

type Definition struct {
	ID              string
	Title           string
	Description     string
	DurationMinutes int
	Questions       []Question
}

// Answer is a caller-supplied choice. A nil SelectedIndex never counts as
// correct.
type Answer struct {
	QuestionID    string
	SelectedIndex *int
}

type BreakdownEntry struct {
	QuestionID         string
	SelectedIndex      *int
	Correct            bool
	CorrectOptionIndex int
}

type Submission struct {
	ID             string
	CandidateID    string
	AssessmentID   string
	AnswersCount   int
	CorrectCount   int
	TotalQuestions int
	Score          int
	SubmittedAt    time.Time
	Breakdown      []BreakdownEntry
}
