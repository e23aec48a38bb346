package sqlite

import (
	"encoding/json"
	"time"

	"jobmatch/internal/domain/application"
	"jobmatch/internal/domain/assessment"
	"jobmatch/internal/domain/candidate"
	"jobmatch/internal/domain/job"
	"jobmatch/internal/domain/user"

	"gorm.io/datatypes"
)

// Every table carries an autoincrement Seq so listings follow insertion
// order; the domain id is a separate unique column.

type userModel struct {
	Seq          uint   `gorm:"primaryKey;autoIncrement"`
	ID           string `gorm:"column:id;uniqueIndex;not null"`
	Name         string
	Email        string `gorm:"uniqueIndex;not null"`
	Role         string `gorm:"index"`
	PasswordHash string
	CreatedAt    time.Time
}

func (userModel) TableName() string { return "users" }

type tokenModel struct {
	Token  string `gorm:"primaryKey"`
	UserID string `gorm:"not null"`
}

func (tokenModel) TableName() string { return "auth_tokens" }

type jobModel struct {
	Seq        uint   `gorm:"primaryKey;autoIncrement"`
	ID         string `gorm:"column:id;uniqueIndex;not null"`
	Title      string
	Company    string
	Location   string
	Skills     datatypes.JSON
	MinScore   int
	EmployerID string
	CreatedAt  time.Time
}

func (jobModel) TableName() string { return "jobs" }

type candidateModel struct {
	Seq    uint   `gorm:"primaryKey;autoIncrement"`
	ID     string `gorm:"column:id;uniqueIndex;not null"`
	Name   string
	Email  string
	Role   string
	Skills datatypes.JSON
	Score  int `gorm:"index"`
}

func (candidateModel) TableName() string { return "candidates" }

type applicationModel struct {
	Seq         uint   `gorm:"primaryKey;autoIncrement"`
	ID          string `gorm:"column:id;uniqueIndex;not null"`
	JobID       string `gorm:"uniqueIndex:idx_application_pair;not null"`
	CandidateID string `gorm:"uniqueIndex:idx_application_pair;not null"`
	Status      string
	AppliedAt   time.Time
	ChangedAt   *time.Time `gorm:"column:status_updated_at"`
}

func (applicationModel) TableName() string { return "applications" }

type definitionModel struct {
	Seq             uint   `gorm:"primaryKey;autoIncrement"`
	ID              string `gorm:"column:id;uniqueIndex;not null"`
	Title           string
	Description     string
	DurationMinutes int
	Questions       datatypes.JSON
}

func (definitionModel) TableName() string { return "assessment_definitions" }

type submissionModel struct {
	Seq            uint   `gorm:"primaryKey;autoIncrement"`
	ID             string `gorm:"column:id;uniqueIndex;not null"`
	CandidateID    string `gorm:"index:idx_submission_pair"`
	AssessmentID   string `gorm:"index:idx_submission_pair"`
	AnswersCount   int
	CorrectCount   int
	TotalQuestions int
	Score          int
	SubmittedAt    time.Time
	Breakdown      datatypes.JSON
}

func (submissionModel) TableName() string { return "assessment_submissions" }

type questionRecord struct {
	ID                 string   `json:"id"`
	Type               string   `json:"type"`
	Text               string   `json:"question"`
	Options            []string `json:"options"`
	CorrectOptionIndex int      `json:"correctOptionIndex"`
}

type breakdownRecord struct {
	QuestionID         string `json:"questionId"`
	SelectedIndex      *int   `json:"selectedIndex"`
	Correct            bool   `json:"correct"`
	CorrectOptionIndex int    `json:"correctOptionIndex"`
}

func encodeJSON(v any) (datatypes.JSON, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}

func decodeStrings(raw datatypes.JSON) ([]string, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func toUserModel(u user.User) userModel {
	return userModel{
		ID:           u.ID,
		Name:         u.Name,
		Email:        user.NormalizeEmail(u.Email),
		Role:         string(u.Role),
		PasswordHash: u.PasswordHash,
		CreatedAt:    u.CreatedAt,
	}
}

func (m userModel) toDomain() user.User {
	return user.User{
		ID:           m.ID,
		Name:         m.Name,
		Email:        m.Email,
		Role:         user.Role(m.Role),
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
	}
}

func toJobModel(j job.Job) (jobModel, error) {
	skills, err := encodeJSON(nonNil(j.Skills))
	if err != nil {
		return jobModel{}, err
	}
	return jobModel{
		ID:         j.ID,
		Title:      j.Title,
		Company:    j.Company,
		Location:   j.Location,
		Skills:     skills,
		MinScore:   j.MinScore,
		EmployerID: j.EmployerID,
		CreatedAt:  j.CreatedAt,
	}, nil
}

func (m jobModel) toDomain() (job.Job, error) {
	skills, err := decodeStrings(m.Skills)
	if err != nil {
		return job.Job{}, err
	}
	return job.Job{
		ID:         m.ID,
		Title:      m.Title,
		Company:    m.Company,
		Location:   m.Location,
		Skills:     skills,
		MinScore:   m.MinScore,
		EmployerID: m.EmployerID,
		CreatedAt:  m.CreatedAt,
	}, nil
}

func toCandidateModel(c candidate.Candidate) (candidateModel, error) {
	skills, err := encodeJSON(nonNil(c.Skills))
	if err != nil {
		return candidateModel{}, err
	}
	return candidateModel{
		ID:     c.ID,
		Name:   c.Name,
		Email:  c.Email,
		Role:   string(c.Role),
		Skills: skills,
		Score:  c.Score,
	}, nil
}

func (m candidateModel) toDomain() (candidate.Candidate, error) {
	skills, err := decodeStrings(m.Skills)
	if err != nil {
		return candidate.Candidate{}, err
	}
	return candidate.Candidate{
		ID:     m.ID,
		Name:   m.Name,
		Email:  m.Email,
		Role:   user.Role(m.Role),
		Skills: skills,
		Score:  m.Score,
	}, nil
}

func toApplicationModel(a application.Application) applicationModel {
	return applicationModel{
		ID:          a.ID,
		JobID:       a.JobID,
		CandidateID: a.CandidateID,
		Status:      string(a.Status),
		AppliedAt:   a.AppliedAt,
		ChangedAt:   a.UpdatedAt,
	}
}

func (m applicationModel) toDomain() application.Application {
	return application.Application{
		ID:          m.ID,
		JobID:       m.JobID,
		CandidateID: m.CandidateID,
		Status:      application.Status(m.Status),
		AppliedAt:   m.AppliedAt,
		UpdatedAt:   m.ChangedAt,
	}
}

func toDefinitionModel(d assessment.Definition) (definitionModel, error) {
	qs := make([]questionRecord, 0, len(d.Questions))
	for _, q := range d.Questions {
		qs = append(qs, questionRecord{
			ID:                 q.ID,
			Type:               q.Type,
			Text:               q.Text,
			Options:            q.Options,
			CorrectOptionIndex: q.CorrectOptionIndex,
		})
	}
	raw, err := encodeJSON(qs)
	if err != nil {
		return definitionModel{}, err
	}
	return definitionModel{
		ID:              d.ID,
		Title:           d.Title,
		Description:     d.Description,
		DurationMinutes: d.DurationMinutes,
		Questions:       raw,
	}, nil
}

func (m definitionModel) toDomain() (assessment.Definition, error) {
	var qs []questionRecord
	if len(m.Questions) > 0 {
		if err := json.Unmarshal(m.Questions, &qs); err != nil {
			return assessment.Definition{}, err
		}
	}
	d := assessment.Definition{
		ID:              m.ID,
		Title:           m.Title,
		Description:     m.Description,
		DurationMinutes: m.DurationMinutes,
		Questions:       make([]assessment.Question, 0, len(qs)),
	}
	for _, q := range qs {
		d.Questions = append(d.Questions, assessment.Question{
			ID:                 q.ID,
			Type:               q.Type,
			Text:               q.Text,
			Options:            q.Options,
			CorrectOptionIndex: q.CorrectOptionIndex,
		})
	}
	return d, nil
}

func toSubmissionModel(s assessment.Submission) (submissionModel, error) {
	bd := make([]breakdownRecord, 0, len(s.Breakdown))
	for _, b := range s.Breakdown {
		bd = append(bd, breakdownRecord{
			QuestionID:         b.QuestionID,
			SelectedIndex:      b.SelectedIndex,
			Correct:            b.Correct,
			CorrectOptionIndex: b.CorrectOptionIndex,
		})
	}
	raw, err := encodeJSON(bd)
	if err != nil {
		return submissionModel{}, err
	}
	return submissionModel{
		ID:             s.ID,
		CandidateID:    s.CandidateID,
		AssessmentID:   s.AssessmentID,
		AnswersCount:   s.AnswersCount,
		CorrectCount:   s.CorrectCount,
		TotalQuestions: s.TotalQuestions,
		Score:          s.Score,
		SubmittedAt:    s.SubmittedAt,
		Breakdown:      raw,
	}, nil
}

func (m submissionModel) toDomain() (assessment.Submission, error) {
	var bd []breakdownRecord
	if len(m.Breakdown) > 0 {
		if err := json.Unmarshal(m.Breakdown, &bd); err != nil {
			return assessment.Submission{}, err
		}
	}
	s := assessment.Submission{
		ID:             m.ID,
		CandidateID:    m.CandidateID,
		AssessmentID:   m.AssessmentID,
		AnswersCount:   m.AnswersCount,
		CorrectCount:   m.CorrectCount,
		TotalQuestions: m.TotalQuestions,
		Score:          m.Score,
		SubmittedAt:    m.SubmittedAt,
		Breakdown:      make([]assessment.BreakdownEntry, 0, len(bd)),
	}
	for _, b := range bd {
		s.Breakdown = append(s.Breakdown, assessment.BreakdownEntry{
			QuestionID:         b.QuestionID,
			SelectedIndex:      b.SelectedIndex,
			Correct:            b.Correct,
			CorrectOptionIndex: b.CorrectOptionIndex,
		})
	}
	return s, nil
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
