// Package seed loads the demo data set into a store at startup.
package seed

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"os"
	"time"

	"jobmatch/internal/domain/assessment"
	"jobmatch/internal/domain/candidate"
	"jobmatch/internal/domain/job"
	"jobmatch/internal/domain/user"
	"jobmatch/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultData []byte

type Data struct {
	Users       []UserRecord       `yaml:"users"`
	Jobs        []JobRecord        `yaml:"jobs"`
	Candidates  []CandidateRecord  `yaml:"candidates"`
	Assessments []AssessmentRecord `yaml:"assessments"`
}

type UserRecord struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
	Role  string `yaml:"role"`

	// Password is stored as a bcrypt hash. Users without one log in with any
	// password, except admins, who cannot log in at all.
	Password string `yaml:"password"`
}

type JobRecord struct {
	ID         string   `yaml:"id"`
	Title      string   `yaml:"title"`
	Company    string   `yaml:"company"`
	Location   string   `yaml:"location"`
	Skills     []string `yaml:"skills"`
	MinScore   *int     `yaml:"minScore"`
	EmployerID string   `yaml:"employerId"`
}

type CandidateRecord struct {
	ID     string   `yaml:"id"`
	Name   string   `yaml:"name"`
	Email  string   `yaml:"email"`
	Skills []string `yaml:"skills"`
	Score  int      `yaml:"score"`
}

type AssessmentRecord struct {
	ID              string           `yaml:"id"`
	Title           string           `yaml:"title"`
	Description     string           `yaml:"description"`
	DurationMinutes int              `yaml:"durationMinutes"`
	Questions       []QuestionRecord `yaml:"questions"`
}

type QuestionRecord struct {
	ID                 string   `yaml:"id"`
	Type               string   `yaml:"type"`
	Question           string   `yaml:"question"`
	Options            []string `yaml:"options"`
	CorrectOptionIndex int      `yaml:"correctOptionIndex"`
}

// Load reads seed data from path, or the embedded default set when path is
// empty.
func Load(path string) (Data, error) {
	raw := defaultData
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Data{}, fmt.Errorf("read seed file: %w", err)
		}
		raw = b
	}
	return Parse(raw)
}

func Parse(raw []byte) (Data, error) {
	var d Data
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil {
		return Data{}, fmt.Errorf("decode seed data: %w", err)
	}
	if err := d.validate(); err != nil {
		return Data{}, err
	}
	return d, nil
}

func (d Data) validate() error {
	for _, u := range d.Users {
		if u.ID == "" || u.Email == "" {
			return fmt.Errorf("seed user %q: id and email are required", u.Name)
		}
		if u.Role != "" && !user.Role(u.Role).Valid() {
			return fmt.Errorf("seed user %s: unknown role %q", u.ID, u.Role)
		}
	}
	for _, j := range d.Jobs {
		if j.ID == "" || j.Title == "" {
			return fmt.Errorf("seed job %q: id and title are required", j.ID)
		}
	}
	for _, a := range d.Assessments {
		for _, q := range a.Questions {
			if q.CorrectOptionIndex < 0 || q.CorrectOptionIndex >= len(q.Options) {
				return fmt.Errorf("seed assessment %s question %s: correctOptionIndex out of range", a.ID, q.ID)
			}
		}
	}
	return nil
}

// WithAdminPassword sets password on every admin record that has none.
func (d Data) WithAdminPassword(password string) Data {
	if password == "" {
		return d
	}
	users := make([]UserRecord, len(d.Users))
	copy(users, d.Users)
	for i := range users {
		if user.Role(users[i].Role) == user.RoleAdmin && users[i].Password == "" {
			users[i].Password = password
		}
	}
	d.Users = users
	return d
}

// Apply writes every record into the store.
func Apply(ctx context.Context, store repository.Store, d Data, now time.Time) error {
	now = now.UTC()

	for _, r := range d.Users {
		role := user.Role(r.Role)
		if role == "" {
			role = user.RoleApplicant
		}
		u := user.User{ID: r.ID, Name: r.Name, Email: r.Email, Role: role, CreatedAt: now}
		if r.Password != "" {
			hash, err := bcrypt.GenerateFromPassword([]byte(r.Password), bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("seed user %s: hash password: %w", r.ID, err)
			}
			u.PasswordHash = string(hash)
		}
		if err := store.Users().Create(ctx, u); err != nil {
			return fmt.Errorf("seed user %s: %w", r.ID, err)
		}
	}

	for _, r := range d.Jobs {
		minScore := job.DefaultMinScore
		if r.MinScore != nil {
			minScore = *r.MinScore
		}
		j := job.Job{
			ID:         r.ID,
			Title:      r.Title,
			Company:    r.Company,
			Location:   r.Location,
			Skills:     append([]string{}, r.Skills...),
			MinScore:   minScore,
			EmployerID: r.EmployerID,
			CreatedAt:  now,
		}
		if err := store.Jobs().Create(ctx, j); err != nil {
			return fmt.Errorf("seed job %s: %w", r.ID, err)
		}
	}

	for _, r := range d.Candidates {
		c := candidate.Candidate{
			ID:     r.ID,
			Name:   r.Name,
			Email:  r.Email,
			Role:   user.RoleApplicant,
			Skills: append([]string{}, r.Skills...),
			Score:  r.Score,
		}
		if err := store.Candidates().Create(ctx, c); err != nil {
			return fmt.Errorf("seed candidate %s: %w", r.ID, err)
		}
	}

	for _, r := range d.Assessments {
		def := assessment.Definition{
			ID:              r.ID,
			Title:           r.Title,
			Description:     r.Description,
			DurationMinutes: r.DurationMinutes,
			Questions:       make([]assessment.Question, 0, len(r.Questions)),
		}
		for _, q := range r.Questions {
			def.Questions = append(def.Questions, assessment.Question{
				ID:                 q.ID,
				Type:               q.Type,
				Text:               q.Question,
				Options:            append([]string{}, q.Options...),
				CorrectOptionIndex: q.CorrectOptionIndex,
			})
		}
		if err := store.Assessments().CreateDefinition(ctx, def); err != nil {
			return fmt.Errorf("seed assessment %s: %w", r.ID, err)
		}
	}

	return nil
}
