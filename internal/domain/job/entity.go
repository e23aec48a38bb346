package job

import (
	"strings"
	"time"
)

const DefaultMinScore = 50

type Job struct {
	ID         string
	Title      string
	Company    string
	Location   string
	Skills     []string
	MinScore   int
	EmployerID string
	CreatedAt  time.Time
}

// Patch carries the fields of a partial update; nil means unchanged.
type Patch struct {
	Title    *string
	Company  *string
	Location *string
	Skills   *[]string
	MinScore *int
}

func (p Patch) Apply(j Job) Job {
	if p.Title != nil && *p.Title != "" {
		j.Title = *p.Title
	}
	if p.Company != nil && *p.Company != "" {
		j.Company = *p.Company
	}
	if p.Location != nil && *p.Location != "" {
		j.Location = *p.Location
	}
	if p.Skills != nil {
		j.Skills = append([]string(nil), (*p.Skills)...)
	}
	if p.MinScore != nil {
		j.MinScore = *p.MinScore
	}
	return j
}

type Filter struct {
	Query string
}

// Matches reports whether the job's title, company or location contains the
// query, case-insensitively. An empty query matches everything.
func (f Filter) Matches(j Job) bool {
	term := strings.ToLower(strings.TrimSpace(f.Query))
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(j.Title), term) ||
		strings.Contains(strings.ToLower(j.Company), term) ||
		strings.Contains(strings.ToLower(j.Location), term)
}
