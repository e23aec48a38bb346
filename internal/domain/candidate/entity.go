package candidate

import (
	"strings"

	"jobmatch/internal/domain/user"
)

type Candidate struct {
	ID     string
	Name   string
	Email  string
	Role   user.Role
	Skills []string
	Score  int
}

// Filter narrows the candidate list. Zero values disable a criterion.
type Filter struct {
	Query    string
	MinScore *int
	Skills   []string
}

func (f Filter) Matches(c Candidate) bool {
	if term := strings.ToLower(strings.TrimSpace(f.Query)); term != "" {
		if !strings.Contains(strings.ToLower(c.Name), term) && !strings.Contains(strings.ToLower(c.Email), term) {
			return false
		}
	}
	if f.MinScore != nil && c.Score < *f.MinScore {
		return false
	}
	if len(f.Skills) > 0 && !anySkill(c.Skills, f.Skills) {
		return false
	}
	return true
}

func anySkill(have, want []string) bool {
	set := make(map[string]struct{}, len(want))
	for _, s := range want {
		s = strings.ToLower(strings.TrimSpace(s))
		if s != "" {
			set[s] = struct{}{}
		}
	}
	if len(set) == 0 {
		return true
	}
	for _, s := range have {
		if _, ok := set[strings.ToLower(strings.TrimSpace(s))]; ok {
			return true
		}
	}
	return false
}
