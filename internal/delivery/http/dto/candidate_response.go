package dto

import "jobmatch/internal/domain/candidate"

type CandidateResponse struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Email  string   `json:"email"`
	Role   string   `json:"role"`
	Skills []string `json:"skills"`
	Score  int      `json:"score"`
}

func FromCandidate(c candidate.Candidate) CandidateResponse {
	skills := c.Skills
	if skills == nil {
		skills = []string{}
	}
	return CandidateResponse{
		ID:     c.ID,
		Name:   c.Name,
		Email:  c.Email,
		Role:   string(c.Role),
		Skills: skills,
		Score:  c.Score,
	}
}

func FromCandidates(list []candidate.Candidate) []CandidateResponse {
	out := make([]CandidateResponse, 0, len(list))
	for _, c := range list {
		out = append(out, FromCandidate(c))
	}
	return out
}
