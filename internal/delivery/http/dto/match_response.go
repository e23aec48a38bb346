package dto

import "jobmatch/internal/usecase"

// JobMatch is a job with its weight inlined next to the job fields.
type JobMatch struct {
	JobResponse
	MatchWeight int `json:"matchWeight"`
}

type JobMatchResponse struct {
	CandidateID string     `json:"candidateId"`
	Score       int        `json:"score"`
	Skills      []string   `json:"skills"`
	Matches     []JobMatch `json:"matches"`
}

func FromJobMatchResult(r usecase.JobMatchResult) JobMatchResponse {
	matches := make([]JobMatch, 0, len(r.Matches))
	for _, m := range r.Matches {
		matches = append(matches, JobMatch{JobResponse: FromJob(m.Item), MatchWeight: m.Weight})
	}
	return JobMatchResponse{
		CandidateID: r.CandidateID,
		Score:       r.Score,
		Skills:      nonNilStrings(r.Skills),
		Matches:     matches,
	}
}

type CandidateMatch struct {
	CandidateResponse
	MatchWeight int `json:"matchWeight"`
}

type CandidateMatchResponse struct {
	JobID    string           `json:"jobId"`
	MinScore int              `json:"minScore"`
	Skills   []string         `json:"skills"`
	Matches  []CandidateMatch `json:"matches"`
}

func FromCandidateMatchResult(r usecase.CandidateMatchResult) CandidateMatchResponse {
	matches := make([]CandidateMatch, 0, len(r.Matches))
	for _, m := range r.Matches {
		matches = append(matches, CandidateMatch{CandidateResponse: FromCandidate(m.Item), MatchWeight: m.Weight})
	}
	return CandidateMatchResponse{
		JobID:    r.JobID,
		MinScore: r.MinScore,
		Skills:   nonNilStrings(r.Skills),
		Matches:  matches,
	}
}

func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
