package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
)

const (
	matchKindJobs       = "jobs"
	matchKindCandidates = "candidates"
)

type jobMatchCacheKeyInput struct {
	CandidateID string   `json:"candidate_id"`
	Score       int      `json:"score"`
	Skills      []string `json:"skills"`
	MinWeight   int      `json:"min_weight"`
}

type candidateMatchCacheKeyInput struct {
	JobID     string   `json:"job_id"`
	MinScore  int      `json:"min_score"`
	Skills    []string `json:"skills"`
	MinWeight int      `json:"min_weight"`
}

func normalizeMatchValue(s string) string {
	s = strings.TrimSpace(s)
	s = strings.ToLower(s)
	s = strings.Join(strings.Fields(s), " ")
	return s
}

func normalizeMatchSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		s = normalizeMatchValue(s)
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}

// matchKeyPrefix scopes keys to one process so a shared Redis never serves
// listings computed against another instance's state.
func matchKeyPrefix(namespace, kind string) string {
	return "match:" + namespace + ":" + kind + ":"
}

func JobMatchCacheKey(namespace string, p JobMatchParams, score, minWeight int) string {
	in := jobMatchCacheKeyInput{
		CandidateID: strings.TrimSpace(p.CandidateID),
		Score:       score,
		Skills:      normalizeMatchSkills(p.Skills),
		MinWeight:   minWeight,
	}
	return matchKeyPrefix(namespace, matchKindJobs) + hashKeyInput(in)
}

func CandidateMatchCacheKey(namespace string, p CandidateMatchParams, minScore, minWeight int) string {
	in := candidateMatchCacheKeyInput{
		JobID:     strings.TrimSpace(p.JobID),
		MinScore:  minScore,
		Skills:    normalizeMatchSkills(p.Skills),
		MinWeight: minWeight,
	}
	return matchKeyPrefix(namespace, matchKindCandidates) + hashKeyInput(in)
}

func hashKeyInput(v any) string {
	b, _ := json.Marshal(v)
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}
