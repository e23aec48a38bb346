package matching

import (
	"sort"
	"strings"

	"jobmatch/internal/domain/candidate"
	"jobmatch/internal/domain/job"
)

// DefaultScore stands in for a proficiency score the caller did not supply.
const DefaultScore = 60

type Ranked[T any] struct {
	Item   T
	Weight int
}

// NormalizeSkills lowercases and trims skills, dropping empty entries.
func NormalizeSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		out = append(out, s)
	}
	return out
}

// Weight is 1 for meeting the score threshold plus 1 for skill overlap. An
// empty filter counts as overlap.
func Weight(score, threshold int, filter, skills []string) int {
	w := 0
	if score >= threshold {
		w++
	}
	if overlaps(filter, skills) {
		w++
	}
	return w
}

func overlaps(filter, skills []string) bool {
	want := NormalizeSkills(filter)
	if len(want) == 0 {
		return true
	}
	set := make(map[string]struct{}, len(want))
	for _, s := range want {
		set[s] = struct{}{}
	}
	for _, s := range skills {
		if _, ok := set[strings.ToLower(strings.TrimSpace(s))]; ok {
			return true
		}
	}
	return false
}

// Rank weighs every item and orders the pool by weight, highest first.
// Items of equal weight keep their pool order.
func Rank[T any](pool []T, weigh func(T) int) []Ranked[T] {
	out := make([]Ranked[T], 0, len(pool))
	for _, it := range pool {
		out = append(out, Ranked[T]{Item: it, Weight: weigh(it)})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Weight > out[j].Weight
	})
	return out
}

// AtLeast drops ranked items below minWeight, keeping order.
func AtLeast[T any](ranked []Ranked[T], minWeight int) []Ranked[T] {
	if minWeight <= 0 {
		return ranked
	}
	out := make([]Ranked[T], 0, len(ranked))
	for _, r := range ranked {
		if r.Weight >= minWeight {
			out = append(out, r)
		}
	}
	return out
}

type Profile struct {
	Score  int
	Skills []string
}

// JobsFor ranks jobs for a candidate profile against each job's minScore.
func JobsFor(p Profile, jobs []job.Job) []Ranked[job.Job] {
	return Rank(jobs, func(j job.Job) int {
		return Weight(p.Score, j.MinScore, p.Skills, j.Skills)
	})
}

type Requirement struct {
	MinScore int
	Skills   []string
}

// CandidatesFor ranks candidates against a single requirement.
func CandidatesFor(r Requirement, cands []candidate.Candidate) []Ranked[candidate.Candidate] {
	return Rank(cands, func(c candidate.Candidate) int {
		return Weight(c.Score, r.MinScore, r.Skills, c.Skills)
	})
}
