package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"jobmatch/internal/domain/candidate"
	"jobmatch/internal/domain/job"
	"jobmatch/internal/domain/matching"
)

const (
	DefaultJobMatchMinWeight       = 1
	DefaultCandidateMatchMinWeight = 0

	maxMatchWeight = 2
)

type JobMatchParams struct {
	CandidateID string
	Score       *int
	Skills      []string
	MinWeight   *int
}

type JobMatchResult struct {
	CandidateID string
	Score       int
	Skills      []string
	Matches     []matching.Ranked[job.Job]
}

type CandidateMatchParams struct {
	JobID     string
	MinScore  *int
	Skills    []string
	MinWeight *int
}

type CandidateMatchResult struct {
	JobID    string
	MinScore int
	Skills   []string
	Matches  []matching.Ranked[candidate.Candidate]
}

type MatchingUsecase interface {
	MatchJobs(ctx context.Context, params JobMatchParams) (JobMatchResult, error)
	MatchCandidates(ctx context.Context, params CandidateMatchParams) (CandidateMatchResult, error)
}

type Matching struct {
	jobs       job.Repository
	candidates candidate.Repository
	cache      MatchCache
	namespace  string
	ttl        time.Duration
	logger     *log.Logger
}

func NewMatchingUsecase(jobs job.Repository, candidates candidate.Repository, cache MatchCache, namespace string, ttl time.Duration, logger *log.Logger) *Matching {
	if logger == nil {
		logger = log.Default()
	}
	return &Matching{
		jobs:       jobs,
		candidates: candidates,
		cache:      cache,
		namespace:  namespace,
		ttl:        ttl,
		logger:     logger,
	}
}

func (u *Matching) MatchJobs(ctx context.Context, params JobMatchParams) (JobMatchResult, error) {
	candidateID := strings.TrimSpace(params.CandidateID)
	if candidateID == "" {
		return JobMatchResult{}, invalid("candidateId is required")
	}
	minWeight, err := resolveMinWeight(params.MinWeight, DefaultJobMatchMinWeight)
	if err != nil {
		return JobMatchResult{}, err
	}
	score := matching.DefaultScore
	if params.Score != nil {
		score = *params.Score
	}

	key := JobMatchCacheKey(u.namespace, params, score, minWeight)
	var cached JobMatchResult
	if u.readCache(ctx, key, &cached) {
		return cached, nil
	}

	jobs, err := u.jobs.List(ctx, job.Filter{})
	if err != nil {
		return JobMatchResult{}, ErrInternal
	}

	skills := matching.NormalizeSkills(params.Skills)
	ranked := matching.JobsFor(matching.Profile{Score: score, Skills: skills}, jobs)

	res := JobMatchResult{
		CandidateID: candidateID,
		Score:       score,
		Skills:      skills,
		Matches:     matching.AtLeast(ranked, minWeight),
	}
	u.writeCache(ctx, key, res)
	return res, nil
}

// MatchCandidates ranks every candidate against the requested threshold.
// The job id is echoed back and not looked up.
func (u *Matching) MatchCandidates(ctx context.Context, params CandidateMatchParams) (CandidateMatchResult, error) {
	minWeight, err := resolveMinWeight(params.MinWeight, DefaultCandidateMatchMinWeight)
	if err != nil {
		return CandidateMatchResult{}, err
	}
	minScore := matching.DefaultScore
	if params.MinScore != nil {
		minScore = *params.MinScore
	}

	key := CandidateMatchCacheKey(u.namespace, params, minScore, minWeight)
	var cached CandidateMatchResult
	if u.readCache(ctx, key, &cached) {
		return cached, nil
	}

	cands, err := u.candidates.List(ctx, candidate.Filter{})
	if err != nil {
		return CandidateMatchResult{}, ErrInternal
	}

	skills := matching.NormalizeSkills(params.Skills)
	ranked := matching.CandidatesFor(matching.Requirement{MinScore: minScore, Skills: skills}, cands)

	res := CandidateMatchResult{
		JobID:    params.JobID,
		MinScore: minScore,
		Skills:   skills,
		Matches:  matching.AtLeast(ranked, minWeight),
	}
	u.writeCache(ctx, key, res)
	return res, nil
}

func resolveMinWeight(v *int, def int) (int, error) {
	if v == nil {
		return def, nil
	}
	if *v < 0 || *v > maxMatchWeight {
		return 0, invalid("minWeight must be between 0 and 2")
	}
	return *v, nil
}

func (u *Matching) readCache(ctx context.Context, key string, out any) bool {
	if u.cache == nil {
		return false
	}
	hit, err := u.cache.GetJSON(ctx, key, out)
	if err != nil {
		u.logger.Printf("[Cache] get failed key=%s err=%v", key, err)
		return false
	}
	return hit
}

func (u *Matching) writeCache(ctx context.Context, key string, value any) {
	if u.cache == nil {
		return
	}
	if err := u.cache.SetJSON(ctx, key, value, u.ttl); err != nil {
		u.logger.Printf("[Cache] set failed key=%s err=%v", key, err)
	}
}
