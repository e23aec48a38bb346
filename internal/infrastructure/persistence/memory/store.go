package memory

import (
	"jobmatch/internal/domain/application"
	"jobmatch/internal/domain/assessment"
	"jobmatch/internal/domain/candidate"
	"jobmatch/internal/domain/job"
	"jobmatch/internal/domain/user"
	"jobmatch/internal/repository"
)

// Store keeps every collection in process memory. Each collection has its
// own lock so a write never interleaves with another write to it.
type Store struct {
	users        *UserRepository
	tokens       *TokenRepository
	jobs         *JobRepository
	candidates   *CandidateRepository
	applications *ApplicationRepository
	assessments  *AssessmentRepository
}

var _ repository.Store = (*Store)(nil)

func New() *Store {
	return &Store{
		users:        NewUserRepository(),
		tokens:       NewTokenRepository(),
		jobs:         NewJobRepository(),
		candidates:   NewCandidateRepository(),
		applications: NewApplicationRepository(),
		assessments:  NewAssessmentRepository(),
	}
}

func (s *Store) Users() user.Repository               { return s.users }
func (s *Store) Tokens() user.TokenRepository         { return s.tokens }
func (s *Store) Jobs() job.Repository                 { return s.jobs }
func (s *Store) Candidates() candidate.Repository     { return s.candidates }
func (s *Store) Applications() application.Repository { return s.applications }
func (s *Store) Assessments() assessment.Repository   { return s.assessments }

func (s *Store) Close() error { return nil }

func cloneStrings(in []string) []string {
	if in == nil {
		return nil
	}
	return append([]string(nil), in...)
}
