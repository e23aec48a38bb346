package repository

import (
	"jobmatch/internal/domain/application"
	"jobmatch/internal/domain/assessment"
	"jobmatch/internal/domain/candidate"
	"jobmatch/internal/domain/job"
	"jobmatch/internal/domain/user"
)

// Store owns every collection for the lifetime of the process. Each
// repository is safe for concurrent use.
type Store interface {
	Users() user.Repository
	Tokens() user.TokenRepository
	Jobs() job.Repository
	Candidates() candidate.Repository
	Applications() application.Repository
	Assessments() assessment.Repository

	Close() error
}
