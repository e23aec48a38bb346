package application

import (
	"errors"
	"time"
)

type Status string

const (
	StatusApplied     Status = "applied"
	StatusShortlisted Status = "shortlisted"
	StatusRejected    Status = "rejected"
	StatusHired       Status = "hired"
)

var ErrBackwardTransition = errors.New("application status cannot move backwards")

func (s Status) Valid() bool {
	return s.rank() > 0
}

func (s Status) rank() int {
	switch s {
	case StatusApplied:
		return 1
	case StatusShortlisted:
		return 2
	case StatusRejected, StatusHired:
		return 3
	default:
		return 0
	}
}

// CanTransition reports whether an application in status s may be set to
// next. Re-applying the current status is allowed; rejected and hired are
// terminal.
func (s Status) CanTransition(next Status) bool {
	if !next.Valid() {
		return false
	}
	if s == next {
		return true
	}
	return next.rank() > s.rank()
}

type Application struct {
	ID          string
	JobID       string
	CandidateID string
	Status      Status
	AppliedAt   time.Time
	UpdatedAt   *time.Time
}

// Transition moves the application to next at the given time.
func (a *Application) Transition(next Status, at time.Time) error {
	if !a.Status.CanTransition(next) {
		return ErrBackwardTransition
	}
	a.Status = next
	t := at.UTC()
	a.UpdatedAt = &t
	return nil
}
