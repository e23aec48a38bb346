package usecase

import "errors"

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrInternal            = errors.New("internal error")
	ErrUserNotFound        = errors.New("User not found")
	ErrEmailTaken          = errors.New("User with this email already exists")
	ErrJobNotFound         = errors.New("Job not found")
	ErrCandidateNotFound   = errors.New("Candidate not found")
	ErrAlreadyApplied      = errors.New("Already applied")
	ErrApplicationNotFound = errors.New("Application not found")
	ErrInvalidStatus       = errors.New("Invalid status")
	ErrStatusConflict      = errors.New("Application status cannot move backwards")
	ErrAssessmentNotFound  = errors.New("Assessment not found")
	ErrUnknownAssessment   = errors.New("Unknown assessmentId")
	ErrScoreOverrideDenied = errors.New("Score override requires an admin token")
	ErrAdminRoleDenied     = errors.New("Creating an admin requires an admin token")
)

// ValidationError is a presence or format failure on caller input. It
// matches ErrInvalidInput under errors.Is.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

func invalid(msg string) error {
	return &ValidationError{Message: msg}
}
