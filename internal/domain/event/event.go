package event

import "time"

const (
	TypeJobCreated               = "job.created"
	TypeJobUpdated               = "job.updated"
	TypeJobDeleted               = "job.deleted"
	TypeApplicationCreated       = "application.created"
	TypeApplicationStatusChanged = "application.status_changed"
	TypeAssessmentSubmitted      = "assessment.submitted"
)

// Event is a notification about a state change, fanned out to subscribers.
type Event struct {
	Type       string
	EntityID   string
	Attributes map[string]string
	OccurredAt time.Time
}
