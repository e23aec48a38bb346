package usecase

import (
	"time"

	"jobmatch/internal/domain/event"
)

// EventPublisher fans domain events out to subscribers. Publish must not
// block the caller.
type EventPublisher interface {
	Publish(ev event.Event)
}

type noopPublisher struct{}

func (noopPublisher) Publish(event.Event) {}

func publisherOrNoop(p EventPublisher) EventPublisher {
	if p == nil {
		return noopPublisher{}
	}
	return p
}

func newEvent(typ, entityID string, at time.Time, attrs map[string]string) event.Event {
	return event.Event{
		Type:       typ,
		EntityID:   entityID,
		Attributes: attrs,
		OccurredAt: at.UTC(),
	}
}
