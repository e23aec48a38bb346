package ws

import (
	"encoding/json"
	"log"
	"time"

	"jobmatch/internal/domain/event"
)

type eventMessage struct {
	Type       string            `json:"type"`
	EntityID   string            `json:"entityId"`
	Attributes map[string]string `json:"attributes,omitempty"`
	OccurredAt string            `json:"occurredAt"`
}

// Publisher turns domain events into JSON frames on the hub.
type Publisher struct {
	hub    *Hub
	logger *log.Logger
}

func NewPublisher(hub *Hub, logger *log.Logger) *Publisher {
	if logger == nil {
		logger = log.Default()
	}
	return &Publisher{hub: hub, logger: logger}
}

func (p *Publisher) Publish(ev event.Event) {
	if p == nil || p.hub == nil {
		return
	}

	b, err := json.Marshal(eventMessage{
		Type:       ev.Type,
		EntityID:   ev.EntityID,
		Attributes: ev.Attributes,
		OccurredAt: ev.OccurredAt.UTC().Format(time.RFC3339),
	})
	if err != nil {
		p.logger.Printf("[WS] encode event failed type=%s err=%v", ev.Type, err)
		return
	}
	p.hub.Broadcast(b)
}
