package events

import (
	"context"
	"time"
)

// Event is a change notification emitted after an admin write commits.
// The type doubles as the NATS subject suffix.
type Event interface {
	EventType() string
	Payload() map[string]interface{}
	Timestamp() time.Time
}

// Publisher sends events to whatever bus is configured. A nil Publisher means no bus.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// BaseEvent is the only Event implementation; content events are built by ContentChanged.
type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}
