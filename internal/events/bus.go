// Package events is the boundary to the notification collaborators. The
// core publishes named events with small payloads; subscribers (SMS, email,
// browser push) deliver them out of band. Delivery outcome is not the
// core's concern.
package events

import (
	"sync"

	"go.uber.org/zap"
)

// Event names published by the core.
const (
	EventPlanGenerated     = "plan.generated"
	EventProgressMilestone = "progress.milestone"
	EventPlanCompleted     = "plan.completed"
)

// Event is a named event with a small payload.
type Event struct {
	Name    string         `json:"name"`
	UserID  string         `json:"user_id"`
	Payload map[string]any `json:"payload,omitempty"`
}

// Subscriber receives published events. Implementations must not block the
// publisher for long; slow delivery belongs in the subscriber.
type Subscriber func(Event)

// Bus is a minimal in-process publish/subscribe hub.
type Bus struct {
	mu          sync.RWMutex
	subscribers []Subscriber
	logger      *zap.Logger
}

// NewBus creates a new event bus.
func NewBus(logger *zap.Logger) *Bus {
	return &Bus{logger: logger}
}

// Subscribe registers a subscriber for all events.
func (b *Bus) Subscribe(s Subscriber) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subscribers = append(b.subscribers, s)
}

// Publish delivers an event to every subscriber. Safe to call from anywhere;
// a bus with no subscribers drops events silently.
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	subs := make([]Subscriber, len(b.subscribers))
	copy(subs, b.subscribers)
	b.mu.RUnlock()

	b.logger.Info("publishing event",
		zap.String("event", event.Name),
		zap.String("user_id", event.UserID),
	)

	for _, s := range subs {
		s(event)
	}
}
