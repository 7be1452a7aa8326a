package event

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dshills/incsel/internal/engine/region"
	"github.com/dshills/incsel/internal/host"
)

// Topic is a dot-separated event type.
type Topic string

// Topics published by the application.
const (
	TopicViewActivated      Topic = "view.activated"
	TopicViewClosed         Topic = "view.closed"
	TopicSelectionCommitted Topic = "selection.committed"
)

// Matches reports whether the topic matches a subscription pattern.
func (t Topic) Matches(pattern Topic) bool {
	switch {
	case pattern == "*":
		return true
	case strings.HasSuffix(string(pattern), ".*"):
		prefix := strings.TrimSuffix(string(pattern), "*")
		return strings.HasPrefix(string(t), prefix) && len(t) > len(prefix)
	default:
		return t == pattern
	}
}

// Metadata contains standard information attached to every event.
type Metadata struct {
	// ID is a unique identifier for this event instance.
	ID string

	// Timestamp is when the event was created.
	Timestamp time.Time

	// Source identifies the component that published the event.
	Source string
}

// Event is a published message.
type Event struct {
	Topic    Topic
	Payload  any
	Metadata Metadata
}

// NewEvent creates an event with a fresh id.
func NewEvent(topic Topic, payload any, source string) Event {
	return Event{
		Topic:   topic,
		Payload: payload,
		Metadata: Metadata{
			ID:        uuid.NewString(),
			Timestamp: time.Now(),
			Source:    source,
		},
	}
}

// ViewPayload accompanies view lifecycle events.
type ViewPayload struct {
	View host.ViewID
	Name string
}

// SelectionPayload accompanies selection.committed.
type SelectionPayload struct {
	View    host.ViewID
	Present region.Group
}
