package events

import "time"

// Event is the base interface for all game events.
type Event interface {
	// Type returns the event type as a string for filtering and logging
	Type() string
	// Timestamp returns when the event occurred
	Timestamp() time.Time
	// GameID returns the ID of the game session this event belongs to
	GameID() string
}

// BaseEvent provides the common fields for all events.
type BaseEvent struct {
	EventType string    `json:"type"`
	Time      time.Time `json:"timestamp"`
	Game      string    `json:"game_id"`
}

func (e BaseEvent) Type() string         { return e.EventType }
func (e BaseEvent) Timestamp() time.Time { return e.Time }
func (e BaseEvent) GameID() string       { return e.Game }

// EventHandler is a function that processes events.
type EventHandler func(Event)

// Subscriber represents an entity that can receive events.
type Subscriber interface {
	// ID returns a unique identifier for this subscriber
	ID() string
	// HandleEvent processes an event
	HandleEvent(Event)
	// InterestedIn returns true if the subscriber wants this event type
	InterestedIn(eventType string) bool
}

// Publisher is the side of the bus the game controller talks to.
type Publisher interface {
	Publish(Event)
}
