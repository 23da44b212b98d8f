package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEventBus(t *testing.T) {
	bus := NewEventBus()

	// Test function handler
	received := false
	var receivedEvent Event

	bus.SubscribeFunc(TypeGameStarted, func(e Event) {
		received = true
		receivedEvent = e
	})

	event := NewGameStartedEvent("test-game")
	bus.Publish(event)

	assert.True(t, received, "Event handler should have been called")
	assert.NotNil(t, receivedEvent, "Event should have been received")
	assert.Equal(t, TypeGameStarted, receivedEvent.Type())
	assert.Equal(t, "test-game", receivedEvent.GameID())
}

func TestEventBusMultipleSubscribers(t *testing.T) {
	bus := NewEventBus()

	handler1Called := false
	handler2Called := false

	bus.SubscribeFunc(TypeMovePlayed, func(e Event) {
		handler1Called = true
	})

	bus.SubscribeFunc(TypeMovePlayed, func(e Event) {
		handler2Called = true
	})

	bus.Publish(NewMovePlayedEvent("test-game", 4, "X", 1))

	assert.True(t, handler1Called, "Handler 1 should have been called")
	assert.True(t, handler2Called, "Handler 2 should have been called")
}

// TestSubscriber is a test implementation of Subscriber
type TestSubscriber struct {
	id              string
	interestedTypes map[string]bool
	receivedEvents  []Event
}

func (ts *TestSubscriber) ID() string {
	return ts.id
}

func (ts *TestSubscriber) HandleEvent(e Event) {
	ts.receivedEvents = append(ts.receivedEvents, e)
}

func (ts *TestSubscriber) InterestedIn(eventType string) bool {
	if ts.interestedTypes == nil {
		return true
	}
	return ts.interestedTypes[eventType]
}

func TestEventBusSubscriber(t *testing.T) {
	bus := NewEventBus()

	// Subscriber interested only in terminal events
	subscriber := &TestSubscriber{
		id: "test-subscriber",
		interestedTypes: map[string]bool{
			TypeGameWon:   true,
			TypeGameDrawn: true,
		},
		receivedEvents: []Event{},
	}

	bus.Subscribe(subscriber)
	assert.Equal(t, 1, bus.SubscriberCount())

	bus.Publish(NewMovePlayedEvent("test-game", 0, "X", 1))
	bus.Publish(NewGameWonEvent("test-game", "X", [3]int{0, 1, 2}, 5))
	bus.Publish(NewGameDrawnEvent("test-game", 9))

	// Should only receive GameWon and GameDrawn
	assert.Len(t, subscriber.receivedEvents, 2)
	assert.Equal(t, TypeGameWon, subscriber.receivedEvents[0].Type())
	assert.Equal(t, TypeGameDrawn, subscriber.receivedEvents[1].Type())

	// Test unsubscribe
	bus.Unsubscribe(subscriber.ID())
	bus.Publish(NewGameWonEvent("test-game", "O", [3]int{2, 4, 6}, 6))

	assert.Len(t, subscriber.receivedEvents, 2)
}

func TestEventBusPanickingSubscriberIsIsolated(t *testing.T) {
	bus := NewEventBus()

	called := false
	bus.SubscribeFunc(TypeMovePlayed, func(e Event) {
		panic("boom")
	})
	bus.SubscribeFunc(TypeMovePlayed, func(e Event) {
		called = true
	})

	assert.NotPanics(t, func() {
		bus.Publish(NewMovePlayedEvent("test-game", 3, "O", 2))
	})
	assert.True(t, called, "Later handlers still run after a panic")
}

func TestEventFields(t *testing.T) {
	e := NewHistoryJumpedEvent("g", 5, 2)
	assert.Equal(t, TypeHistoryJumped, e.Type())
	assert.Equal(t, "g", e.GameID())
	assert.Equal(t, 5, e.From)
	assert.Equal(t, 2, e.To)
	assert.False(t, e.Timestamp().IsZero())

	r := NewMoveRejectedEvent("g", 4, "cell occupied")
	assert.Equal(t, TypeMoveRejected, r.Type())
	assert.Equal(t, "cell occupied", r.Reason)
}
