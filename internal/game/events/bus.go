package events

import (
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// EventBus is a synchronous in-process event bus. Handlers run to
// completion inside Publish, in the caller's goroutine; the UI loop is
// single-threaded, so ordering follows publish order exactly.
type EventBus struct {
	subscribers  map[string]Subscriber
	funcHandlers map[string][]EventHandler
	mu           sync.RWMutex
	logger       zerolog.Logger
}

// NewEventBus creates a new event bus instance
func NewEventBus() *EventBus {
	return &EventBus{
		subscribers:  make(map[string]Subscriber),
		funcHandlers: make(map[string][]EventHandler),
		logger:       log.With().Str("component", "event_bus").Logger(),
	}
}

// Subscribe adds a new subscriber to the event bus
func (eb *EventBus) Subscribe(subscriber Subscriber) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	eb.subscribers[subscriber.ID()] = subscriber
	eb.logger.Debug().
		Str("subscriber_id", subscriber.ID()).
		Msg("Subscriber added to event bus")
}

// Unsubscribe removes a subscriber from the event bus
func (eb *EventBus) Unsubscribe(subscriberID string) {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	delete(eb.subscribers, subscriberID)
	eb.logger.Debug().
		Str("subscriber_id", subscriberID).
		Msg("Subscriber removed from event bus")
}

// SubscribeFunc adds a function handler for a specific event type and
// returns an identifier for it.
func (eb *EventBus) SubscribeFunc(eventType string, handler EventHandler) string {
	eb.mu.Lock()
	defer eb.mu.Unlock()

	eb.funcHandlers[eventType] = append(eb.funcHandlers[eventType], handler)

	handlerID := fmt.Sprintf("%s_func_%d", eventType, len(eb.funcHandlers[eventType]))
	eb.logger.Debug().
		Str("event_type", eventType).
		Str("handler_id", handlerID).
		Msg("Function handler added to event bus")

	return handlerID
}

// Publish sends an event to all interested subscribers synchronously.
// A panicking subscriber is logged and skipped so it cannot take the
// other subscribers down with it.
func (eb *EventBus) Publish(event Event) {
	eb.mu.RLock()
	defer eb.mu.RUnlock()

	eventType := event.Type()

	eb.logger.Debug().
		Str("event_type", eventType).
		Str("game_id", event.GameID()).
		Msg("Publishing event")

	for id, subscriber := range eb.subscribers {
		if !subscriber.InterestedIn(eventType) {
			continue
		}
		func() {
			defer func() {
				if r := recover(); r != nil {
					eb.logger.Error().
						Str("subscriber_id", id).
						Str("event_type", eventType).
						Interface("panic", r).
						Msg("Subscriber panicked while handling event")
				}
			}()
			subscriber.HandleEvent(event)
		}()
	}

	for i, handler := range eb.funcHandlers[eventType] {
		func() {
			defer func() {
				if r := recover(); r != nil {
					eb.logger.Error().
						Str("event_type", eventType).
						Int("handler_index", i).
						Interface("panic", r).
						Msg("Function handler panicked while handling event")
				}
			}()
			handler(event)
		}()
	}
}

// SubscriberCount returns the number of registered subscribers.
func (eb *EventBus) SubscriberCount() int {
	eb.mu.RLock()
	defer eb.mu.RUnlock()
	return len(eb.subscribers)
}
