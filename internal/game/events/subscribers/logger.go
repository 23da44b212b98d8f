package subscribers

import (
	"github.com/rs/zerolog"

	"github.com/mwhite/tictactoe-ui/internal/game/events"
)

// LoggerSubscriber logs events to structured logs
type LoggerSubscriber struct {
	id              string
	logger          zerolog.Logger
	logLevel        zerolog.Level
	eventTypeFilter map[string]bool // If non-nil, only log these event types
}

// NewLoggerSubscriber creates a new logger subscriber
func NewLoggerSubscriber(id string, logger zerolog.Logger, logLevel zerolog.Level) *LoggerSubscriber {
	return &LoggerSubscriber{
		id:       id,
		logger:   logger.With().Str("subscriber", "event_logger").Logger(),
		logLevel: logLevel,
	}
}

// ID returns the subscriber's unique identifier
func (ls *LoggerSubscriber) ID() string {
	return ls.id
}

// SetEventFilter sets which event types to log (nil means log all)
func (ls *LoggerSubscriber) SetEventFilter(eventTypes []string) {
	if len(eventTypes) == 0 {
		ls.eventTypeFilter = nil
		return
	}

	ls.eventTypeFilter = make(map[string]bool)
	for _, eventType := range eventTypes {
		ls.eventTypeFilter[eventType] = true
	}
}

// InterestedIn returns true if the subscriber wants to receive this event type
func (ls *LoggerSubscriber) InterestedIn(eventType string) bool {
	if ls.eventTypeFilter == nil {
		return true
	}
	return ls.eventTypeFilter[eventType]
}

// HandleEvent processes an event by logging it
func (ls *LoggerSubscriber) HandleEvent(event events.Event) {
	eventLogger := ls.logger.With().
		Str("event_type", event.Type()).
		Str("game_id", event.GameID()).
		Logger()

	logEvent := eventLogger.WithLevel(ls.logLevel)

	switch e := event.(type) {
	case *events.MovePlayedEvent:
		logEvent.
			Int("cell", e.Cell).
			Str("mark", e.Mark).
			Int("move", e.Move)

	case *events.MoveRejectedEvent:
		logEvent.
			Int("cell", e.Cell).
			Str("reason", e.Reason)

	case *events.HistoryJumpedEvent:
		logEvent.
			Int("from", e.From).
			Int("to", e.To)

	case *events.GameWonEvent:
		logEvent.
			Str("winner", e.Winner).
			Ints("line", e.Line[:]).
			Int("move", e.Move)

	case *events.GameDrawnEvent:
		logEvent.Int("move", e.Move)
	}

	logEvent.Msg("Game event")
}
