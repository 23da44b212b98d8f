package events

import "time"

// Event type constants
const (
	TypeGameStarted   = "game.started"
	TypeMovePlayed    = "move.played"
	TypeMoveRejected  = "move.rejected"
	TypeHistoryJumped = "history.jumped"
	TypeGameWon       = "game.won"
	TypeGameDrawn     = "game.drawn"
)

// GameStartedEvent is published when a new game session begins.
type GameStartedEvent struct {
	BaseEvent
}

// NewGameStartedEvent creates a new GameStartedEvent
func NewGameStartedEvent(gameID string) *GameStartedEvent {
	return &GameStartedEvent{
		BaseEvent: BaseEvent{
			EventType: TypeGameStarted,
			Time:      time.Now(),
			Game:      gameID,
		},
	}
}

// MovePlayedEvent is published when a mark is placed on the board.
// Move is the history index of the resulting snapshot.
type MovePlayedEvent struct {
	BaseEvent
	Cell int
	Mark string
	Move int
}

// NewMovePlayedEvent creates a new MovePlayedEvent
func NewMovePlayedEvent(gameID string, cell int, mark string, move int) *MovePlayedEvent {
	return &MovePlayedEvent{
		BaseEvent: BaseEvent{
			EventType: TypeMovePlayed,
			Time:      time.Now(),
			Game:      gameID,
		},
		Cell: cell,
		Mark: mark,
		Move: move,
	}
}

// MoveRejectedEvent is published when a click is ignored: occupied cell,
// decided board, or an index off the grid.
type MoveRejectedEvent struct {
	BaseEvent
	Cell   int
	Reason string
}

// NewMoveRejectedEvent creates a new MoveRejectedEvent
func NewMoveRejectedEvent(gameID string, cell int, reason string) *MoveRejectedEvent {
	return &MoveRejectedEvent{
		BaseEvent: BaseEvent{
			EventType: TypeMoveRejected,
			Time:      time.Now(),
			Game:      gameID,
		},
		Cell:   cell,
		Reason: reason,
	}
}

// HistoryJumpedEvent is published when the view moves to another snapshot.
type HistoryJumpedEvent struct {
	BaseEvent
	From int
	To   int
}

// NewHistoryJumpedEvent creates a new HistoryJumpedEvent
func NewHistoryJumpedEvent(gameID string, from, to int) *HistoryJumpedEvent {
	return &HistoryJumpedEvent{
		BaseEvent: BaseEvent{
			EventType: TypeHistoryJumped,
			Time:      time.Now(),
			Game:      gameID,
		},
		From: from,
		To:   to,
	}
}

// GameWonEvent is published when a move completes a line.
type GameWonEvent struct {
	BaseEvent
	Winner string
	Line   [3]int
	Move   int
}

// NewGameWonEvent creates a new GameWonEvent
func NewGameWonEvent(gameID, winner string, line [3]int, move int) *GameWonEvent {
	return &GameWonEvent{
		BaseEvent: BaseEvent{
			EventType: TypeGameWon,
			Time:      time.Now(),
			Game:      gameID,
		},
		Winner: winner,
		Line:   line,
		Move:   move,
	}
}

// GameDrawnEvent is published when the last cell fills without a line.
type GameDrawnEvent struct {
	BaseEvent
	Move int
}

// NewGameDrawnEvent creates a new GameDrawnEvent
func NewGameDrawnEvent(gameID string, move int) *GameDrawnEvent {
	return &GameDrawnEvent{
		BaseEvent: BaseEvent{
			EventType: TypeGameDrawn,
			Time:      time.Now(),
			Game:      gameID,
		},
		Move: move,
	}
}
