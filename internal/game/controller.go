package game

import (
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/mwhite/tictactoe-ui/internal/game/events"
)

// Controller owns the move history and the index of the snapshot
// currently on display. History index 0 is the empty starting board;
// index i is the board after move i. X always moves on even indices.
//
// All state changes go through Play and JumpTo. Both run synchronously
// inside the UI callback that triggered them, so there is exactly one
// writer and no locking.
type Controller struct {
	id      string
	history []Board
	current int
	logger  zerolog.Logger
	bus     events.Publisher
}

// NewController creates a controller seeded with one empty board.
// bus may be nil; events are then dropped.
func NewController(logger zerolog.Logger, bus events.Publisher) *Controller {
	id := uuid.NewString()
	c := &Controller{
		id:      id,
		history: []Board{{}},
		logger:  logger.With().Str("component", "controller").Str("game_id", id).Logger(),
		bus:     bus,
	}
	c.publish(events.NewGameStartedEvent(id))
	return c
}

func (c *Controller) publish(e events.Event) {
	if c.bus != nil {
		c.bus.Publish(e)
	}
}

// ID returns the session identifier carried in events.
func (c *Controller) ID() string { return c.id }

// ViewedBoard returns the snapshot CurrentMove points at.
func (c *Controller) ViewedBoard() Board { return c.history[c.current] }

// Current returns the index of the viewed snapshot.
func (c *Controller) Current() int { return c.current }

// MoveCount returns the number of snapshots, the empty start included.
func (c *Controller) MoveCount() int { return len(c.history) }

// Turn returns the mark that moves next from the viewed snapshot.
func (c *Controller) Turn() Mark {
	if c.current%2 == 0 {
		return X
	}
	return O
}

// Play places the current turn's mark at idx and advances the view to
// the new snapshot. Clicks on occupied cells, on a decided or full
// board, or off the grid are silently rejected; the return value
// reports whether the move was applied.
//
// Playing from a past snapshot discards the moves recorded after it:
// the history stays a single linear timeline.
func (c *Controller) Play(idx int) bool {
	if !InBounds(idx) {
		return c.reject(idx, "cell index out of range")
	}

	board := c.ViewedBoard()
	if _, _, won := Winner(board); won {
		return c.reject(idx, "game already decided")
	}
	if board.IsFull() {
		return c.reject(idx, "board full")
	}
	if board[idx] != Empty {
		return c.reject(idx, "cell occupied")
	}

	mark := c.Turn()
	next := board.WithMark(idx, mark)

	c.history = append(c.history[:c.current+1], next)
	c.current = len(c.history) - 1

	c.logger.Info().
		Int("cell", idx).
		Str("mark", mark.String()).
		Int("move", c.current).
		Msg("Move played")
	c.publish(events.NewMovePlayedEvent(c.id, idx, mark.String(), c.current))

	if line, winner, ok := Winner(next); ok {
		c.logger.Info().Str("winner", winner.String()).Msg("Game won")
		c.publish(events.NewGameWonEvent(c.id, winner.String(), line, c.current))
	} else if next.IsFull() {
		c.logger.Info().Msg("Game drawn")
		c.publish(events.NewGameDrawnEvent(c.id, c.current))
	}

	return true
}

func (c *Controller) reject(idx int, reason string) bool {
	c.logger.Debug().Int("cell", idx).Str("reason", reason).Msg("Move rejected")
	c.publish(events.NewMoveRejectedEvent(c.id, idx, reason))
	return false
}

// JumpTo moves the view to an earlier or later snapshot. The history
// itself is never touched. Out-of-range indices are rejected rather
// than clamped, leaving CurrentMove unchanged.
func (c *Controller) JumpTo(move int) bool {
	if move < 0 || move >= len(c.history) {
		c.logger.Debug().Int("move", move).Msg("Jump rejected: index out of range")
		return false
	}

	from := c.current
	c.current = move
	c.logger.Info().Int("from", from).Int("to", move).Msg("Jumped in history")
	c.publish(events.NewHistoryJumpedEvent(c.id, from, move))
	return true
}

// WinningLine returns the completed triple on the viewed board, if any.
func (c *Controller) WinningLine() (Line, bool) {
	line, _, ok := Winner(c.ViewedBoard())
	return line, ok
}

// Status describes the viewed snapshot. It is recomputed from the board
// on every call rather than stored, so it can never drift from the
// state it describes.
func (c *Controller) Status() string {
	board := c.ViewedBoard()
	if _, winner, ok := Winner(board); ok {
		return "Winner: " + winner.String()
	}
	if board.IsFull() {
		return "Draw"
	}
	return "Next player: " + c.Turn().String()
}
