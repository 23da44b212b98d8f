package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/mwhite/tictactoe-ui/internal/game"
)

// Headless demo: drives the controller through a full game and a
// history jump, printing each snapshot. Useful for eyeballing the core
// logic without opening a window.
func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger().Level(zerolog.WarnLevel)

	ctrl := game.NewController(logger, nil)

	// X takes the left column: 0, 3, 6. O answers in the middle column.
	moves := []int{0, 1, 3, 4, 6}
	for _, cell := range moves {
		mark := ctrl.Turn()
		if !ctrl.Play(cell) {
			fmt.Printf("move on cell %d rejected\n", cell)
			continue
		}
		fmt.Printf("Move #%d: %s -> cell %d\n%s%s\n\n",
			ctrl.Current(), mark, cell, ctrl.ViewedBoard(), ctrl.Status())
	}

	// A finished game accepts no further moves.
	if !ctrl.Play(8) {
		fmt.Println("cell 8 rejected: game already decided")
	}

	// Time-travel: back to move 2, then play a different continuation.
	// The old moves beyond 2 are discarded.
	ctrl.JumpTo(2)
	fmt.Printf("\nJumped to move #%d:\n%s%s\n\n",
		ctrl.Current(), ctrl.ViewedBoard(), ctrl.Status())

	ctrl.Play(4)
	fmt.Printf("Alternate move #%d (history now %d snapshots):\n%s%s\n",
		ctrl.Current(), ctrl.MoveCount(), ctrl.ViewedBoard(), ctrl.Status())
}
