package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boardFrom(marks map[int]Mark) Board {
	var b Board
	for idx, m := range marks {
		b[idx] = m
	}
	return b
}

func TestWinner_EmptyBoard(t *testing.T) {
	_, _, ok := Winner(Board{})
	assert.False(t, ok, "Empty board should have no winner")
}

func TestWinner_AllLines(t *testing.T) {
	tests := []struct {
		name string
		line Line
	}{
		{"top row", Line{0, 1, 2}},
		{"middle row", Line{3, 4, 5}},
		{"bottom row", Line{6, 7, 8}},
		{"left column", Line{0, 3, 6}},
		{"middle column", Line{1, 4, 7}},
		{"right column", Line{2, 5, 8}},
		{"main diagonal", Line{0, 4, 8}},
		{"anti diagonal", Line{2, 4, 6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, mark := range []Mark{X, O} {
				b := boardFrom(map[int]Mark{tt.line[0]: mark, tt.line[1]: mark, tt.line[2]: mark})

				line, winner, ok := Winner(b)
				require.True(t, ok, "Line %v should be detected", tt.line)
				assert.Equal(t, tt.line, line)
				assert.Equal(t, mark, winner)
			}
		})
	}
}

func TestWinner_MixedLineIsNotAWin(t *testing.T) {
	b := boardFrom(map[int]Mark{0: X, 1: X, 2: O})
	_, _, ok := Winner(b)
	assert.False(t, ok)
}

func TestWinner_FullBoardDraw(t *testing.T) {
	// X O X / X O O / O X X - no uniform triple
	b := Board{X, O, X, X, O, O, O, X, X}
	require.True(t, b.IsFull())

	_, _, ok := Winner(b)
	assert.False(t, ok, "Drawn board should have no winner")
}

func TestWinner_RowReportedBeforeColumn(t *testing.T) {
	// Top row and left column both complete; rows are scanned first.
	b := boardFrom(map[int]Mark{0: X, 1: X, 2: X, 3: X, 6: X})

	line, winner, ok := Winner(b)
	require.True(t, ok)
	assert.Equal(t, Line{0, 1, 2}, line)
	assert.Equal(t, X, winner)
}
