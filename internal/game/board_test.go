package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIdxRowCol_RowMajor(t *testing.T) {
	tests := []struct {
		row, col, idx int
	}{
		{0, 0, 0},
		{0, 2, 2},
		{1, 0, 3},
		{1, 1, 4},
		{2, 0, 6},
		{2, 2, 8},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.idx, Idx(tt.row, tt.col), "Idx(%d,%d)", tt.row, tt.col)

		row, col := RowCol(tt.idx)
		assert.Equal(t, tt.row, row, "RowCol(%d) row", tt.idx)
		assert.Equal(t, tt.col, col, "RowCol(%d) col", tt.idx)
	}
}

func TestBoard_WithMarkCopies(t *testing.T) {
	var b Board

	b2 := b.WithMark(4, X)

	assert.Equal(t, Empty, b[4], "Original board must be unchanged")
	assert.Equal(t, X, b2[4])
	assert.Equal(t, X, b2.Cell(1, 1), "Index 4 is the center cell")
}

func TestBoard_IsFull(t *testing.T) {
	var b Board
	assert.False(t, b.IsFull())

	for i := 0; i < Cells; i++ {
		b = b.WithMark(i, X)
	}
	assert.True(t, b.IsFull())

	b = b.WithMark(8, Empty)
	assert.False(t, b.IsFull())
}

func TestInBounds(t *testing.T) {
	assert.True(t, InBounds(0))
	assert.True(t, InBounds(8))
	assert.False(t, InBounds(-1))
	assert.False(t, InBounds(9))
}

func TestMark_Other(t *testing.T) {
	assert.Equal(t, O, X.Other())
	assert.Equal(t, X, O.Other())
	assert.Equal(t, Empty, Empty.Other())
}

func TestBoard_String(t *testing.T) {
	b := Board{X, Empty, O}
	assert.Equal(t, "X . O\n. . .\n. . .\n", b.String())
}
