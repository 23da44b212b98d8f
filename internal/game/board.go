package game

import "strings"

const (
	Rows  = 3
	Cols  = 3
	Cells = Rows * Cols
)

// Board is a snapshot of all nine cells, indexed 0-8 in row-major order
// (index = row*3 + col). Boards are values: WithMark returns a modified
// copy, so a snapshot appended to a history can never change afterwards.
type Board [Cells]Mark

// Idx maps a row/column pair to the linear cell index.
func Idx(row, col int) int { return row*Cols + col }

// RowCol is the inverse of Idx.
func RowCol(idx int) (row, col int) { return idx / Cols, idx % Cols }

// InBounds reports whether idx addresses a cell on the board.
func InBounds(idx int) bool { return idx >= 0 && idx < Cells }

func (b Board) Cell(row, col int) Mark { return b[Idx(row, col)] }

// WithMark returns a copy of the board with one cell set.
func (b Board) WithMark(idx int, m Mark) Board {
	b[idx] = m
	return b
}

// IsFull reports whether no empty cell remains.
func (b Board) IsFull() bool {
	for _, c := range b {
		if c == Empty {
			return false
		}
	}
	return true
}

// String renders the board as three lines, empty cells as dots.
func (b Board) String() string {
	var sb strings.Builder
	for row := 0; row < Rows; row++ {
		for col := 0; col < Cols; col++ {
			if col > 0 {
				sb.WriteByte(' ')
			}
			if c := b.Cell(row, col); c == Empty {
				sb.WriteByte('.')
			} else {
				sb.WriteString(c.String())
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
