package game

// Line is an ordered triple of cell indices forming a completed row,
// column or diagonal.
type Line [3]int

// lines are scanned rows top-to-bottom, then columns left-to-right, then
// the two diagonals. The first uniform non-empty triple wins; in a legal
// game at most one triple can be complete, so the order only affects
// which triple gets highlighted.
var lines = [8]Line{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Winner scans the board for a completed line. ok reports whether one
// exists; when it does, line holds the triple and mark the symbol that
// filled it.
func Winner(b Board) (line Line, mark Mark, ok bool) {
	for _, l := range lines {
		a := b[l[0]]
		if a != Empty && a == b[l[1]] && a == b[l[2]] {
			return l, a, true
		}
	}
	return Line{}, Empty, false
}
