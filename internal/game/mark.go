package game

// Mark is the symbol a player places in a cell.
// The zero value is Empty.
type Mark int

const (
	Empty Mark = iota
	X
	O
)

func (m Mark) String() string {
	switch m {
	case X:
		return "X"
	case O:
		return "O"
	default:
		return ""
	}
}

// Other returns the opposing mark. Empty is its own opponent.
func (m Mark) Other() Mark {
	switch m {
	case X:
		return O
	case O:
		return X
	default:
		return Empty
	}
}
