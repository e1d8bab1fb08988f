package game

// Cell is the occupant of one board square.
type Cell uint8

const (
	Empty Cell = iota
	Black
	White
)

// Playable reports whether the cell value is one of the two disc colors.
func (c Cell) Playable() bool {
	return c == Black || c == White
}

// Opponent returns the other playable color. Empty has no opponent and is
// returned unchanged.
func (c Cell) Opponent() Cell {
	switch c {
	case Black:
		return White
	case White:
		return Black
	default:
		return Empty
	}
}

func (c Cell) String() string {
	switch c {
	case Black:
		return "Black"
	case White:
		return "White"
	default:
		return "Empty"
	}
}

// Square is a board coordinate.
type Square struct {
	Row int
	Col int
}

// Action is a candidate move scored during search. Actions are created per
// evaluation and discarded once a move is selected.
type Action struct {
	Square
	Score int
}

// HistoryAction records one played turn. An empty Notation means the mover
// had no legal move and passed.
type HistoryAction struct {
	Notation string
	Gained   int
	Mover    Cell
	Next     Cell
	Index    int
}

// Pass reports whether this turn was a forced pass.
func (h HistoryAction) Pass() bool {
	return h.Notation == ""
}
