package game

import "fmt"

// Size is the side length of the board.
const Size = 8

// directions enumerates the eight straight lines radiating from a square.
var directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Board is the canonical game state: the grid, per-color disc counts, the
// cached legal moves of both colors, and a move counter. The moves cache maps
// color to its legal squares; a missing key means the color has no legal move,
// which downstream pass and game-over logic relies on.
type Board struct {
	grid  [Size][Size]Cell
	discs map[Cell]int
	moves map[Cell][]Square
	turn  int
}

// NewBoard returns the canonical start position: two discs of each color on
// the four center cells, move counter 1.
func NewBoard() *Board {
	b := &Board{
		discs: map[Cell]int{Black: 2, White: 2},
		turn:  1,
	}
	mid := Size / 2
	b.grid[mid-1][mid-1] = White
	b.grid[mid][mid] = White
	b.grid[mid-1][mid] = Black
	b.grid[mid][mid-1] = Black
	b.refreshMoves()
	return b
}

// Clone returns a deep copy for hypothetical play. Search always applies
// moves to a clone so no board is ever shared between evaluation paths.
func (b *Board) Clone() *Board {
	clone := &Board{
		grid: b.grid,
		discs: map[Cell]int{
			Black: b.discs[Black],
			White: b.discs[White],
		},
		moves: make(map[Cell][]Square, len(b.moves)),
		turn:  b.turn,
	}
	for color, squares := range b.moves {
		copied := make([]Square, len(squares))
		copy(copied, squares)
		clone.moves[color] = copied
	}
	return clone
}

// Cell returns the occupant of (row, col).
func (b *Board) Cell(row, col int) (Cell, error) {
	if !inBounds(row, col) {
		return Empty, fmt.Errorf("cell (%d,%d): %w", row, col, ErrOutOfBounds)
	}
	return b.grid[row][col], nil
}

// Discs returns the number of discs of the given color on the board.
func (b *Board) Discs(color Cell) int {
	return b.discs[color]
}

// Turn returns the move counter. It starts at 1 and advances only when a disc
// is placed; a forced pass does not advance it.
func (b *Board) Turn() int {
	return b.turn
}

// CanPlay reports whether placing color at (row, col) is legal. It returns
// nil for a legal move and one of ErrOutOfBounds, ErrInvalidColor,
// ErrOccupiedCell or ErrNoCapturingLine otherwise.
func (b *Board) CanPlay(row, col int, color Cell) error {
	if !inBounds(row, col) {
		return fmt.Errorf("cell (%d,%d): %w", row, col, ErrOutOfBounds)
	}
	if !color.Playable() {
		return ErrInvalidColor
	}
	if b.grid[row][col] != Empty {
		return fmt.Errorf("cell (%d,%d): %w", row, col, ErrOccupiedCell)
	}
	for _, dir := range directions {
		if b.lineCaptures(row, col, dir[0], dir[1], color) > 0 {
			return nil
		}
	}
	return fmt.Errorf("cell (%d,%d) for %s: %w", row, col, color, ErrNoCapturingLine)
}

// lineCaptures walks away from (row, col) along (dr, dc) and returns how many
// opposing discs the line captures: a non-empty run of the opponent's color
// terminated by one of color's own discs before any empty cell or the edge.
// A zero-length run captures nothing.
func (b *Board) lineCaptures(row, col, dr, dc int, color Cell) int {
	opponent := color.Opponent()
	run := 0
	r, c := row+dr, col+dc
	for inBounds(r, c) && b.grid[r][c] == opponent {
		run++
		r += dr
		c += dc
	}
	if run == 0 || !inBounds(r, c) || b.grid[r][c] != color {
		return 0
	}
	return run
}

// Apply places color at (row, col), flips every captured disc, updates both
// disc counts and both legal-move caches, and advances the move counter. It
// returns the total discs gained (flips plus the placed disc). On any
// precondition violation the board is left unchanged.
func (b *Board) Apply(row, col int, color Cell) (int, error) {
	if err := b.CanPlay(row, col, color); err != nil {
		return 0, err
	}

	flipped := 0
	b.grid[row][col] = color
	for _, dir := range directions {
		run := b.lineCaptures(row, col, dir[0], dir[1], color)
		r, c := row+dir[0], col+dir[1]
		for i := 0; i < run; i++ {
			b.grid[r][c] = color
			r += dir[0]
			c += dir[1]
		}
		flipped += run
	}

	b.discs[color] += flipped + 1
	b.discs[color.Opponent()] -= flipped
	b.turn++
	b.refreshMoves()
	return flipped + 1, nil
}

// LegalMoves returns the squares where Apply would succeed for color. The
// second result is false when the color has no legal move at all, which is
// distinct from an empty set and is what pass handling keys off. The returned
// slice is the caller's to keep; mutating it cannot touch the cache.
func (b *Board) LegalMoves(color Cell) ([]Square, bool) {
	squares, ok := b.moves[color]
	if !ok {
		return nil, false
	}
	copied := make([]Square, len(squares))
	copy(copied, squares)
	return copied, true
}

// IsGameOver reports whether neither color has a legal move.
func (b *Board) IsGameOver() bool {
	_, black := b.moves[Black]
	_, white := b.moves[White]
	return !black && !white
}

// Winner returns the color with strictly more discs. The second result is
// false on an exact tie.
func (b *Board) Winner() (Cell, bool) {
	switch {
	case b.discs[Black] > b.discs[White]:
		return Black, true
	case b.discs[White] > b.discs[Black]:
		return White, true
	default:
		return Empty, false
	}
}

// StateKey encodes the 64 cell values row-major as one digit each. It depends
// only on the grid contents, never on how the position was reached.
func (b *Board) StateKey() string {
	var key [Size * Size]byte
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			key[r*Size+c] = '0' + byte(b.grid[r][c])
		}
	}
	return string(key[:])
}

// refreshMoves recomputes both colors' legal-move caches. Colors without a
// legal move are absent from the map.
func (b *Board) refreshMoves() {
	b.moves = make(map[Cell][]Square, 2)
	for _, color := range []Cell{Black, White} {
		var squares []Square
		for r := 0; r < Size; r++ {
			for c := 0; c < Size; c++ {
				if b.CanPlay(r, c, color) == nil {
					squares = append(squares, Square{Row: r, Col: c})
				}
			}
		}
		if len(squares) > 0 {
			b.moves[color] = squares
		}
	}
}

func inBounds(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}
