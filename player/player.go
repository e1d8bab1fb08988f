package player

import (
	"errors"

	"reversi/game"
)

// ErrNoChoice is returned when an interactively-driven player's turn is
// played without a pre-chosen square.
var ErrNoChoice = errors.New("no square chosen")

// Player is the capability every move selector satisfies: play one turn on a
// board and expose the tunable parameters. Knobs that are meaningless for a
// variant (search depth for the learner, parallelism for a human) are no-ops
// returning zero values, so call sites stay uniform across kinds.
type Player interface {
	// PlayTurn plays one turn for the player's color: selecting a move,
	// applying it, and returning its history record. A player with no legal
	// move returns a pass record without touching the board. The optional
	// square is the pre-chosen coordinate interactively-driven players
	// require; selector-driven players ignore it.
	PlayTurn(b *game.Board, choice ...game.Square) (game.HistoryAction, error)

	// Human reports whether moves are chosen by a person rather than a
	// selector.
	Human() bool

	Color() game.Cell
	SetColor(color game.Cell)

	Depth() int
	SetDepth(depth int)
	CycleHeuristic(forward bool)
	CycleMatrix(forward bool)
	SetParallel(parallel bool)
}

// pass builds the history record for a color with no legal move. The move
// counter does not advance on a pass, so the record reuses the current index.
func pass(b *game.Board, color game.Cell) game.HistoryAction {
	return game.HistoryAction{
		Mover: color,
		Next:  color.Opponent(),
		Index: b.Turn(),
	}
}

// play applies an authoritative move for color and builds its record. Any
// violation is returned as-is with the board unchanged.
func play(b *game.Board, color game.Cell, sq game.Square) (game.HistoryAction, error) {
	index := b.Turn()
	gained, err := b.Apply(sq.Row, sq.Col, color)
	if err != nil {
		return game.HistoryAction{}, err
	}
	notation, _ := sq.Notation()
	return game.HistoryAction{
		Notation: notation,
		Gained:   gained,
		Mover:    color,
		Next:     color.Opponent(),
		Index:    index,
	}, nil
}
