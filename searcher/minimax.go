package searcher

import (
	"github.com/rs/zerolog/log"

	"reversi/game"
)

// Minimax selects moves by exhaustive tree search. Remaining even depth is a
// maximizing node for the searcher's color, odd depth a minimizing one; every
// leaf is scored from the searcher's own color regardless of whose turn it
// nominally is.
type Minimax struct {
	config
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{config: defaultConfig()}
	for _, option := range options {
		option(&m.config)
	}
	return m
}

// FindMove evaluates every legal move of the searcher's color to the
// configured depth and returns the best-scoring one. The second result is
// false when the color has no legal move (a pass, not a failure).
func (m *Minimax) FindMove(b *game.Board) (game.Action, bool, error) {
	moves, ok := b.LegalMoves(m.color)
	if !ok {
		return game.Action{}, false, nil
	}

	action, err := m.fanOut(b, moves, func(clone *game.Board, sq game.Square) (int, bool) {
		if _, err := clone.Apply(sq.Row, sq.Col, m.color); err != nil {
			log.Warn().Err(err).Msgf("minimax: board-reported move %v failed to apply, skipping branch", sq)
			return 0, false
		}
		return m.search(clone, m.color.Opponent(), m.depth), true
	})
	if err != nil {
		return game.Action{}, false, err
	}
	return action, true, nil
}

// search folds the subtree below b. toMove is the side whose moves expand the
// node; depth is the remaining plies.
func (m *Minimax) search(b *game.Board, toMove game.Cell, depth int) int {
	moves, ok := b.LegalMoves(toMove)
	if depth <= 1 || !ok {
		return m.evaluate(b)
	}

	maximizing := depth%2 == 0
	best := 0
	first := true
	for _, sq := range moves {
		child := b.Clone()
		if _, err := child.Apply(sq.Row, sq.Col, toMove); err != nil {
			log.Warn().Err(err).Msgf("minimax: board-reported move %v failed to apply, skipping branch", sq)
			continue
		}
		score := m.search(child, toMove.Opponent(), depth-1)
		if first || (maximizing && score > best) || (!maximizing && score < best) {
			best = score
			first = false
		}
	}
	if first {
		// Every branch was skipped; fall back to scoring the node itself.
		return m.evaluate(b)
	}
	return best
}
