package searcher

import (
	"math"

	"github.com/rs/zerolog/log"

	"reversi/game"
)

// AlphaBeta selects moves by minimax search with alpha-beta pruning. It
// shares Minimax's parity and base-case conventions, so for equal depth and
// heuristic both searchers choose the same score; pruning changes cost, not
// the result. Alpha is the best value the maximizer can already guarantee,
// beta the best the minimizer can.
type AlphaBeta struct {
	config
}

func NewAlphaBeta(options ...Option) *AlphaBeta {
	a := &AlphaBeta{config: defaultConfig()}
	for _, option := range options {
		option(&a.config)
	}
	return a
}

// FindMove evaluates every legal move of the searcher's color, each with
// fresh (-inf, +inf) bounds, and returns the best-scoring one. The second
// result is false when the color has no legal move.
func (a *AlphaBeta) FindMove(b *game.Board) (game.Action, bool, error) {
	moves, ok := b.LegalMoves(a.color)
	if !ok {
		return game.Action{}, false, nil
	}

	action, err := a.fanOut(b, moves, func(clone *game.Board, sq game.Square) (int, bool) {
		if _, err := clone.Apply(sq.Row, sq.Col, a.color); err != nil {
			log.Warn().Err(err).Msgf("alphabeta: board-reported move %v failed to apply, skipping branch", sq)
			return 0, false
		}
		return a.search(clone, a.color.Opponent(), a.depth, math.MinInt, math.MaxInt), true
	})
	if err != nil {
		return game.Action{}, false, err
	}
	return action, true, nil
}

func (a *AlphaBeta) search(b *game.Board, toMove game.Cell, depth, alpha, beta int) int {
	moves, ok := b.LegalMoves(toMove)
	if depth <= 1 || !ok {
		return a.evaluate(b)
	}

	if depth%2 == 0 { // Maximizing node: raise alpha, cut off once alpha >= beta.
		for _, sq := range moves {
			child := b.Clone()
			if _, err := child.Apply(sq.Row, sq.Col, toMove); err != nil {
				log.Warn().Err(err).Msgf("alphabeta: board-reported move %v failed to apply, skipping branch", sq)
				continue
			}
			if score := a.search(child, toMove.Opponent(), depth-1, alpha, beta); score > alpha {
				alpha = score
			}
			if alpha >= beta {
				a.metrics.AddPrune()
				return alpha
			}
		}
		return alpha
	}

	// Minimizing node: lower beta, cut off once alpha >= beta.
	for _, sq := range moves {
		child := b.Clone()
		if _, err := child.Apply(sq.Row, sq.Col, toMove); err != nil {
			log.Warn().Err(err).Msgf("alphabeta: board-reported move %v failed to apply, skipping branch", sq)
			continue
		}
		if score := a.search(child, toMove.Opponent(), depth-1, alpha, beta); score < beta {
			beta = score
		}
		if alpha >= beta {
			a.metrics.AddPrune()
			return beta
		}
	}
	return beta
}
