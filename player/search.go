package player

import (
	"fmt"

	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/searcher"
)

// moveSearcher is the surface both tree searchers share.
type moveSearcher interface {
	FindMove(b *game.Board) (game.Action, bool, error)
	Depth() int
	SetDepth(depth int)
	Heuristic() game.Heuristic
	SetHeuristic(h game.Heuristic)
	Matrix() game.MatrixChoice
	SetMatrix(m game.MatrixChoice)
	Color() game.Cell
	SetColor(color game.Cell)
	Parallel() bool
	SetParallel(parallel bool)
	Metrics() metrics.SearchMetric
}

// searchPlayer adapts a tree searcher to the Player capability.
type searchPlayer struct {
	search moveSearcher
}

// NewMinimaxPlayer returns a player backed by exhaustive minimax search.
func NewMinimaxPlayer(options ...searcher.Option) *searchPlayer {
	return &searchPlayer{search: searcher.NewMinimax(options...)}
}

// NewAlphaBetaPlayer returns a player backed by alpha-beta pruned search.
func NewAlphaBetaPlayer(options ...searcher.Option) *searchPlayer {
	return &searchPlayer{search: searcher.NewAlphaBeta(options...)}
}

func (p *searchPlayer) PlayTurn(b *game.Board, _ ...game.Square) (game.HistoryAction, error) {
	color := p.search.Color()
	action, ok, err := p.search.FindMove(b)
	if err != nil {
		// A worker that died aborts the whole turn; nothing was applied.
		return game.HistoryAction{}, fmt.Errorf("turn failed for %s: %w", color, err)
	}
	if !ok {
		return pass(b, color), nil
	}
	return play(b, color, action.Square)
}

func (p *searchPlayer) Human() bool { return false }

func (p *searchPlayer) Color() game.Cell { return p.search.Color() }

func (p *searchPlayer) SetColor(color game.Cell) { p.search.SetColor(color) }

func (p *searchPlayer) Depth() int { return p.search.Depth() }

func (p *searchPlayer) SetDepth(depth int) { p.search.SetDepth(depth) }

func (p *searchPlayer) SetParallel(parallel bool) { p.search.SetParallel(parallel) }

func (p *searchPlayer) CycleHeuristic(forward bool) {
	if forward {
		p.search.SetHeuristic(p.search.Heuristic().Next())
	} else {
		p.search.SetHeuristic(p.search.Heuristic().Prev())
	}
}

func (p *searchPlayer) CycleMatrix(forward bool) {
	if forward {
		p.search.SetMatrix(p.search.Matrix().Next())
	} else {
		p.search.SetMatrix(p.search.Matrix().Prev())
	}
}

// Metrics returns the searcher's last completed search metric.
func (p *searchPlayer) Metrics() metrics.SearchMetric {
	return p.search.Metrics()
}
