package player

import (
	"reversi/game"
)

// HumanPlayer applies a caller-directed square. Selection knobs are no-ops.
type HumanPlayer struct {
	color game.Cell
}

func NewHumanPlayer(color game.Cell) *HumanPlayer {
	return &HumanPlayer{color: color}
}

func (p *HumanPlayer) PlayTurn(b *game.Board, choice ...game.Square) (game.HistoryAction, error) {
	if _, ok := b.LegalMoves(p.color); !ok {
		return pass(b, p.color), nil
	}
	if len(choice) == 0 {
		return game.HistoryAction{}, ErrNoChoice
	}
	return play(b, p.color, choice[0])
}

func (p *HumanPlayer) Human() bool { return true }

func (p *HumanPlayer) Color() game.Cell { return p.color }

func (p *HumanPlayer) SetColor(color game.Cell) {
	if color.Playable() {
		p.color = color
	}
}

func (p *HumanPlayer) Depth() int { return 0 }

func (p *HumanPlayer) SetDepth(int) {}

func (p *HumanPlayer) CycleHeuristic(bool) {}

func (p *HumanPlayer) CycleMatrix(bool) {}

func (p *HumanPlayer) SetParallel(bool) {}
