package player

import (
	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/learner"
)

// QLearningPlayer selects moves from a learned action-value table. Search
// depth and parallelism are meaningless here and default to no-ops; the
// heuristic and matrix knobs steer the training reward.
type QLearningPlayer struct {
	color   game.Cell
	learner *learner.QLearner
}

func NewQLearningPlayer(color game.Cell, options ...learner.Option) *QLearningPlayer {
	return &QLearningPlayer{
		color:   color,
		learner: learner.NewQLearner(options...),
	}
}

func (p *QLearningPlayer) PlayTurn(b *game.Board, _ ...game.Square) (game.HistoryAction, error) {
	sq, ok := p.learner.ChooseMove(b, p.color)
	if !ok {
		return pass(b, p.color), nil
	}
	return play(b, p.color, sq)
}

// Train runs the learner on a background task and returns the channel the
// presentation side polls for progress in [0,1]. Sends never block; the
// channel closes when training and table persistence finish.
func (p *QLearningPlayer) Train() <-chan float64 {
	progress := make(chan float64, 1)
	go func() {
		defer close(progress)
		p.learner.Train(progress)
	}()
	return progress
}

// TrainSync trains on the calling goroutine and returns per-epoch metrics.
func (p *QLearningPlayer) TrainSync() []metrics.TrainingMetric {
	return p.learner.Train(nil)
}

// LoadTable imports a persisted table; on failure the learner keeps playing
// from its current (possibly empty, pure-random) table.
func (p *QLearningPlayer) LoadTable(path string) error {
	return p.learner.Load(path)
}

// SaveTable exports the current table.
func (p *QLearningPlayer) SaveTable(path string) error {
	return p.learner.Save(path)
}

func (p *QLearningPlayer) Human() bool { return false }

func (p *QLearningPlayer) Color() game.Cell { return p.color }

func (p *QLearningPlayer) SetColor(color game.Cell) {
	if color.Playable() {
		p.color = color
	}
}

func (p *QLearningPlayer) Depth() int { return 0 }

func (p *QLearningPlayer) SetDepth(int) {}

func (p *QLearningPlayer) SetParallel(bool) {}

func (p *QLearningPlayer) CycleHeuristic(forward bool) {
	if forward {
		p.learner.SetHeuristic(p.learner.Heuristic().Next())
	} else {
		p.learner.SetHeuristic(p.learner.Heuristic().Prev())
	}
}

func (p *QLearningPlayer) CycleMatrix(forward bool) {
	if forward {
		p.learner.SetMatrix(p.learner.Matrix().Next())
	} else {
		p.learner.SetMatrix(p.learner.Matrix().Prev())
	}
}
