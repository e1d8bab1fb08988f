package experiments

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"reversi/engine"
	"reversi/experiments/metrics"
	"reversi/game"
	"reversi/learner"
	"reversi/player"
	"reversi/searcher"
)

// Speedup plays self-play games at the given depth with the root fan-out
// disabled and enabled, and dumps per-game and per-move records for
// comparison.
func Speedup(games, depth int, root string) error {
	writer, err := metrics.NewWriter(root)
	if err != nil {
		return err
	}

	var gameRecords []metrics.GameRecord
	var moveRecords []metrics.MoveRecord
	id := 0

	for _, parallel := range []bool{false, true} {
		agent := fmt.Sprintf("alphabeta-d%d-parallel=%t", depth, parallel)
		log.Info().Str("agent", agent).Int("games", games).Msg("running speedup experiment")

		for i := 0; i < games; i++ {
			id++
			gameRecord, moves, err := runGame(id, depth, parallel)
			if err != nil {
				return fmt.Errorf("game %d: %w", id, err)
			}
			gameRecord.Agent1 = agent
			gameRecord.Agent2 = agent
			gameRecords = append(gameRecords, gameRecord)
			moveRecords = append(moveRecords, moves...)
		}
	}

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return err
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return err
	}
	log.Info().Str("dir", writer.Dir()).Msg("speedup records written")
	return nil
}

func runGame(id, depth int, parallel bool) (metrics.GameRecord, []metrics.MoveRecord, error) {
	black := player.NewAlphaBetaPlayer(
		searcher.WithDepth(depth), searcher.WithParallel(parallel), searcher.WithMetrics())
	white := player.NewAlphaBetaPlayer(
		searcher.WithDepth(depth), searcher.WithParallel(parallel), searcher.WithMetrics())
	e := engine.NewLocalEngine(black, white)

	start := time.Now()
	var moves []metrics.MoveRecord
	step := 0
	for !e.GameOver() {
		if step >= 200 {
			return metrics.GameRecord{}, nil, fmt.Errorf("no game over after %d steps", step)
		}
		mover := black
		if e.ToMove() == game.White {
			mover = white
		}
		action, err := e.Step()
		if err != nil {
			return metrics.GameRecord{}, nil, err
		}
		step++
		if action.Pass() {
			continue
		}
		metric := mover.Metrics()
		moves = append(moves, metrics.MoveRecord{
			Game: id,
			MoveMetric: metrics.MoveMetric{
				Step:         step,
				Player:       action.Mover.String(),
				SearchMetric: metric,
			},
		})
	}

	winner, _ := e.Board().Winner()
	record := metrics.GameRecord{
		ID: id,
		GameMetric: metrics.GameMetric{
			Winner:     winner.String(),
			BlackDiscs: e.Board().Discs(game.Black),
			WhiteDiscs: e.Board().Discs(game.White),
			TotalMoves: len(e.History()),
			Duration:   time.Since(start),
		},
	}
	return record, moves, nil
}

// Training runs one learner for the given number of epochs and dumps the
// per-epoch records.
func Training(epochs int, options []learner.Option, root string) error {
	writer, err := metrics.NewWriter(root)
	if err != nil {
		return err
	}

	l := learner.NewQLearner(append(options, learner.WithEpochs(epochs))...)
	records := l.Train(nil)

	if err := writer.WriteTrainingRecords(records); err != nil {
		return err
	}
	log.Info().Str("dir", writer.Dir()).Int("states", l.States()).Msg("training records written")
	return nil
}
