package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"reversi/engine"
	"reversi/experiments"
	"reversi/game"
	"reversi/learner"
	"reversi/player"
	"reversi/searcher"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	cfg, err := loadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	mode := "play"
	if len(os.Args) > 1 {
		mode = os.Args[1]
	}

	switch mode {
	case "play":
		err = runGame(cfg)
	case "train":
		err = runTraining(cfg)
	case "speedup":
		err = experiments.Speedup(5, 3, cfg.Records)
	default:
		err = fmt.Errorf("unknown mode %q (want play, train or speedup)", mode)
	}
	if err != nil {
		log.Fatal().Err(err).Str("mode", mode).Msg("run failed")
	}
}

func runGame(cfg *appConfig) error {
	black, err := buildPlayer(cfg.Black, game.Black)
	if err != nil {
		return err
	}
	white, err := buildPlayer(cfg.White, game.White)
	if err != nil {
		return err
	}

	e := engine.NewLocalEngine(black, white)
	winner, decided, err := e.Run()
	if err != nil {
		return err
	}

	for _, action := range e.History() {
		if action.Pass() {
			fmt.Printf("%3d. %s passes\n", action.Index, action.Mover)
			continue
		}
		fmt.Printf("%3d. %s %s (+%d)\n", action.Index, action.Mover, action.Notation, action.Gained)
	}
	if decided {
		fmt.Printf("winner: %s (%d-%d)\n", winner,
			e.Board().Discs(winner), e.Board().Discs(winner.Opponent()))
	} else {
		fmt.Printf("tie (%d-%d)\n", e.Board().Discs(game.Black), e.Board().Discs(game.White))
	}
	return nil
}

func buildPlayer(cfg strategyConfig, color game.Cell) (player.Player, error) {
	switch cfg.Kind {
	case "minimax", "alphabeta":
		options := []searcher.Option{
			searcher.WithColor(color),
			searcher.WithDepth(cfg.Depth),
			searcher.WithHeuristic(heuristicByName(cfg.Heuristic)),
			searcher.WithMatrix(matrixByName(cfg.Matrix)),
			searcher.WithParallel(cfg.Parallel),
		}
		if cfg.Kind == "minimax" {
			return player.NewMinimaxPlayer(options...), nil
		}
		return player.NewAlphaBetaPlayer(options...), nil
	case "qlearning":
		p := player.NewQLearningPlayer(color,
			learner.WithHeuristic(heuristicByName(cfg.Heuristic)),
			learner.WithMatrix(matrixByName(cfg.Matrix)))
		if cfg.Table != "" {
			if err := p.LoadTable(cfg.Table); err != nil {
				// Surfaced before the game starts; the player falls back to
				// pure-random play rather than aborting.
				log.Warn().Err(err).Str("path", cfg.Table).Msg("playing without a table")
			}
		}
		return p, nil
	default:
		return nil, fmt.Errorf("unknown strategy kind %q", cfg.Kind)
	}
}

func runTraining(cfg *appConfig) error {
	p := player.NewQLearningPlayer(game.Black,
		learner.WithEpochs(cfg.Training.Epochs),
		learner.WithMaxSteps(cfg.Training.MaxSteps),
		learner.WithEpsilon(cfg.Training.Epsilon),
		learner.WithLearningRate(cfg.Training.Lambda),
		learner.WithDiscount(cfg.Training.Gamma),
		learner.WithHeuristic(heuristicByName(cfg.Training.Heuristic)),
		learner.WithTablePath(cfg.Training.Table),
	)

	log.Info().Int("epochs", cfg.Training.Epochs).Str("table", cfg.Training.Table).Msg("training started")
	progress := p.Train()

	// Poll the progress feed the way an interactive frontend would: never
	// blocking on the trainer, just reporting the latest fraction.
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()
	last := 0.0
	for {
		select {
		case frac, open := <-progress:
			if !open {
				fmt.Printf("\rtraining 100%%\n")
				return nil
			}
			last = frac
		case <-ticker.C:
			fmt.Printf("\rtraining %3.0f%%", last*100)
		}
	}
}
