package main

import (
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"

	"reversi/game"
)

type strategyConfig struct {
	Kind      string
	Depth     int
	Heuristic string
	Matrix    string
	Parallel  bool
	Table     string
}

type trainingConfig struct {
	Epochs    int
	MaxSteps  int
	Epsilon   float64
	Lambda    float64
	Gamma     float64
	Heuristic string
	Table     string
}

type appConfig struct {
	Black    strategyConfig
	White    strategyConfig
	Training trainingConfig
	Records  string
}

func loadConfig() (*appConfig, error) {
	v := viper.New()
	v.SetConfigName("reversi")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvPrefix("reversi")
	v.AutomaticEnv()

	v.SetDefault("black.kind", "alphabeta")
	v.SetDefault("black.depth", 3)
	v.SetDefault("black.heuristic", "mixed")
	v.SetDefault("black.matrix", "corner")
	v.SetDefault("black.parallel", true)
	v.SetDefault("white.kind", "minimax")
	v.SetDefault("white.depth", 3)
	v.SetDefault("white.heuristic", "mixed")
	v.SetDefault("white.matrix", "corner")
	v.SetDefault("white.parallel", false)
	v.SetDefault("training.epochs", 1000)
	v.SetDefault("training.maxsteps", 70)
	v.SetDefault("training.epsilon", 0.9)
	v.SetDefault("training.lambda", 0.8)
	v.SetDefault("training.gamma", 0.99)
	v.SetDefault("training.heuristic", "absolute")
	v.SetDefault("training.table", "qtable.json")
	v.SetDefault("records", "records")

	if err := v.ReadInConfig(); err != nil {
		// A missing config file falls back to the defaults above.
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return nil, err
		}
	}

	var cfg appConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func heuristicByName(name string) game.Heuristic {
	switch strings.ToLower(name) {
	case "absolute":
		return game.Absolute
	case "weighted":
		return game.Weighted
	case "mobility":
		return game.Mobility
	case "global":
		return game.Global
	case "mixed":
		return game.Mixed
	default:
		log.Warn().Str("heuristic", name).Msg("unknown heuristic name, using mixed")
		return game.Mixed
	}
}

func matrixByName(name string) game.MatrixChoice {
	switch strings.ToLower(name) {
	case "edge":
		return game.ChooseEdgeMatrix
	case "corner":
		return game.ChooseCornerMatrix
	default:
		log.Warn().Str("matrix", name).Msg("unknown matrix name, using corner")
		return game.ChooseCornerMatrix
	}
}
