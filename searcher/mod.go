package searcher

import (
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"reversi/experiments/metrics"
	"reversi/game"
)

// MaxDepth bounds the configurable search depth.
const MaxDepth = 8

// ErrConcurrency reports that a spawned subtree evaluation terminated
// abnormally. The whole root search fails in that case; no partial move is
// ever applied.
var ErrConcurrency = errors.New("subtree evaluation aborted")

// Option configures a searcher.
type Option func(*config)

type config struct {
	depth     int
	heuristic game.Heuristic
	matrix    game.MatrixChoice
	color     game.Cell
	parallel  bool
	metrics   metrics.Collector
}

func defaultConfig() config {
	return config{
		depth:     3,
		heuristic: game.Mixed,
		color:     game.Black,
		metrics:   metrics.NewDummyCollector(),
	}
}

// WithDepth sets the search depth, clamped to [1, MaxDepth].
func WithDepth(depth int) Option {
	return func(c *config) {
		c.depth = clampDepth(depth)
	}
}

// WithHeuristic sets the evaluator variant.
func WithHeuristic(h game.Heuristic) Option {
	return func(c *config) {
		c.heuristic = h
	}
}

// WithMatrix sets the weight table used by table-based evaluators.
func WithMatrix(m game.MatrixChoice) Option {
	return func(c *config) {
		c.matrix = m
	}
}

// WithColor assigns the color the searcher plays for.
func WithColor(color game.Cell) Option {
	return func(c *config) {
		if color.Playable() {
			c.color = color
		}
	}
}

// WithParallel enables the root-level fork-join fan-out.
func WithParallel(parallel bool) Option {
	return func(c *config) {
		c.parallel = parallel
	}
}

// WithMetrics makes the searcher collect node and prune counters.
func WithMetrics() Option {
	return func(c *config) {
		c.metrics = metrics.NewCollector()
	}
}

func clampDepth(depth int) int {
	if depth < 1 {
		return 1
	}
	if depth > MaxDepth {
		return MaxDepth
	}
	return depth
}

// Parameter access shared by both searchers. The player layer mutates these
// between turns, never during a running search.

func (c *config) Depth() int { return c.depth }

func (c *config) SetDepth(depth int) { c.depth = clampDepth(depth) }

func (c *config) Heuristic() game.Heuristic { return c.heuristic }

func (c *config) SetHeuristic(h game.Heuristic) { c.heuristic = h }

func (c *config) Matrix() game.MatrixChoice { return c.matrix }

func (c *config) SetMatrix(m game.MatrixChoice) { c.matrix = m }

func (c *config) Color() game.Cell { return c.color }

func (c *config) SetColor(color game.Cell) {
	if color.Playable() {
		c.color = color
	}
}

func (c *config) Parallel() bool { return c.parallel }

func (c *config) SetParallel(parallel bool) { c.parallel = parallel }

// Metrics returns the last completed search metric.
func (c *config) Metrics() metrics.SearchMetric {
	return c.metrics.Complete()
}

func (c *config) evaluate(b *game.Board) int {
	c.metrics.AddNode()
	return c.heuristic.Fn()(b, c.color, c.matrix.Table())
}

// subtree scores one root candidate move to the configured depth. The second
// result is false when the branch had to be skipped.
type subtree func(b *game.Board, sq game.Square) (int, bool)

// fanOut scores every candidate and returns the first-seen candidate with the
// strictly highest score. When parallel is enabled each candidate's subtree
// runs as its own task on a board cloned for that branch, and the caller
// blocks until every task has joined; candidates are then folded in
// completion order, so which of several equal-scoring moves wins the
// first-seen tie-break varies across runs. That non-determinism is inherent
// to the fan-out and deliberately left in place. A task that panics fails the
// whole selection with ErrConcurrency.
func (c *config) fanOut(b *game.Board, moves []game.Square, score subtree) (game.Action, error) {
	c.metrics.Start(c.depth, c.parallel)

	results := make(chan game.Action, len(moves))

	if c.parallel {
		var group errgroup.Group
		for _, sq := range moves {
			sq := sq
			group.Go(func() (err error) {
				defer func() {
					if r := recover(); r != nil {
						err = fmt.Errorf("candidate %v: %v: %w", sq, r, ErrConcurrency)
					}
				}()
				if s, ok := score(b.Clone(), sq); ok {
					results <- game.Action{Square: sq, Score: s}
				}
				return nil
			})
		}
		if err := group.Wait(); err != nil {
			return game.Action{}, err
		}
	} else {
		for _, sq := range moves {
			if s, ok := score(b.Clone(), sq); ok {
				results <- game.Action{Square: sq, Score: s}
			}
		}
	}
	close(results)

	var best game.Action
	found := false
	for action := range results {
		if !found || action.Score > best.Score {
			best = action
			found = true
		}
	}
	if !found {
		return game.Action{}, fmt.Errorf("all %d candidates were skipped: %w", len(moves), ErrConcurrency)
	}
	return best, nil
}
