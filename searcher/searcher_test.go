package searcher

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"reversi/game"
)

// samplePositions plays a seeded random game and returns the first n
// positions reached, including the start position.
func samplePositions(t *testing.T, n int) []*game.Board {
	t.Helper()
	rng := rand.New(rand.NewSource(42))
	b := game.NewBoard()
	positions := []*game.Board{b.Clone()}

	color := game.Black
	for len(positions) < n && !b.IsGameOver() {
		moves, ok := b.LegalMoves(color)
		if !ok {
			color = color.Opponent()
			continue
		}
		sq := moves[rng.Intn(len(moves))]
		_, err := b.Apply(sq.Row, sq.Col, color)
		require.NoError(t, err)
		positions = append(positions, b.Clone())
		color = color.Opponent()
	}
	return positions
}

func TestMinimaxPicksImmediateBestAtDepthOne(t *testing.T) {
	b := game.NewBoard()
	m := NewMinimax(WithDepth(1), WithHeuristic(game.Absolute), WithColor(game.Black))

	action, ok, err := m.FindMove(b)

	require.NoError(t, err)
	require.True(t, ok, "black has moves at the start")
	// Every opening move flips exactly one disc, leaving a 4-1 count.
	require.Equal(t, 3, action.Score, "depth-1 score should be the immediate disc differential")
	require.Contains(t, []game.Square{{Row: 2, Col: 3}, {Row: 3, Col: 2}, {Row: 4, Col: 5}, {Row: 5, Col: 4}},
		action.Square)
}

func TestMinimaxReportsPass(t *testing.T) {
	positions := samplePositions(t, 61)
	final := positions[len(positions)-1]
	if !final.IsGameOver() {
		t.Skip("seeded game did not finish inside the sample window")
	}

	m := NewMinimax(WithDepth(2), WithColor(game.Black))
	_, ok, err := m.FindMove(final)
	require.NoError(t, err)
	require.False(t, ok, "a color with no legal move passes instead of failing")
}

func TestAlphaBetaMatchesMinimax(t *testing.T) {
	positions := samplePositions(t, 14)

	for depth := 1; depth <= 3; depth++ {
		for _, h := range []game.Heuristic{game.Absolute, game.Weighted, game.Mixed} {
			for i, b := range positions {
				for _, color := range []game.Cell{game.Black, game.White} {
					if _, ok := b.LegalMoves(color); !ok {
						continue
					}
					m := NewMinimax(WithDepth(depth), WithHeuristic(h), WithColor(color))
					a := NewAlphaBeta(WithDepth(depth), WithHeuristic(h), WithColor(color))

					mAction, mOK, mErr := m.FindMove(b)
					aAction, aOK, aErr := a.FindMove(b)

					require.NoError(t, mErr)
					require.NoError(t, aErr)
					require.True(t, mOK)
					require.True(t, aOK)
					require.Equal(t, mAction.Score, aAction.Score,
						"pruning must not change the chosen score (position %d, depth %d, heuristic %s, %s)",
						i, depth, h, color)
					require.Equal(t, mAction.Square, aAction.Square,
						"sequential searches share the first-seen tie-break (position %d, depth %d, heuristic %s, %s)",
						i, depth, h, color)
				}
			}
		}
	}
}

func TestParallelFanOutMatchesSequentialScore(t *testing.T) {
	for _, b := range samplePositions(t, 8) {
		if _, ok := b.LegalMoves(game.Black); !ok {
			continue
		}
		sequential := NewAlphaBeta(WithDepth(3), WithHeuristic(game.Global), WithColor(game.Black))
		parallel := NewAlphaBeta(WithDepth(3), WithHeuristic(game.Global), WithColor(game.Black), WithParallel(true))

		sAction, _, sErr := sequential.FindMove(b)
		pAction, _, pErr := parallel.FindMove(b)

		require.NoError(t, sErr)
		require.NoError(t, pErr)
		require.Equal(t, sAction.Score, pAction.Score,
			"the fan-out only changes scheduling, never the best score")
	}
}

func TestSearchLeavesBoardUntouched(t *testing.T) {
	b := game.NewBoard()
	key := b.StateKey()

	_, _, err := NewAlphaBeta(WithDepth(4), WithParallel(true)).FindMove(b)

	require.NoError(t, err)
	require.Equal(t, key, b.StateKey(), "search must only mutate cloned boards")
	require.Equal(t, 1, b.Turn())
}

func TestConfigSetters(t *testing.T) {
	m := NewMinimax()

	m.SetDepth(99)
	require.Equal(t, MaxDepth, m.Depth(), "depth is clamped to the fixed maximum")
	m.SetDepth(0)
	require.Equal(t, 1, m.Depth())

	require.Equal(t, game.Mixed, m.Heuristic(), "searchers default to the mixed heuristic")
	m.SetHeuristic(m.Heuristic().Next())
	require.Equal(t, game.Global, m.Heuristic())

	m.SetColor(game.Empty)
	require.Equal(t, game.Black, m.Color(), "the empty marker is not an assignable color")
	m.SetColor(game.White)
	require.Equal(t, game.White, m.Color())

	m.SetMatrix(game.ChooseEdgeMatrix)
	require.Equal(t, game.ChooseEdgeMatrix, m.Matrix())

	m.SetParallel(true)
	require.True(t, m.Parallel())
}

func TestMetricsCollection(t *testing.T) {
	a := NewAlphaBeta(WithDepth(3), WithMetrics(), WithColor(game.Black))

	_, ok, err := a.FindMove(game.NewBoard())

	require.NoError(t, err)
	require.True(t, ok)
	metric := a.Metrics()
	require.Equal(t, 3, metric.Depth)
	require.Greater(t, metric.Nodes, int64(0), "a depth-3 search evaluates leaves")
}

func TestFanOutAbortsOnSubtreeFailure(t *testing.T) {
	b := game.NewBoard()
	moves, ok := b.LegalMoves(game.Black)
	require.True(t, ok)

	t.Run("a panicking task fails the whole selection", func(t *testing.T) {
		c := defaultConfig()
		c.parallel = true

		_, err := c.fanOut(b, moves, func(*game.Board, game.Square) (int, bool) {
			panic("evaluator blew up")
		})

		require.ErrorIs(t, err, ErrConcurrency)
	})

	t.Run("all candidates skipped yields no move", func(t *testing.T) {
		c := defaultConfig()

		_, err := c.fanOut(b, moves, func(*game.Board, game.Square) (int, bool) {
			return 0, false
		})

		require.ErrorIs(t, err, ErrConcurrency)
	})
}
