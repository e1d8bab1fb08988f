package learner

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"reversi/game"
)

func TestUpdateArithmetic(t *testing.T) {
	// (1-0.8)*10 + 0.8*(5 + 0.99*20) = 21.84, truncated to 21.
	require.Equal(t, 21, update(10, 5, 0.8, 0.99, 20))

	t.Run("sentinel and missing lookups count as zero", func(t *testing.T) {
		l := NewQLearner()
		state := game.NewBoard().StateKey()
		l.table[state] = map[string]int{"2D": InitialValue}

		l.updateEntry(state, "2D", 5, "unseen-state")

		value, ok := l.Value(state, "2D")
		require.True(t, ok)
		require.Equal(t, 4, value, "old=0, maxNext=0: 0.8*5 truncates to 4")
	})

	t.Run("an all-negative successor keeps its sign", func(t *testing.T) {
		l := NewQLearner()
		l.table["pre"] = map[string]int{"2D": InitialValue}
		l.table["post"] = map[string]int{"3C": -5, "4B": -7}

		l.updateEntry("pre", "2D", 0, "post")

		value, ok := l.Value("pre", "2D")
		require.True(t, ok)
		require.Equal(t, -3, value, "old=0, maxNext=-5: 0.8*0.99*(-5) truncates to -3")
	})
}

func TestTrainPopulatesTable(t *testing.T) {
	l := NewQLearner(WithEpochs(30), WithMaxSteps(70), WithEpsilon(0.9))

	records := l.Train(nil)

	require.Len(t, records, 30, "one metric per epoch")
	require.Greater(t, l.States(), 0, "self-play should populate the table")
	require.InDelta(t, 0.9*math.Pow(0.999, 30), records[29].Epsilon, 1e-9,
		"epsilon decays by 0.999 per epoch")
	for _, r := range records {
		require.Greater(t, r.Steps, 0, "every episode plays at least one move")
		require.LessOrEqual(t, r.Steps, 70)
	}
}

func TestTrainPublishesProgress(t *testing.T) {
	l := NewQLearner(WithEpochs(5), WithMaxSteps(10))
	progress := make(chan float64, 5)

	l.Train(progress)
	close(progress)

	var last float64
	count := 0
	for p := range progress {
		require.GreaterOrEqual(t, p, last, "progress is monotone")
		require.LessOrEqual(t, p, 1.0)
		last = p
		count++
	}
	require.Equal(t, 5, count)
	require.Equal(t, 1.0, last, "the final epoch reports completion")
}

func TestChooseMove(t *testing.T) {
	t.Run("empty table plays a random legal move", func(t *testing.T) {
		l := NewQLearner()
		b := game.NewBoard()

		sq, ok := l.ChooseMove(b, game.Black)

		require.True(t, ok)
		require.NoError(t, b.CanPlay(sq.Row, sq.Col, game.Black), "the chosen move must be legal")
	})

	t.Run("known state plays its best action", func(t *testing.T) {
		l := NewQLearner()
		b := game.NewBoard()
		l.table[b.StateKey()] = map[string]int{
			"2D": 3,
			"3C": 40,
			"5E": InitialValue,
		}

		sq, ok := l.ChooseMove(b, game.Black)

		require.True(t, ok)
		require.Equal(t, game.Square{Row: 3, Col: 2}, sq, "3C holds the highest value")
	})

	t.Run("reports absence when the color cannot move", func(t *testing.T) {
		l := NewQLearner(WithEpochs(1), WithMaxSteps(70))
		b := playOut(t)
		if !b.IsGameOver() {
			t.Skip("playout did not reach game over")
		}

		_, ok := l.ChooseMove(b, game.Black)
		require.False(t, ok)
	})
}

// playOut runs one greedy-random game to completion.
func playOut(t *testing.T) *game.Board {
	t.Helper()
	b := game.NewBoard()
	color := game.Black
	for i := 0; i < 200 && !b.IsGameOver(); i++ {
		moves, ok := b.LegalMoves(color)
		if ok {
			_, err := b.Apply(moves[0].Row, moves[0].Col, color)
			require.NoError(t, err)
		}
		color = color.Opponent()
	}
	return b
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.json")

	l := NewQLearner(WithEpochs(10), WithMaxSteps(40), WithTablePath(path))
	l.Train(nil)
	require.FileExists(t, path, "training persists the table")

	loaded := NewQLearner()
	require.NoError(t, loaded.Load(path))
	require.Equal(t, l.table, loaded.table, "export and import must round-trip exactly")
}

func TestLoadFailures(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		l := NewQLearner()
		err := l.Load(filepath.Join(t.TempDir(), "absent.json"))
		require.ErrorIs(t, err, ErrImport)
	})

	t.Run("malformed file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

		l := NewQLearner()
		err := l.Load(path)
		require.ErrorIs(t, err, ErrImport)
		require.Equal(t, 0, l.States(), "a failed load leaves the learner empty")
	})
}
