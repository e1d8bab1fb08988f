package learner

import (
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/exp/rand"
	"lukechampine.com/frand"

	"reversi/experiments/metrics"
	"reversi/game"
)

const (
	// InitialValue marks a table entry that has never been updated. It is
	// treated as a missing lookup (worth 0) by the update rule and makes
	// exploitation fall back to a random move.
	InitialValue = -1 << 31

	// WinReward and LossReward are added to the evaluator reward when a move
	// ends the game. A tie adds nothing.
	WinReward  = 1000
	LossReward = -1000

	epsilonDecay = 0.999
)

// Option configures a QLearner.
type Option func(*QLearner)

// QLearner learns a tabular action-value function by epsilon-greedy self-play.
// The table is owned by exactly one learner instance and is only ever written
// by its single training loop.
type QLearner struct {
	table     map[string]map[string]int
	epsilon   float64
	lambda    float64
	gamma     float64
	epochs    int
	maxSteps  int
	heuristic game.Heuristic
	matrix    game.MatrixChoice
	tablePath string
}

func WithEpsilon(epsilon float64) Option {
	return func(l *QLearner) {
		if epsilon > 0 && epsilon <= 1 {
			l.epsilon = epsilon
		}
	}
}

// WithLearningRate sets lambda, the weight of new information in an update.
func WithLearningRate(lambda float64) Option {
	return func(l *QLearner) {
		if lambda > 0 && lambda <= 1 {
			l.lambda = lambda
		}
	}
}

// WithDiscount sets gamma, the weight of the best successor value.
func WithDiscount(gamma float64) Option {
	return func(l *QLearner) {
		if gamma > 0 && gamma <= 1 {
			l.gamma = gamma
		}
	}
}

func WithEpochs(epochs int) Option {
	return func(l *QLearner) {
		if epochs > 0 {
			l.epochs = epochs
		}
	}
}

// WithMaxSteps bounds the number of moves per training episode.
func WithMaxSteps(steps int) Option {
	return func(l *QLearner) {
		if steps > 0 {
			l.maxSteps = steps
		}
	}
}

func WithHeuristic(h game.Heuristic) Option {
	return func(l *QLearner) {
		l.heuristic = h
	}
}

func WithMatrix(m game.MatrixChoice) Option {
	return func(l *QLearner) {
		l.matrix = m
	}
}

// WithTablePath sets where the table is persisted after training.
func WithTablePath(path string) Option {
	return func(l *QLearner) {
		l.tablePath = path
	}
}

func NewQLearner(options ...Option) *QLearner {
	l := &QLearner{
		table:     make(map[string]map[string]int),
		epsilon:   0.9,
		lambda:    0.8,
		gamma:     0.99,
		epochs:    1000,
		maxSteps:  70,
		heuristic: game.Absolute,
	}
	for _, option := range options {
		option(l)
	}
	return l
}

func (l *QLearner) Heuristic() game.Heuristic { return l.heuristic }

func (l *QLearner) SetHeuristic(h game.Heuristic) { l.heuristic = h }

func (l *QLearner) Matrix() game.MatrixChoice { return l.matrix }

func (l *QLearner) SetMatrix(m game.MatrixChoice) { l.matrix = m }

// States returns the number of distinct board states in the table.
func (l *QLearner) States() int {
	return len(l.table)
}

// Value returns the learned value for a state key and move notation.
func (l *QLearner) Value(state, move string) (int, bool) {
	actions, ok := l.table[state]
	if !ok {
		return 0, false
	}
	value, ok := actions[move]
	return value, ok
}

// Train runs the configured number of self-play epochs from the canonical
// start position, decaying epsilon after each one. Progress in [0,1] is
// published non-blockingly on progress after every epoch; a nil channel is
// fine. When a table path is configured the table is persisted at the end.
// Train returns one metric per epoch.
func (l *QLearner) Train(progress chan<- float64) []metrics.TrainingMetric {
	records := make([]metrics.TrainingMetric, 0, l.epochs)

	for epoch := 0; epoch < l.epochs; epoch++ {
		steps := l.episode()
		l.epsilon *= epsilonDecay

		records = append(records, metrics.TrainingMetric{
			Epoch:   epoch + 1,
			Steps:   steps,
			Epsilon: l.epsilon,
			States:  len(l.table),
		})
		if progress != nil {
			select {
			case progress <- float64(epoch+1) / float64(l.epochs):
			default:
			}
		}
	}

	log.Info().Int("epochs", l.epochs).Int("states", len(l.table)).Msg("training complete")

	if l.tablePath != "" {
		if err := l.Save(l.tablePath); err != nil {
			log.Error().Err(err).Str("path", l.tablePath).Msg("failed to persist table")
		}
	}
	return records
}

// episode plays one self-play game, updating the table after every move, and
// returns the number of moves played.
func (l *QLearner) episode() int {
	b := game.NewBoard()
	color := game.Black
	steps := 0

	for steps < l.maxSteps && !b.IsGameOver() {
		moves, ok := b.LegalMoves(color)
		if !ok { // Forced pass
			color = color.Opponent()
			continue
		}

		state := b.StateKey()
		sq := l.chooseTraining(state, moves)
		notation, _ := sq.Notation()

		if _, err := b.Apply(sq.Row, sq.Col, color); err != nil {
			log.Warn().Err(err).Msgf("learner: board-reported move %v failed to apply, ending episode", sq)
			break
		}
		steps++

		reward := l.heuristic.Fn()(b, color, l.matrix.Table())
		if b.IsGameOver() {
			if winner, decided := b.Winner(); decided {
				if winner == color {
					reward += WinReward
				} else {
					reward += LossReward
				}
			}
		}

		l.updateEntry(state, notation, reward, b.StateKey())
		color = color.Opponent()
	}
	return steps
}

// chooseTraining is the epsilon-greedy action rule: explore with probability
// epsilon or whenever the state is unknown or holds nothing better than the
// initial sentinel, exploit the best stored value otherwise.
func (l *QLearner) chooseTraining(state string, moves []game.Square) game.Square {
	actions, known := l.table[state]
	if !known {
		actions = make(map[string]int, len(moves))
		for _, sq := range moves {
			if notation, ok := sq.Notation(); ok {
				actions[notation] = InitialValue
			}
		}
		l.table[state] = actions
	}

	if !known || frand.Float64() < l.epsilon {
		return moves[frand.Intn(len(moves))]
	}
	if sq, ok := bestAction(actions); ok {
		return sq
	}
	return moves[frand.Intn(len(moves))]
}

// ChooseMove selects a live (non-training) move for color: the highest-valued
// known action for the current state, or a uniformly random legal move. The
// second result is false when the color has no legal move.
func (l *QLearner) ChooseMove(b *game.Board, color game.Cell) (game.Square, bool) {
	moves, ok := b.LegalMoves(color)
	if !ok {
		return game.Square{}, false
	}
	if actions, known := l.table[b.StateKey()]; known {
		if sq, ok := bestAction(actions); ok {
			return sq, true
		}
	}
	return moves[rand.Intn(len(moves))], true
}

// bestAction returns the highest-valued action above the initial sentinel.
func bestAction(actions map[string]int) (game.Square, bool) {
	entries := lo.Entries(actions)
	entries = lo.Filter(entries, func(e lo.Entry[string, int], _ int) bool {
		return e.Value > InitialValue
	})
	if len(entries) == 0 {
		return game.Square{}, false
	}
	best := lo.MaxBy(entries, func(a, b lo.Entry[string, int]) bool {
		return a.Value > b.Value
	})
	sq, ok := game.ParseNotation(best.Key)
	return sq, ok
}

// updateEntry applies the value update for (state, move) given the move's
// reward and the post-move state. Sentinel and missing lookups count as 0.
func (l *QLearner) updateEntry(state, move string, reward int, nextState string) {
	old := 0
	if value, ok := l.table[state][move]; ok && value != InitialValue {
		old = value
	}
	l.table[state][move] = update(old, reward, l.lambda, l.gamma, l.maxNext(nextState))
}

// maxNext is the best known value of the successor state, 0 when nothing is
// known. A stored negative value is knowledge, not absence, so the fold starts
// from the first non-sentinel entry rather than from 0.
func (l *QLearner) maxNext(state string) int {
	maxValue, found := 0, false
	for _, value := range l.table[state] {
		if value == InitialValue {
			continue
		}
		if !found || value > maxValue {
			maxValue = value
			found = true
		}
	}
	return maxValue
}

// update folds a reward into an old value, truncated to the stored integer
// representation.
func update(old, reward int, lambda, gamma float64, maxNext int) int {
	return int((1-lambda)*float64(old) + lambda*(float64(reward)+gamma*float64(maxNext)))
}
