package game

// Evaluate scores a board from one color's perspective. Higher is better for
// that color. Evaluators never mutate the board and their result is used
// directly as a search comparison key.
type Evaluate func(b *Board, color Cell, m *Matrix) int

// Heuristic names one of the evaluator variants.
type Heuristic int

const (
	Absolute Heuristic = iota
	Weighted
	Mobility
	Mixed
	Global

	numHeuristics
)

// Next cycles forward through the variants.
func (h Heuristic) Next() Heuristic {
	return (h + 1) % numHeuristics
}

// Prev cycles backward through the variants.
func (h Heuristic) Prev() Heuristic {
	return (h + numHeuristics - 1) % numHeuristics
}

func (h Heuristic) String() string {
	switch h {
	case Absolute:
		return "absolute"
	case Weighted:
		return "weighted"
	case Mobility:
		return "mobility"
	case Mixed:
		return "mixed"
	case Global:
		return "global"
	default:
		return "unknown"
	}
}

// Fn returns the evaluator implementing the variant.
func (h Heuristic) Fn() Evaluate {
	switch h {
	case Weighted:
		return EvaluateWeighted
	case Mobility:
		return EvaluateMobility
	case Mixed:
		return EvaluateMixed
	case Global:
		return EvaluateGlobal
	default:
		return EvaluateAbsolute
	}
}

// EvaluateAbsolute is the disc differential: own discs minus opponent discs.
func EvaluateAbsolute(b *Board, color Cell, _ *Matrix) int {
	return b.Discs(color) - b.Discs(color.Opponent())
}

// EvaluateWeighted sums the weight table entries under the color's discs.
func EvaluateWeighted(b *Board, color Cell, m *Matrix) int {
	score := 0
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if b.grid[r][c] == color {
				score += m[r][c]
			}
		}
	}
	return score
}

// EvaluateMobility is the legal-move differential. A color with no legal move
// counts as zero.
func EvaluateMobility(b *Board, color Cell, _ *Matrix) int {
	own, _ := b.LegalMoves(color)
	other, _ := b.LegalMoves(color.Opponent())
	return len(own) - len(other)
}

// EvaluateMixed keys off the game phase: positional weights in the opening,
// mobility in the middle game, raw disc count from move 40 on.
func EvaluateMixed(b *Board, color Cell, m *Matrix) int {
	switch {
	case b.Turn() < 20:
		return EvaluateWeighted(b, color, m)
	case b.Turn() < 40:
		return EvaluateMobility(b, color, m)
	default:
		return EvaluateAbsolute(b, color, m)
	}
}

// EvaluateGlobal is the unweighted sum of the absolute, weighted and mobility
// scores.
func EvaluateGlobal(b *Board, color Cell, m *Matrix) int {
	return EvaluateAbsolute(b, color, m) +
		EvaluateWeighted(b, color, m) +
		EvaluateMobility(b, color, m)
}
