package game

// Matrix is a fixed 8x8 positional weight table. Tables are selected by
// reference and never mutated.
type Matrix [Size][Size]int

// CornerMatrix weighs corners and edges aggressively and penalizes the
// squares that give a corner away.
var CornerMatrix = &Matrix{
	{100, -20, 10, 5, 5, 10, -20, 100},
	{-20, -50, -2, -2, -2, -2, -50, -20},
	{10, -2, -1, -1, -1, -1, -2, 10},
	{5, -2, -1, -1, -1, -1, -2, 5},
	{5, -2, -1, -1, -1, -1, -2, 5},
	{10, -2, -1, -1, -1, -1, -2, 10},
	{-20, -50, -2, -2, -2, -2, -50, -20},
	{100, -20, 10, 5, 5, 10, -20, 100},
}

// EdgeMatrix is a milder table that still favors corners but rewards stable
// edge and center play.
var EdgeMatrix = &Matrix{
	{50, -10, 8, 6, 6, 8, -10, 50},
	{-10, -25, 1, 1, 1, 1, -25, -10},
	{8, 1, 2, 2, 2, 2, 1, 8},
	{6, 1, 2, 3, 3, 2, 1, 6},
	{6, 1, 2, 3, 3, 2, 1, 6},
	{8, 1, 2, 2, 2, 2, 1, 8},
	{-10, -25, 1, 1, 1, 1, -25, -10},
	{50, -10, 8, 6, 6, 8, -10, 50},
}

// MatrixChoice selects one of the named weight tables.
type MatrixChoice int

const (
	ChooseCornerMatrix MatrixChoice = iota
	ChooseEdgeMatrix

	numMatrices
)

// Table returns the matrix the choice refers to.
func (m MatrixChoice) Table() *Matrix {
	if m == ChooseEdgeMatrix {
		return EdgeMatrix
	}
	return CornerMatrix
}

// Next cycles forward through the named tables.
func (m MatrixChoice) Next() MatrixChoice {
	return (m + 1) % numMatrices
}

// Prev cycles backward through the named tables.
func (m MatrixChoice) Prev() MatrixChoice {
	return (m + numMatrices - 1) % numMatrices
}

func (m MatrixChoice) String() string {
	if m == ChooseEdgeMatrix {
		return "edge"
	}
	return "corner"
}
