package game

import "errors"

var (
	// ErrOutOfBounds: a coordinate is outside [0,8).
	ErrOutOfBounds = errors.New("coordinates out of bounds")
	// ErrOccupiedCell: the target cell already holds a disc.
	ErrOccupiedCell = errors.New("cell is already occupied")
	// ErrInvalidColor: the operation was requested with the empty marker.
	ErrInvalidColor = errors.New("color is not playable")
	// ErrNoCapturingLine: the placement would capture no opposing discs.
	ErrNoCapturingLine = errors.New("move captures no discs")
)
