package game

// Move notation is two characters: a digit row 0-7 followed by a column
// letter A-H. The column letter is case-insensitive on input and uppercase on
// output, so ParseNotation and Notation round-trip for every valid string.

// ParseNotation converts a notation string to a square. The second result is
// false for anything that is not exactly a digit row followed by an in-range
// column letter.
func ParseNotation(s string) (Square, bool) {
	if len(s) != 2 {
		return Square{}, false
	}
	row := int(s[0] - '0')
	if row < 0 || row >= Size {
		return Square{}, false
	}
	col := s[1]
	if col >= 'a' && col <= 'z' {
		col -= 'a' - 'A'
	}
	if col < 'A' || col >= 'A'+Size {
		return Square{}, false
	}
	return Square{Row: row, Col: int(col - 'A')}, true
}

// Notation converts a square to its notation string. The second result is
// false when the square is outside the board.
func (sq Square) Notation() (string, bool) {
	if !inBounds(sq.Row, sq.Col) {
		return "", false
	}
	return string([]byte{'0' + byte(sq.Row), 'A' + byte(sq.Col)}), true
}
