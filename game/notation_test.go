package game

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseNotation(t *testing.T) {
	t.Run("accepts digit row and letter column", func(t *testing.T) {
		sq, ok := ParseNotation("0A")
		require.True(t, ok)
		require.Equal(t, Square{Row: 0, Col: 0}, sq)

		sq, ok = ParseNotation("7H")
		require.True(t, ok)
		require.Equal(t, Square{Row: 7, Col: 7}, sq)
	})

	t.Run("column letter is case-insensitive", func(t *testing.T) {
		upper, ok := ParseNotation("3C")
		require.True(t, ok)
		lower, ok := ParseNotation("3c")
		require.True(t, ok)
		require.Equal(t, upper, lower)
	})

	t.Run("rejects malformed strings", func(t *testing.T) {
		for _, s := range []string{"", "3", "3CC", "A3", "8A", "9H", "0I", "0Z", "xy"} {
			_, ok := ParseNotation(s)
			require.False(t, ok, "%q should not parse", s)
		}
	})
}

func TestNotationRoundTrip(t *testing.T) {
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			s := fmt.Sprintf("%d%c", row, 'A'+col)
			sq, ok := ParseNotation(s)
			require.True(t, ok, "%q should parse", s)

			back, ok := sq.Notation()
			require.True(t, ok)
			require.Equal(t, s, back, "round trip should reproduce %q", s)
		}
	}

	_, ok := Square{Row: -1, Col: 0}.Notation()
	require.False(t, ok, "off-board squares have no notation")
}
