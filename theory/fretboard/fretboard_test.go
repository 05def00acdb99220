package fretboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fretwork/tonecraft/theory/scale"
)

func findPosition(positions []Position, str, fret int) (Position, bool) {
	for _, p := range positions {
		if p.String == str && p.Fret == fret {
			return p, true
		}
	}
	return Position{}, false
}

func TestPositionsCMajorStandardTuning(t *testing.T) {
	s, err := scale.Generate("C", "major")
	require.NoError(t, err)

	positions := Positions(s, StandardTuning, 12)
	require.NotEmpty(t, positions)

	// Low E string, fret 3 sounds G: scale degree 5, not the root.
	p, ok := findPosition(positions, 6, 3)
	require.True(t, ok)
	assert.Equal(t, "G", p.Note)
	assert.Equal(t, "5", p.Degree)
	assert.Equal(t, 7, p.Interval)
	assert.False(t, p.IsRoot)

	// Low E string, fret 8 sounds C: the root.
	p, ok = findPosition(positions, 6, 8)
	require.True(t, ok)
	assert.Equal(t, "C", p.Note)
	assert.True(t, p.IsRoot)

	// F# is not in C major; low E fret 2 must be absent.
	_, ok = findPosition(positions, 6, 2)
	assert.False(t, ok)
}

func TestPositionsCoverEveryString(t *testing.T) {
	s, err := scale.Generate("A", "minorPentatonic")
	require.NoError(t, err)

	positions := Positions(s, StandardTuning, 12)
	seen := make(map[int]int)
	for _, p := range positions {
		seen[p.String]++
		assert.True(t, s.Contains(p.Note))
		assert.GreaterOrEqual(t, p.Fret, 0)
		assert.LessOrEqual(t, p.Fret, 12)
	}
	for str := 1; str <= 6; str++ {
		assert.Greater(t, seen[str], 0, "string %d has no positions", str)
	}
}

func TestPositionsDegenerateInputs(t *testing.T) {
	s, err := scale.Generate("C", "major")
	require.NoError(t, err)

	assert.Nil(t, Positions(nil, StandardTuning, 12))
	assert.Nil(t, Positions(s, nil, 12))
	assert.Nil(t, Positions(s, StandardTuning, -1))

	// Unknown open-string names are skipped, not fatal.
	positions := Positions(s, []string{"E", "X"}, 5)
	for _, p := range positions {
		assert.Equal(t, 2, p.String)
	}
}
