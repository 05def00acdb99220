package scale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCMajor(t *testing.T) {
	s, err := Generate("C", "major")
	require.NoError(t, err)

	assert.Equal(t, []string{"C", "D", "E", "F", "G", "A", "B"}, s.Notes)
	assert.Equal(t, []string{"1", "2", "3", "4", "5", "6", "7"}, s.Degrees)
	assert.Equal(t, []int{0, 2, 4, 5, 7, 9, 11}, s.Intervals)
	assert.Equal(t, "C", s.Root)
	assert.Equal(t, "major", s.Type)
}

func TestGenerateANaturalMinor(t *testing.T) {
	s, err := Generate("A", "naturalMinor")
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B", "C", "D", "E", "F", "G"}, s.Notes)
}

func TestGenerateFlatKeySpelling(t *testing.T) {
	s, err := Generate("Bb", "major")
	require.NoError(t, err)

	assert.Equal(t, []string{"Bb", "C", "D", "Eb", "F", "G", "A"}, s.Notes)
	assert.Equal(t, "Bb", s.Root)
}

func TestGenerateNonHeptatonicLengths(t *testing.T) {
	tests := []struct {
		typeKey string
		length  int
	}{
		{typeKey: "majorPentatonic", length: 5},
		{typeKey: "minorPentatonic", length: 5},
		{typeKey: "blues", length: 6},
		{typeKey: "wholeTone", length: 6},
		{typeKey: "diminished", length: 8},
	}

	for _, tt := range tests {
		t.Run(tt.typeKey, func(t *testing.T) {
			s, err := Generate("C", tt.typeKey)
			require.NoError(t, err)
			assert.Len(t, s.Notes, tt.length)
			assert.Len(t, s.Degrees, tt.length)
			assert.Len(t, s.Intervals, tt.length)
			assert.Equal(t, 0, s.Intervals[0])
		})
	}
}

func TestGenerateErrors(t *testing.T) {
	_, err := Generate("X", "major")
	assert.ErrorIs(t, err, ErrUnknownNote)

	_, err = Generate("C", "superLocrian")
	assert.ErrorIs(t, err, ErrUnknownType)
}

func TestGenerateIdempotent(t *testing.T) {
	a, err := Generate("E", "dorian")
	require.NoError(t, err)
	b, err := Generate("E", "dorian")
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestMembership(t *testing.T) {
	s, err := Generate("C", "major")
	require.NoError(t, err)

	assert.True(t, s.Contains("G"))
	assert.False(t, s.Contains("F#"))
	assert.False(t, s.Contains("X"))
	assert.Equal(t, 4, s.IndexOfClass(7)) // G sits at degree 5
	assert.Equal(t, -1, s.IndexOfClass(6))
}

func TestByCategory(t *testing.T) {
	grouped := ByCategory()

	require.NotEmpty(t, grouped[CategoryMajorModes])
	require.NotEmpty(t, grouped[CategoryPentatonic])

	total := 0
	for _, patterns := range grouped {
		total += len(patterns)
	}
	assert.Equal(t, len(Keys()), total)
}

func TestCatalogInvariants(t *testing.T) {
	// Offsets are strictly increasing from 0 and degree labels stay parallel.
	for _, key := range Keys() {
		p, ok := Lookup(key)
		require.True(t, ok)
		require.Equal(t, len(p.Intervals), len(p.Degrees), key)
		assert.Equal(t, 0, p.Intervals[0], key)
		for i := 1; i < len(p.Intervals); i++ {
			assert.Greater(t, p.Intervals[i], p.Intervals[i-1], key)
		}
	}
}
