package pitch

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoteIndex(t *testing.T) {
	tests := []struct {
		name     string
		note     string
		expected int
		ok       bool
	}{
		{name: "natural", note: "C", expected: 0, ok: true},
		{name: "sharp", note: "F#", expected: 6, ok: true},
		{name: "flat alias", note: "Bb", expected: 10, ok: true},
		{name: "flat alias Db", note: "Db", expected: 1, ok: true},
		{name: "highest class", note: "B", expected: 11, ok: true},
		{name: "unknown", note: "H", expected: -1, ok: false},
		{name: "empty", note: "", expected: -1, ok: false},
		{name: "lowercase rejected", note: "c", expected: -1, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, ok := NoteIndex(tt.note)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, idx)
		})
	}
}

func TestTransposeRoundTrip(t *testing.T) {
	// noteIndex(transpose(root, n)) == (noteIndex(root)+n) mod 12 for every
	// root and a spread of positive and negative distances.
	for class := 0; class < ClassCount; class++ {
		root := SharpName(class)
		for _, n := range []int{-25, -12, -1, 0, 1, 5, 7, 11, 12, 26} {
			t.Run(fmt.Sprintf("%s%+d", root, n), func(t *testing.T) {
				got := Transpose(root, n)
				idx, ok := NoteIndex(got)
				require.True(t, ok)
				want := ((class+n)%ClassCount + ClassCount) % ClassCount
				assert.Equal(t, want, idx)
			})
		}
	}
}

func TestTransposeUnknownNote(t *testing.T) {
	assert.Equal(t, "", Transpose("X", 3))
}

func TestIntervalDirectionality(t *testing.T) {
	iv, ok := Interval("C", "E")
	require.True(t, ok)
	assert.Equal(t, 4, iv)

	iv, ok = Interval("E", "C")
	require.True(t, ok)
	assert.Equal(t, 8, iv)

	_, ok = Interval("C", "X")
	assert.False(t, ok)
}

func TestIntervalComplement(t *testing.T) {
	// interval(a,b) + interval(b,a) == 0 mod 12 unless a == b.
	for i := 0; i < ClassCount; i++ {
		for j := 0; j < ClassCount; j++ {
			a, b := SharpName(i), SharpName(j)
			ab, ok := Interval(a, b)
			require.True(t, ok)
			ba, ok := Interval(b, a)
			require.True(t, ok)
			if i == j {
				assert.Zero(t, ab)
				assert.Zero(t, ba)
			} else {
				assert.Equal(t, 0, (ab+ba)%ClassCount)
			}
		}
	}
}

func TestSpell(t *testing.T) {
	tests := []struct {
		note     string
		root     string
		expected string
	}{
		{note: "A#", root: "Bb", expected: "Bb"},
		{note: "A#", root: "C", expected: "A#"},
		{note: "C#", root: "Db", expected: "Db"},
		{note: "G", root: "Eb", expected: "G"},
		{note: "D#", root: "F", expected: "Eb"},
		{note: "F#", root: "G", expected: "F#"},
	}

	for _, tt := range tests {
		t.Run(tt.note+" in "+tt.root, func(t *testing.T) {
			assert.Equal(t, tt.expected, Spell(tt.note, tt.root))
		})
	}

	assert.Equal(t, "", Spell("X", "C"))
}

func TestIsFlatKey(t *testing.T) {
	for _, root := range []string{"F", "Bb", "Eb", "Ab", "Db", "Gb"} {
		assert.True(t, IsFlatKey(root), root)
	}
	for _, root := range []string{"C", "G", "D", "A", "E", "B", "F#"} {
		assert.False(t, IsFlatKey(root), root)
	}
}
