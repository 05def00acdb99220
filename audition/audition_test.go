package audition

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fretwork/tonecraft/theory/chord"
)

func TestNoteFrequency(t *testing.T) {
	f, ok := NoteFrequency("A", 4)
	require.True(t, ok)
	assert.InDelta(t, 440.0, f, 1e-9)

	f, ok = NoteFrequency("A", 3)
	require.True(t, ok)
	assert.InDelta(t, 220.0, f, 1e-9)

	f, ok = NoteFrequency("C", 4)
	require.True(t, ok)
	assert.InDelta(t, 261.63, f, 0.01)

	_, ok = NoteFrequency("X", 4)
	assert.False(t, ok)
}

func TestChordFrequenciesAscend(t *testing.T) {
	// A minor voiced from octave 4 is A4, C5, E5: later tones cross the
	// octave boundary instead of folding back down.
	am := chord.New([]string{"A", "C", "E"}, 6, chord.KindTriad, chord.LayerMain)
	freqs := ChordFrequencies(am, 4)
	require.Len(t, freqs, 3)

	assert.InDelta(t, 440.0, freqs[0], 1e-9)
	assert.InDelta(t, 523.25, freqs[1], 0.01)
	assert.InDelta(t, 659.26, freqs[2], 0.01)

	for i := 1; i < len(freqs); i++ {
		assert.Greater(t, freqs[i], freqs[i-1])
	}
}

func TestRender(t *testing.T) {
	samples := Render([]float64{440}, 8000, 0.5)
	require.Len(t, samples, 4000)

	// Fades pin the endpoints to silence.
	assert.InDelta(t, 0.0, samples[0], 1e-9)
	assert.InDelta(t, 0.0, samples[len(samples)-1], 1e-3)

	assert.Nil(t, Render(nil, 8000, 0.5))
	assert.Nil(t, Render([]float64{440}, 0, 0.5))
	assert.Nil(t, Render([]float64{440}, 8000, 0))
}

func TestPitchClassProfileOfRenderedChord(t *testing.T) {
	// A rendered C major triad concentrates its energy on C, E and G.
	c := chord.New([]string{"C", "E", "G"}, 1, chord.KindTriad, chord.LayerMain)
	samples := Render(ChordFrequencies(c, 4), 8192, 1.0)
	profile := PitchClassProfile(samples, 8192)
	require.Len(t, profile, 12)

	// C, E and G dominate every other class despite spectral leakage.
	chordClasses := map[int]bool{0: true, 4: true, 7: true}
	for class, v := range profile {
		if chordClasses[class] {
			continue
		}
		assert.Less(t, v, profile[0], "class %d louder than C: %v", class, profile)
		assert.Less(t, v, profile[4], "class %d louder than E: %v", class, profile)
		assert.Less(t, v, profile[7], "class %d louder than G: %v", class, profile)
	}
	chordShare := profile[0] + profile[4] + profile[7]
	assert.Greater(t, chordShare, 0.5, "profile %v", profile)

	total := 0.0
	for _, v := range profile {
		total += v
	}
	assert.InDelta(t, 1.0, total, 1e-9)
}

func TestPitchClassProfileEmpty(t *testing.T) {
	profile := PitchClassProfile(nil, 44100)
	for _, v := range profile {
		assert.Zero(t, v)
	}
}
