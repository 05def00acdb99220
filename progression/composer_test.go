package progression

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fretwork/tonecraft/theory/chord"
	"github.com/fretwork/tonecraft/theory/scale"
)

func mustScale(t *testing.T, root, typeKey string) *scale.Scale {
	t.Helper()
	s, err := scale.Generate(root, typeKey)
	require.NoError(t, err)
	return s
}

func newTestComposer(t *testing.T, s *scale.Scale, length int, complexity Complexity, style string, seed int64) *Composer {
	t.Helper()
	c, err := NewComposerWithRand(s, length, complexity, style, rand.New(rand.NewSource(seed)))
	require.NoError(t, err)
	return c
}

func isTonic(s *scale.Scale, ch chord.Chord) bool {
	return ch.Layer == chord.LayerMain && ch.Degree == 1
}

func TestComposerValidation(t *testing.T) {
	s := mustScale(t, "C", "major")

	_, err := NewComposer(s, 0, Simple, "pop")
	assert.ErrorIs(t, err, ErrBadLength)

	_, err = NewComposer(s, 8, Simple, "polka")
	assert.ErrorIs(t, err, ErrUnknownStyle)
}

func TestComposeExactLengthAndTonicStart(t *testing.T) {
	s := mustScale(t, "C", "major")

	for seed := int64(0); seed < 50; seed++ {
		c := newTestComposer(t, s, 8, Simple, "pop", seed)
		result := c.Compose()

		require.Len(t, result.Chords, 8, "seed %d", seed)
		assert.True(t, isTonic(s, result.Chords[0]), "seed %d: first chord %s", seed, result.Chords[0].Symbol)
		assert.NotEmpty(t, result.ID)
		assert.Equal(t, "pop", result.Style)
		assert.Equal(t, "C", result.Root)
	}
}

func TestComposeDeterministicForSeed(t *testing.T) {
	s := mustScale(t, "A", "naturalMinor")

	a := newTestComposer(t, s, 12, Complex, "jazz", 42).Compose()
	b := newTestComposer(t, s, 12, Complex, "jazz", 42).Compose()

	assert.Equal(t, a.Chords, b.Chords)
	assert.Equal(t, a.Strategy, b.Strategy)
}

func TestSimplePopStaysMostlyDiatonic(t *testing.T) {
	s := mustScale(t, "C", "major")

	total, chromatic := 0, 0
	for seed := int64(0); seed < 100; seed++ {
		chords := newTestComposer(t, s, 8, Simple, "pop", seed).Compose().Chords
		for _, ch := range chords {
			total++
			if ch.Layer != chord.LayerMain {
				chromatic++
			}
		}
	}
	require.Positive(t, total)
	share := float64(chromatic) / float64(total)
	assert.LessOrEqual(t, share, 0.15, "chromatic share %.3f", share)
}

func TestLastChordIsUsuallyTonic(t *testing.T) {
	s := mustScale(t, "G", "major")

	const trials = 300
	tonicEndings := 0
	for seed := int64(0); seed < trials; seed++ {
		chords := newTestComposer(t, s, 8, Moderate, "pop", seed).Compose().Chords
		if isTonic(s, chords[len(chords)-1]) {
			tonicEndings++
		}
	}
	share := float64(tonicEndings) / float64(trials)
	assert.GreaterOrEqual(t, share, 0.85, "tonic ending share %.3f", share)
}

func TestWalkForcesSecondaryResolution(t *testing.T) {
	s := mustScale(t, "C", "major")

	for seed := int64(0); seed < 100; seed++ {
		c := newTestComposer(t, s, 16, Complex, "jazz", seed)
		chords := c.composeWalk()
		require.Len(t, chords, 16)

		for i := 0; i < len(chords)-2; i++ {
			ch := chords[i]
			if ch.Layer != chord.LayerSecondaryDominant && ch.Layer != chord.LayerSecondaryDiminished {
				continue
			}
			next := chords[i+1]
			assert.True(t, sameClass(next.Root, ch.ResolvesTo),
				"seed %d: %s at %d resolves to %s but next is %s", seed, ch.Symbol, i, ch.ResolvesTo, next.Symbol)
		}
	}
}

func TestWalkCadenceApproach(t *testing.T) {
	s := mustScale(t, "C", "major")

	// Folk prefers the plagal cadence: the penultimate chord of the walk is
	// IV whenever the slot is not consumed by a forced resolution.
	for seed := int64(0); seed < 50; seed++ {
		c := newTestComposer(t, s, 8, Simple, "folk", seed)
		chords := c.composeWalk()
		penultimate := chords[len(chords)-2]
		assert.Equal(t, 4, penultimate.Degree, "seed %d: got %s", seed, penultimate.Symbol)
	}
}

func TestTemplateExpansionTilesToLength(t *testing.T) {
	s := mustScale(t, "C", "major")

	for seed := int64(0); seed < 50; seed++ {
		c := newTestComposer(t, s, 10, Moderate, "blues", seed)
		chords := c.composeFromTemplate()
		assert.Len(t, chords, 10, "seed %d", seed)
		for _, ch := range chords {
			assert.NotEmpty(t, ch.Symbol)
		}
	}
}

func TestResolutionAnnotationIsSoft(t *testing.T) {
	s := mustScale(t, "C", "major")
	c := newTestComposer(t, s, 4, Simple, "pop", 1)

	dominants := c.layers.SecondaryDominants
	require.NotEmpty(t, dominants)
	vOfII := dominants[0] // resolves to D

	// V/ii followed by the tonic is unresolved and gets annotated; followed
	// by ii it stays clean. The sequence itself is never rewritten.
	chords := []chord.Chord{c.tonic(), vOfII, c.tonic(), c.degreeChord(1)}
	c.annotateResolutions(chords)
	assert.Equal(t, "D", chords[1].ExpectsResolution)

	chords = []chord.Chord{c.tonic(), vOfII, c.degreeChord(1), c.tonic()}
	c.annotateResolutions(chords)
	assert.Empty(t, chords[1].ExpectsResolution)
}

func TestNeapolitanAnnotation(t *testing.T) {
	s := mustScale(t, "C", "major")
	c := newTestComposer(t, s, 4, Simple, "pop", 1)

	neapolitan := c.layers.Neapolitan[0]
	v := c.degreeChord(4)
	iv := c.degreeChord(3)

	chords := []chord.Chord{c.tonic(), neapolitan, v, c.tonic()}
	c.annotateResolutions(chords)
	assert.Empty(t, chords[1].ExpectsResolution)

	chords = []chord.Chord{c.tonic(), neapolitan, iv, c.tonic()}
	c.annotateResolutions(chords)
	assert.Equal(t, "V or I", chords[1].ExpectsResolution)
}

func TestComposeOnPentatonicStaysDiatonic(t *testing.T) {
	// Pentatonic scales produce no secondary layers; the walk must still
	// fill every slot from the main layer.
	s := mustScale(t, "A", "minorPentatonic")

	for seed := int64(0); seed < 30; seed++ {
		c := newTestComposer(t, s, 8, Complex, "experimental", seed)
		chords := c.composeWalk()
		require.Len(t, chords, 8)
		for _, ch := range chords {
			assert.NotEqual(t, chord.LayerSecondaryDominant, ch.Layer)
			assert.NotEqual(t, chord.LayerSecondaryDiminished, ch.Layer)
		}
	}
}

func TestGenerateConvenience(t *testing.T) {
	s := mustScale(t, "E", "naturalMinor")

	chords, err := Generate(s, 4, Moderate, "metal")
	require.NoError(t, err)
	assert.Len(t, chords, 4)
}
