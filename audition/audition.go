// Package audition turns chords into the data an audio collaborator needs:
// equal-temperament frequencies, a short rendered preview buffer, and a
// pitch-class energy profile of rendered audio for sanity checks.
package audition

import (
	"math"
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/floats"

	"github.com/fretwork/tonecraft/theory/chord"
	"github.com/fretwork/tonecraft/theory/pitch"
)

const (
	// concert pitch reference: A4 = 440 Hz = MIDI 69
	referenceFreq = 440.0
	referenceMIDI = 69

	fadeSeconds    = 0.01
	minProfileFreq = 25.0
	maxProfileFreq = 5000.0
)

// NoteFrequency returns the equal-temperament frequency of a note at the
// given octave (scientific pitch notation: A4 = 440). The second return is
// false for unrecognized note names.
func NoteFrequency(note string, octave int) (float64, bool) {
	class, ok := pitch.NoteIndex(note)
	if !ok {
		return 0, false
	}
	midi := (octave+1)*12 + class
	return referenceFreq * math.Pow(2, float64(midi-referenceMIDI)/12.0), true
}

// ChordFrequencies voices a chord in close position starting at the given
// octave: each successive tone sits at or above the previous one.
func ChordFrequencies(ch chord.Chord, octave int) []float64 {
	freqs := make([]float64, 0, len(ch.Notes))
	prevClass := -1
	current := octave
	for _, note := range ch.Notes {
		class, ok := pitch.NoteIndex(note)
		if !ok {
			continue
		}
		if class <= prevClass {
			current++
		}
		prevClass = class
		midi := (current+1)*12 + class
		freqs = append(freqs, referenceFreq*math.Pow(2, float64(midi-referenceMIDI)/12.0))
	}
	return freqs
}

// Render mixes the given frequencies into a mono sine buffer with a short
// linear fade at both ends. Duration is in seconds.
func Render(freqs []float64, sampleRate int, duration float64) []float64 {
	if len(freqs) == 0 || sampleRate <= 0 || duration <= 0 {
		return nil
	}
	n := int(float64(sampleRate) * duration)
	samples := make([]float64, n)
	amp := 1.0 / float64(len(freqs))
	for _, f := range freqs {
		step := 2 * math.Pi * f / float64(sampleRate)
		for i := range samples {
			samples[i] += amp * math.Sin(step*float64(i))
		}
	}

	fade := int(fadeSeconds * float64(sampleRate))
	if fade*2 > n {
		fade = n / 2
	}
	for i := 0; i < fade; i++ {
		g := float64(i) / float64(fade)
		samples[i] *= g
		samples[n-1-i] *= g
	}
	return samples
}

// PitchClassProfile computes the normalized pitch-class energy distribution
// of a sample buffer: FFT magnitudes are binned onto the nearest chromatic
// class across the musically useful range. The result sums to 1 when any
// energy is present.
func PitchClassProfile(samples []float64, sampleRate int) []float64 {
	profile := make([]float64, pitch.ClassCount)
	if len(samples) == 0 || sampleRate <= 0 {
		return profile
	}

	spectrum := fft.FFTReal(samples)
	binWidth := float64(sampleRate) / float64(len(samples))
	for bin := 1; bin < len(spectrum)/2; bin++ {
		freq := float64(bin) * binWidth
		if freq < minProfileFreq || freq > maxProfileFreq {
			continue
		}
		midi := math.Round(float64(referenceMIDI) + 12*math.Log2(freq/referenceFreq))
		class := int(midi) % pitch.ClassCount
		if class < 0 {
			class += pitch.ClassCount
		}
		profile[class] += cmplx.Abs(spectrum[bin])
	}

	if total := floats.Sum(profile); total > 1e-12 {
		floats.Scale(1/total, profile)
	}
	return profile
}
