package progression

import (
	"gonum.org/v1/gonum/stat"

	"github.com/fretwork/tonecraft/theory/chord"
	"github.com/fretwork/tonecraft/theory/scale"
)

// Function classifies a chord's harmonic role inside the key.
type Function int

const (
	FunctionTonic Function = iota
	FunctionSubdominant
	FunctionDominant
	FunctionTonicPredominant
	FunctionChromatic
)

// String returns the function name.
func (f Function) String() string {
	switch f {
	case FunctionTonic:
		return "tonic"
	case FunctionSubdominant:
		return "subdominant"
	case FunctionDominant:
		return "dominant"
	case FunctionTonicPredominant:
		return "tonic-predominant"
	default:
		return "chromatic"
	}
}

// Transition describes the voice leading across one chord change.
type Transition struct {
	From        string `json:"from"`
	To          string `json:"to"`
	CommonTones int    `json:"common_tones"`
	Quality     string `json:"quality"` // disjunct, smooth, very smooth
}

// Analysis is the read-only classification of a finished progression.
type Analysis struct {
	Functions   []Function   `json:"functions"`
	Transitions []Transition `json:"transitions"`
	Complexity  Complexity   `json:"complexity"`
	Features    []string     `json:"features"`
	Cadence     string       `json:"cadence,omitempty"`

	ChromaticCount  int     `json:"chromatic_count"`
	MeanCommonTones float64 `json:"mean_common_tones"`
	Smoothness      float64 `json:"smoothness"` // stddev of common-tone counts
}

// Analyze classifies an existing progression against its source scale. The
// input is never mutated.
func Analyze(chords []chord.Chord, s *scale.Scale) *Analysis {
	a := &Analysis{}
	if len(chords) == 0 {
		a.Features = []string{}
		return a
	}

	layersSeen := make(map[chord.Layer]bool)
	a.Functions = make([]Function, len(chords))
	for i, ch := range chords {
		a.Functions[i] = classifyFunction(ch)
		if ch.Layer != chord.LayerMain {
			a.ChromaticCount++
			layersSeen[ch.Layer] = true
		}
	}

	commonCounts := make([]float64, 0, len(chords)-1)
	for i := 1; i < len(chords); i++ {
		ct := chord.CommonTones(chords[i-1], chords[i])
		commonCounts = append(commonCounts, float64(ct))
		a.Transitions = append(a.Transitions, Transition{
			From:        chords[i-1].Symbol,
			To:          chords[i].Symbol,
			CommonTones: ct,
			Quality:     voiceLeadingQuality(ct),
		})
	}
	if len(commonCounts) > 0 {
		a.MeanCommonTones = stat.Mean(commonCounts, nil)
		a.Smoothness = stat.StdDev(commonCounts, nil)
	}

	switch {
	case a.ChromaticCount == 0:
		a.Complexity = Simple
	case a.ChromaticCount <= 2:
		a.Complexity = Moderate
	default:
		a.Complexity = Complex
	}

	a.Features = []string{}
	if layersSeen[chord.LayerSecondaryDominant] {
		a.Features = append(a.Features, "Contains secondary dominants")
	}
	if layersSeen[chord.LayerModalInterchange] {
		a.Features = append(a.Features, "Contains modal interchange (borrowed chords)")
	}
	if layersSeen[chord.LayerNeapolitan] {
		a.Features = append(a.Features, "Contains Neapolitan chord")
	}
	if layersSeen[chord.LayerSecondaryDiminished] {
		a.Features = append(a.Features, "Contains secondary diminished chords")
	}

	if feature, cadence := detectCadence(chords); cadence != "" {
		a.Cadence = cadence
		a.Features = append(a.Features, feature)
	}
	return a
}

// classifyFunction maps a chord to its harmonic role: chromatic layers are
// chromatic by definition, diatonic degrees follow the usual functional
// grouping.
func classifyFunction(ch chord.Chord) Function {
	if ch.Layer != chord.LayerMain {
		return FunctionChromatic
	}
	switch ch.Degree {
	case 1:
		return FunctionTonic
	case 5, 7:
		return FunctionDominant
	case 2, 4:
		return FunctionSubdominant
	case 3, 6:
		return FunctionTonicPredominant
	default:
		return FunctionTonic
	}
}

// voiceLeadingQuality grades a transition by shared tones.
func voiceLeadingQuality(commonTones int) string {
	switch {
	case commonTones == 0:
		return "disjunct"
	case commonTones >= 2:
		return "very smooth"
	default:
		return "smooth"
	}
}

// detectCadence inspects the final two chords for the closing formulas.
func detectCadence(chords []chord.Chord) (feature, cadence string) {
	if len(chords) < 2 {
		return "", ""
	}
	prev := chords[len(chords)-2]
	last := chords[len(chords)-1]
	if prev.Layer != chord.LayerMain || last.Layer != chord.LayerMain || last.Degree != 1 {
		return "", ""
	}
	switch prev.Degree {
	case 5:
		return "Perfect authentic cadence (V-I)", "authentic"
	case 4:
		return "Plagal cadence (IV-I)", "plagal"
	}
	return "", ""
}
