package chord

import (
	"strconv"

	"github.com/fretwork/tonecraft/theory/pitch"
	"github.com/fretwork/tonecraft/theory/scale"
)

// Kind tags the structural origin of a chord.
type Kind int

const (
	KindTriad Kind = iota
	KindSeventh
	KindSecondaryDominant
	KindModalInterchange
	KindNeapolitan
	KindSecondaryDiminished
)

// String returns the kind tag name.
func (k Kind) String() string {
	switch k {
	case KindTriad:
		return "triad"
	case KindSeventh:
		return "seventh"
	case KindSecondaryDominant:
		return "secondaryDominant"
	case KindModalInterchange:
		return "modalInterchange"
	case KindNeapolitan:
		return "neapolitan"
	case KindSecondaryDiminished:
		return "secondaryDiminished"
	default:
		return "unknown"
	}
}

// Layer tags a chord's provenance during progression assembly.
type Layer int

const (
	LayerMain Layer = iota
	LayerSecondaryDominant
	LayerModalInterchange
	LayerNeapolitan
	LayerSecondaryDiminished
)

// String returns the layer tag name.
func (l Layer) String() string {
	switch l {
	case LayerMain:
		return "main"
	case LayerSecondaryDominant:
		return "secondaryDominant"
	case LayerModalInterchange:
		return "modalInterchange"
	case LayerNeapolitan:
		return "neapolitan"
	case LayerSecondaryDiminished:
		return "secondaryDiminished"
	default:
		return "unknown"
	}
}

// Chord is a stacked set of 3 or 4 scale tones with derived quality and
// rendering. Quality is never stored independently of the notes: it is
// always recomputed from the interval fingerprint at construction.
type Chord struct {
	Root    string   `json:"root"`
	Notes   []string `json:"notes"`
	Quality Quality  `json:"quality"`
	Symbol  string   `json:"symbol"`
	Numeral string   `json:"numeral"`
	Degree  int      `json:"degree"` // 1-based scale degree
	Kind    Kind     `json:"kind"`
	Layer   Layer    `json:"layer"`

	// ResolvesTo names the target note for chords with an implied
	// resolution (secondary dominants and diminished).
	ResolvesTo string `json:"resolves_to,omitempty"`
	// Hint carries a textual function note (Neapolitan only).
	Hint string `json:"hint,omitempty"`
	// ExpectsResolution is set by the progression consistency pass when a
	// chromatic chord is not followed by its expected target.
	ExpectsResolution string `json:"expects_resolution,omitempty"`
}

// Classify derives the quality of a 3- or 4-note stack from the ascending
// intervals between the first note and the rest.
func Classify(notes []string) Quality {
	switch len(notes) {
	case 3:
		third, ok1 := pitch.Interval(notes[0], notes[1])
		fifth, ok2 := pitch.Interval(notes[0], notes[2])
		if !ok1 || !ok2 {
			return Unknown
		}
		if q, ok := triadFingerprints[[2]int{third, fifth}]; ok {
			return q
		}
	case 4:
		third, ok1 := pitch.Interval(notes[0], notes[1])
		fifth, ok2 := pitch.Interval(notes[0], notes[2])
		seventh, ok3 := pitch.Interval(notes[0], notes[3])
		if !ok1 || !ok2 || !ok3 {
			return Unknown
		}
		if q, ok := seventhFingerprints[[3]int{third, fifth, seventh}]; ok {
			return q
		}
	}
	return Unknown
}

// Symbol renders a chord symbol for a root and quality. Unknown qualities
// fall back to the bare root name.
func Symbol(root string, q Quality) string {
	return root + q.Suffix()
}

var numerals = [...]string{"I", "II", "III", "IV", "V", "VI", "VII"}

// Numeral renders the Roman numeral for a 1-based scale degree: lowercase
// for minor and diminished qualities, with the usual ring decorations.
// Degrees beyond VII (octatonic scales) render as bare numbers.
func Numeral(degree int, q Quality) string {
	if degree < 1 {
		return ""
	}
	var base string
	if degree <= len(numerals) {
		base = numerals[degree-1]
	} else {
		base = strconv.Itoa(degree)
	}
	if q.lowercased() {
		base = lower(base)
	}
	switch q {
	case Diminished, Diminished7:
		base += "°"
	case HalfDiminished7:
		base += "ø"
	}
	return base
}

func lower(s string) string {
	b := []byte(s)
	for i := range b {
		if b[i] >= 'A' && b[i] <= 'Z' {
			b[i] += 'a' - 'A'
		}
	}
	return string(b)
}

// New builds a chord record, deriving quality, symbol and numeral from the
// note stack.
func New(notes []string, degree int, kind Kind, layer Layer) Chord {
	q := Classify(notes)
	return Chord{
		Root:    notes[0],
		Notes:   notes,
		Quality: q,
		Symbol:  Symbol(notes[0], q),
		Numeral: Numeral(degree, q),
		Degree:  degree,
		Kind:    kind,
		Layer:   layer,
	}
}

// HarmonizeTriads stacks diatonic thirds within the scale's own note
// sequence: root = notes[i], third = notes[i+2], fifth = notes[i+4], all mod
// scale length. For non-heptatonic scales this produces unconventional
// stacks on purpose; the Unknown quality covers them. Panics on a nil or
// empty scale: that is a contract violation between components, not a user
// condition.
func HarmonizeTriads(s *scale.Scale) []Chord {
	mustBeUsable(s)
	n := s.Len()
	chords := make([]Chord, 0, n)
	for i := 0; i < n; i++ {
		notes := []string{s.Notes[i], s.Notes[(i+2)%n], s.Notes[(i+4)%n]}
		chords = append(chords, New(notes, i+1, KindTriad, LayerMain))
	}
	return chords
}

// HarmonizeSevenths extends the triad stacking with a fourth tone at
// notes[i+6] mod scale length.
func HarmonizeSevenths(s *scale.Scale) []Chord {
	mustBeUsable(s)
	n := s.Len()
	chords := make([]Chord, 0, n)
	for i := 0; i < n; i++ {
		notes := []string{s.Notes[i], s.Notes[(i+2)%n], s.Notes[(i+4)%n], s.Notes[(i+6)%n]}
		chords = append(chords, New(notes, i+1, KindSeventh, LayerMain))
	}
	return chords
}

// CommonTones counts shared pitch classes between two chords.
func CommonTones(a, b Chord) int {
	classes := make(map[int]bool, len(a.Notes))
	for _, note := range a.Notes {
		if c, ok := pitch.NoteIndex(note); ok {
			classes[c] = true
		}
	}
	count := 0
	for _, note := range b.Notes {
		if c, ok := pitch.NoteIndex(note); ok && classes[c] {
			count++
			delete(classes, c)
		}
	}
	return count
}

// SamePitch reports whether two chords share root pitch class and quality.
func SamePitch(a, b Chord) bool {
	ca, ok1 := pitch.NoteIndex(a.Root)
	cb, ok2 := pitch.NoteIndex(b.Root)
	return ok1 && ok2 && ca == cb && a.Quality == b.Quality
}

func mustBeUsable(s *scale.Scale) {
	if s == nil || s.Len() == 0 {
		panic("chord: harmonizing a nil or empty scale")
	}
}
