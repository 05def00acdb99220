// Package harmony generates the borrowed layers around a scale's diatonic
// chords: secondary dominants, secondary diminished chords, modal
// interchange and the Neapolitan. Secondary layers enumerate every non-tonic
// degree; modal layers are fixed offsets from the scale root.
package harmony

import (
	"github.com/fretwork/tonecraft/theory/chord"
	"github.com/fretwork/tonecraft/theory/pitch"
	"github.com/fretwork/tonecraft/theory/scale"
)

// Layers bundles every chord list a progression draws from, keyed by
// provenance. The whole bundle is regenerated when the scale changes; it is
// never patched in place.
type Layers struct {
	Main                []chord.Chord `json:"main"`
	SecondaryDominants  []chord.Chord `json:"secondary_dominants"`
	ModalInterchange    []chord.Chord `json:"modal_interchange"`
	Neapolitan          []chord.Chord `json:"neapolitan"`
	SecondaryDiminished []chord.Chord `json:"secondary_diminished"`
}

// LayersFor derives the full harmony bundle for a scale.
func LayersFor(s *scale.Scale) *Layers {
	mustBeUsable(s)
	return &Layers{
		Main:                chord.HarmonizeTriads(s),
		SecondaryDominants:  SecondaryDominants(s),
		ModalInterchange:    ModalInterchange(s),
		Neapolitan:          Neapolitan(s),
		SecondaryDiminished: SecondaryDiminished(s),
	}
}

// SecondaryDominants builds one dominant-seventh chord per non-tonic scale
// degree, rooted a perfect fifth above its target. Scales shorter than 7
// notes yield an empty list: the degree arithmetic below assumes a full
// heptatonic spread.
func SecondaryDominants(s *scale.Scale) []chord.Chord {
	mustBeUsable(s)
	if s.Len() < 7 {
		return nil
	}
	triads := chord.HarmonizeTriads(s)
	chords := make([]chord.Chord, 0, s.Len()-1)
	for i := 1; i < s.Len(); i++ {
		target := s.Notes[i]
		root := pitch.Transpose(target, 7)
		ch := buildStack(s, root, []int{0, 4, 7, 10}, i+1, chord.KindSecondaryDominant, chord.LayerSecondaryDominant)
		ch.Numeral = "V/" + triads[i].Numeral
		ch.ResolvesTo = target
		chords = append(chords, ch)
	}
	return chords
}

// SecondaryDiminished builds one diminished-seventh chord per non-tonic
// degree, rooted a half step below its target.
func SecondaryDiminished(s *scale.Scale) []chord.Chord {
	mustBeUsable(s)
	if s.Len() < 7 {
		return nil
	}
	triads := chord.HarmonizeTriads(s)
	chords := make([]chord.Chord, 0, s.Len()-1)
	for i := 1; i < s.Len(); i++ {
		target := s.Notes[i]
		root := pitch.Transpose(target, 11)
		ch := buildStack(s, root, []int{0, 3, 6, 9}, i+1, chord.KindSecondaryDiminished, chord.LayerSecondaryDiminished)
		ch.Numeral = "vii°/" + triads[i].Numeral
		ch.ResolvesTo = target
		chords = append(chords, ch)
	}
	return chords
}

// modalBorrow describes one fixed modal-interchange chord: offset from the
// scale root, seventh-chord shape and numeral.
type modalBorrow struct {
	offset    int
	intervals []int
	numeral   string
	degree    int
}

// The five borrowed chords come from the parallel scale of opposite quality;
// extensions are part of their identity (bIIImaj7, iiø7, ...).
var modalBorrows = []modalBorrow{
	{offset: 3, intervals: []int{0, 4, 7, 11}, numeral: "bIII", degree: 3},
	{offset: 8, intervals: []int{0, 4, 7, 11}, numeral: "bVI", degree: 6},
	{offset: 5, intervals: []int{0, 3, 7, 10}, numeral: "iv", degree: 4},
	{offset: 10, intervals: []int{0, 4, 7, 10}, numeral: "bVII", degree: 7},
	{offset: 2, intervals: []int{0, 3, 6, 10}, numeral: "ii°", degree: 2},
}

// ModalInterchange builds the five fixed borrowed chords relative to the
// scale root.
func ModalInterchange(s *scale.Scale) []chord.Chord {
	mustBeUsable(s)
	if _, ok := pitch.NoteIndex(s.Root); !ok {
		return nil
	}
	chords := make([]chord.Chord, 0, len(modalBorrows))
	for _, b := range modalBorrows {
		root := pitch.Transpose(s.Root, b.offset)
		ch := buildStack(s, root, b.intervals, b.degree, chord.KindModalInterchange, chord.LayerModalInterchange)
		ch.Numeral = b.numeral
		chords = append(chords, ch)
	}
	return chords
}

// Neapolitan builds the single bII major chord. Returned as a one-element
// list so layer handling stays uniform.
func Neapolitan(s *scale.Scale) []chord.Chord {
	mustBeUsable(s)
	if _, ok := pitch.NoteIndex(s.Root); !ok {
		return nil
	}
	root := pitch.Transpose(s.Root, 1)
	ch := buildStack(s, root, []int{0, 4, 7}, 2, chord.KindNeapolitan, chord.LayerNeapolitan)
	ch.Numeral = "bII"
	ch.Hint = "resolves to V or I"
	return []chord.Chord{ch}
}

// buildStack assembles a chord from fixed intervals above a root, spelled
// for the scale's key. Quality stays derived from the resulting notes.
func buildStack(s *scale.Scale, root string, intervals []int, degree int, kind chord.Kind, layer chord.Layer) chord.Chord {
	notes := make([]string, len(intervals))
	for i, offset := range intervals {
		notes[i] = pitch.Spell(pitch.Transpose(root, offset), s.Root)
	}
	ch := chord.New(notes, degree, kind, layer)
	return ch
}

func mustBeUsable(s *scale.Scale) {
	if s == nil || s.Len() == 0 {
		panic("harmony: deriving layers from a nil or empty scale")
	}
}
