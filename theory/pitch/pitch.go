package pitch

// Chromatic pitch-class arithmetic. Every operation works mod 12 on pitch
// classes; whether a class renders as a sharp or a flat name is a
// presentation decision made once per note, keyed on the active root.

// ClassCount is the number of chromatic pitch classes per octave.
const ClassCount = 12

// sharpNames is the canonical spelling table. Transposition and all internal
// arithmetic resolve to these names.
var sharpNames = [ClassCount]string{
	"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B",
}

// flatNames is the parallel enharmonic table used when rendering flat keys.
// Only the five black keys differ from the sharp table.
var flatNames = [ClassCount]string{
	"C", "Db", "D", "Eb", "E", "F", "Gb", "G", "Ab", "A", "Bb", "B",
}

var sharpIndex = map[string]int{}
var flatIndex = map[string]int{}

// flatKeys lists the roots whose scales are conventionally spelled with
// flats. Everything else renders sharp.
var flatKeys = map[string]bool{
	"F": true, "Bb": true, "Eb": true, "Ab": true, "Db": true, "Gb": true,
}

func init() {
	for i, name := range sharpNames {
		sharpIndex[name] = i
	}
	for i, name := range flatNames {
		if _, exists := sharpIndex[name]; !exists {
			flatIndex[name] = i
		}
	}
}

// NoteIndex resolves a note name to its pitch class (0=C .. 11=B). Flat
// spellings resolve through the enharmonic alias table. The second return is
// false for unrecognized names; callers must check it.
func NoteIndex(name string) (int, bool) {
	if idx, ok := sharpIndex[name]; ok {
		return idx, true
	}
	if idx, ok := flatIndex[name]; ok {
		return idx, true
	}
	return -1, false
}

// SharpName returns the canonical sharp spelling for a pitch class.
func SharpName(class int) string {
	return sharpNames[normalize(class)]
}

// FlatName returns the flat spelling for a pitch class.
func FlatName(class int) string {
	return flatNames[normalize(class)]
}

// Transpose moves a note by the given number of semitones and returns the
// canonical sharp spelling. Returns "" when the note is unrecognized.
func Transpose(note string, semitones int) string {
	idx, ok := NoteIndex(note)
	if !ok {
		return ""
	}
	return sharpNames[normalize(idx+semitones)]
}

// Interval measures the ascending distance from a to b in semitones
// (0..11). The direction matters: chord-quality classification depends on
// consistent ascending measurement from the chord root.
func Interval(a, b string) (int, bool) {
	ia, ok := NoteIndex(a)
	if !ok {
		return 0, false
	}
	ib, ok := NoteIndex(b)
	if !ok {
		return 0, false
	}
	return normalize(ib - ia), true
}

// IsFlatKey reports whether scales rooted on the given note are spelled with
// flats.
func IsFlatKey(root string) bool {
	return flatKeys[root]
}

// Spell renders a note in the spelling appropriate for the given root: flat
// names for flat keys, sharp names otherwise. Returns "" when the note is
// unrecognized.
func Spell(note, root string) string {
	idx, ok := NoteIndex(note)
	if !ok {
		return ""
	}
	if IsFlatKey(root) {
		return flatNames[idx]
	}
	return sharpNames[idx]
}

// normalize wraps a semitone count into 0..11, handling negative values.
func normalize(semitones int) int {
	m := semitones % ClassCount
	if m < 0 {
		m += ClassCount
	}
	return m
}
