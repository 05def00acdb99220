package chord

// Quality is the closed set of chord qualities the harmonizer can name.
// Unknown is a first-class case: interval stacks with no registered
// fingerprint still produce a chord record.
type Quality int

const (
	Major Quality = iota
	Minor
	Diminished
	Augmented
	Major7
	Minor7
	Dominant7
	HalfDiminished7
	Diminished7
	MinorMajor7
	Augmented7
	Unknown
)

// String returns the quality name.
func (q Quality) String() string {
	switch q {
	case Major:
		return "major"
	case Minor:
		return "minor"
	case Diminished:
		return "diminished"
	case Augmented:
		return "augmented"
	case Major7:
		return "major7"
	case Minor7:
		return "minor7"
	case Dominant7:
		return "dominant7"
	case HalfDiminished7:
		return "halfDiminished7"
	case Diminished7:
		return "diminished7"
	case MinorMajor7:
		return "minorMajor7"
	case Augmented7:
		return "augmented7"
	default:
		return "unknown"
	}
}

// Suffix returns the symbol suffix appended to the root name.
func (q Quality) Suffix() string {
	switch q {
	case Major:
		return ""
	case Minor:
		return "m"
	case Diminished:
		return "dim"
	case Augmented:
		return "aug"
	case Major7:
		return "maj7"
	case Minor7:
		return "m7"
	case Dominant7:
		return "7"
	case HalfDiminished7:
		return "m7b5"
	case Diminished7:
		return "dim7"
	case MinorMajor7:
		return "m(maj7)"
	case Augmented7:
		return "aug7"
	default:
		return ""
	}
}

// lowercased reports whether Roman numerals render lowercase for this
// quality. The rule mirrors a substring test on the quality name ("minor" or
// "diminished"): Unknown chords stay uppercase on purpose.
func (q Quality) lowercased() bool {
	switch q {
	case Minor, Diminished, Minor7, HalfDiminished7, Diminished7, MinorMajor7:
		return true
	default:
		return false
	}
}

// triadFingerprints maps (third, fifth) ascending intervals from the root to
// a triad quality.
var triadFingerprints = map[[2]int]Quality{
	{4, 7}: Major,
	{3, 7}: Minor,
	{3, 6}: Diminished,
	{4, 8}: Augmented,
}

// seventhFingerprints maps (third, fifth, seventh) intervals to a seventh
// chord quality.
var seventhFingerprints = map[[3]int]Quality{
	{4, 7, 11}: Major7,
	{3, 7, 10}: Minor7,
	{4, 7, 10}: Dominant7,
	{3, 6, 10}: HalfDiminished7,
	{3, 6, 9}:  Diminished7,
	{3, 7, 11}: MinorMajor7,
	{4, 8, 10}: Augmented7,
}
