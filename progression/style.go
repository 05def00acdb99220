package progression

import (
	"fmt"
	"sort"
)

// Cadence identifies the phrase-closing formula a style prefers.
type Cadence int

const (
	CadenceAuthentic Cadence = iota
	CadencePlagal
	CadenceTwoFiveOne
	CadencePhrygian
	CadenceBlues
)

// String returns the cadence name as used in style packs.
func (c Cadence) String() string {
	switch c {
	case CadenceAuthentic:
		return "authentic"
	case CadencePlagal:
		return "plagal"
	case CadenceTwoFiveOne:
		return "ii-V-I"
	case CadencePhrygian:
		return "phrygian"
	case CadenceBlues:
		return "blues"
	default:
		return "authentic"
	}
}

// ParseCadence resolves a cadence name from a style pack.
func ParseCadence(name string) (Cadence, error) {
	switch name {
	case "authentic", "":
		return CadenceAuthentic, nil
	case "plagal":
		return CadencePlagal, nil
	case "ii-V-I":
		return CadenceTwoFiveOne, nil
	case "phrygian":
		return CadencePhrygian, nil
	case "blues":
		return CadenceBlues, nil
	default:
		return CadenceAuthentic, fmt.Errorf("unknown cadence %q", name)
	}
}

// Template is a named, pre-parsed degree sequence.
type Template struct {
	Name   string
	Tokens []Token
}

// Style parameterizes generation: templates to expand, how often chromatic
// chords intrude, which cadence closes phrases, and which degrees the style
// leans on (0-based degree -> score bonus).
type Style struct {
	Key              string
	Name             string
	Templates        []Template
	ChromaticChance  float64
	PreferredCadence Cadence
	DegreeBonus      map[int]float64
}

func tpl(name string, tokens ...string) Template {
	return Template{Name: name, Tokens: parseTokens(tokens)}
}

// styleCatalog is the built-in style set. Tokens are parsed here, once, at
// init; see ParseToken for the accepted forms.
var styleCatalog = map[string]*Style{
	"pop": {
		Key:              "pop",
		Name:             "Pop",
		ChromaticChance:  0.10,
		PreferredCadence: CadenceAuthentic,
		DegreeBonus:      map[int]float64{0: 8, 3: 6, 4: 6, 5: 4},
		Templates: []Template{
			tpl("axis", "I", "V", "vi", "IV"),
			tpl("fifties", "I", "vi", "IV", "V"),
			tpl("circle", "I", "IV", "vi", "V"),
		},
	},
	"jazz": {
		Key:              "jazz",
		Name:             "Jazz",
		ChromaticChance:  0.35,
		PreferredCadence: CadenceTwoFiveOne,
		DegreeBonus:      map[int]float64{1: 8, 4: 8, 0: 5, 2: 3},
		Templates: []Template{
			tpl("two-five-one", "ii", "V", "I"),
			tpl("turnaround", "I", "vi", "ii", "V"),
			tpl("extended turnaround", "iii", "vi", "ii", "V"),
			tpl("dominant approach", "I", "V/ii", "ii", "V"),
		},
	},
	"classical": {
		Key:              "classical",
		Name:             "Classical",
		ChromaticChance:  0.15,
		PreferredCadence: CadenceAuthentic,
		DegreeBonus:      map[int]float64{0: 8, 4: 8, 3: 5, 1: 3},
		Templates: []Template{
			tpl("authentic period", "I", "IV", "V", "I"),
			tpl("predominant", "I", "ii", "V", "I"),
			tpl("deceptive turn", "I", "IV", "V", "vi"),
		},
	},
	"blues": {
		Key:              "blues",
		Name:             "Blues",
		ChromaticChance:  0.12,
		PreferredCadence: CadenceBlues,
		DegreeBonus:      map[int]float64{0: 10, 3: 8, 4: 8},
		Templates: []Template{
			tpl("twelve bar", "I", "I", "IV", "I", "V", "IV", "I", "V"),
			tpl("quick change", "I", "IV", "I", "V"),
		},
	},
	"rnb": {
		Key:              "rnb",
		Name:             "R&B",
		ChromaticChance:  0.25,
		PreferredCadence: CadenceTwoFiveOne,
		DegreeBonus:      map[int]float64{1: 6, 3: 6, 5: 6, 0: 4},
		Templates: []Template{
			tpl("soul loop", "I", "iii", "IV", "V"),
			tpl("backdoor", "ii", "V", "I", "vi"),
			tpl("borrowed lift", "I", "bVII", "IV", "I"),
		},
	},
	"edm": {
		Key:              "edm",
		Name:             "EDM",
		ChromaticChance:  0.08,
		PreferredCadence: CadenceAuthentic,
		DegreeBonus:      map[int]float64{5: 8, 3: 8, 0: 6, 4: 6},
		Templates: []Template{
			tpl("drop loop", "vi", "IV", "I", "V"),
			tpl("lift", "I", "vi", "IV", "V"),
		},
	},
	"folk": {
		Key:              "folk",
		Name:             "Folk",
		ChromaticChance:  0.05,
		PreferredCadence: CadencePlagal,
		DegreeBonus:      map[int]float64{0: 10, 3: 8, 4: 5},
		Templates: []Template{
			tpl("campfire", "I", "IV", "I", "V"),
			tpl("rounder", "I", "V", "I", "IV"),
		},
	},
	"metal": {
		Key:              "metal",
		Name:             "Metal",
		ChromaticChance:  0.25,
		PreferredCadence: CadencePhrygian,
		DegreeBonus:      map[int]float64{0: 10, 5: 6, 6: 5},
		Templates: []Template{
			tpl("aeolian drive", "I", "bVII", "bVI", "V"),
			tpl("phrygian stab", "I", "bII", "I", "V"),
		},
	},
	"experimental": {
		Key:              "experimental",
		Name:             "Experimental",
		ChromaticChance:  0.45,
		PreferredCadence: CadencePhrygian,
		DegreeBonus:      map[int]float64{},
		Templates: []Template{
			tpl("chromatic drift", "I", "bII", "bVI", "V/iii"),
			tpl("diminished chain", "I", "vii°/ii", "ii", "bVII"),
		},
	},
}

// StyleFor returns the style registered under the given key.
func StyleFor(key string) (*Style, bool) {
	s, ok := styleCatalog[key]
	return s, ok
}

// StyleKeys lists the registered style keys in sorted order.
func StyleKeys() []string {
	keys := make([]string, 0, len(styleCatalog))
	for k := range styleCatalog {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// RegisterStyle adds or replaces a style in the catalog, typically from a
// YAML style pack. Not safe for concurrent use with generation.
func RegisterStyle(s *Style) {
	if s == nil || s.Key == "" {
		return
	}
	styleCatalog[s.Key] = s
}
