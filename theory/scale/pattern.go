package scale

import "sort"

// Category groups scale patterns for catalog presentation.
type Category string

const (
	CategoryMajorModes Category = "major_modes"
	CategoryMinor      Category = "minor"
	CategoryPentatonic Category = "pentatonic_blues"
	CategorySymmetric  Category = "symmetric"
	CategoryExotic     Category = "exotic"
)

// Pattern is a static scale definition: semitone offsets from the root
// (strictly increasing, first element always 0) with parallel degree labels.
// Patterns are defined once at init and never mutated.
type Pattern struct {
	Key       string   `json:"key"`
	Name      string   `json:"name"`
	Intervals []int    `json:"intervals"`
	Degrees   []string `json:"degrees"`
	Formula   string   `json:"formula"`
	Category  Category `json:"category"`
}

// catalog holds every known scale pattern keyed by its stable identifier.
// Pattern lengths vary: pentatonics carry 5 notes, whole tone 6, the
// diminished scale 8. Nothing above this table may assume 7 notes.
var catalog = map[string]Pattern{
	"major": {
		Key:       "major",
		Name:      "Major (Ionian)",
		Intervals: []int{0, 2, 4, 5, 7, 9, 11},
		Degrees:   []string{"1", "2", "3", "4", "5", "6", "7"},
		Formula:   "W-W-H-W-W-W-H",
		Category:  CategoryMajorModes,
	},
	"dorian": {
		Key:       "dorian",
		Name:      "Dorian",
		Intervals: []int{0, 2, 3, 5, 7, 9, 10},
		Degrees:   []string{"1", "2", "b3", "4", "5", "6", "b7"},
		Formula:   "W-H-W-W-W-H-W",
		Category:  CategoryMajorModes,
	},
	"phrygian": {
		Key:       "phrygian",
		Name:      "Phrygian",
		Intervals: []int{0, 1, 3, 5, 7, 8, 10},
		Degrees:   []string{"1", "b2", "b3", "4", "5", "b6", "b7"},
		Formula:   "H-W-W-W-H-W-W",
		Category:  CategoryMajorModes,
	},
	"lydian": {
		Key:       "lydian",
		Name:      "Lydian",
		Intervals: []int{0, 2, 4, 6, 7, 9, 11},
		Degrees:   []string{"1", "2", "3", "#4", "5", "6", "7"},
		Formula:   "W-W-W-H-W-W-H",
		Category:  CategoryMajorModes,
	},
	"mixolydian": {
		Key:       "mixolydian",
		Name:      "Mixolydian",
		Intervals: []int{0, 2, 4, 5, 7, 9, 10},
		Degrees:   []string{"1", "2", "3", "4", "5", "6", "b7"},
		Formula:   "W-W-H-W-W-H-W",
		Category:  CategoryMajorModes,
	},
	"naturalMinor": {
		Key:       "naturalMinor",
		Name:      "Natural Minor (Aeolian)",
		Intervals: []int{0, 2, 3, 5, 7, 8, 10},
		Degrees:   []string{"1", "2", "b3", "4", "5", "b6", "b7"},
		Formula:   "W-H-W-W-H-W-W",
		Category:  CategoryMinor,
	},
	"locrian": {
		Key:       "locrian",
		Name:      "Locrian",
		Intervals: []int{0, 1, 3, 5, 6, 8, 10},
		Degrees:   []string{"1", "b2", "b3", "4", "b5", "b6", "b7"},
		Formula:   "H-W-W-H-W-W-W",
		Category:  CategoryMajorModes,
	},
	"harmonicMinor": {
		Key:       "harmonicMinor",
		Name:      "Harmonic Minor",
		Intervals: []int{0, 2, 3, 5, 7, 8, 11},
		Degrees:   []string{"1", "2", "b3", "4", "5", "b6", "7"},
		Formula:   "W-H-W-W-H-WH-H",
		Category:  CategoryMinor,
	},
	"melodicMinor": {
		Key:       "melodicMinor",
		Name:      "Melodic Minor",
		Intervals: []int{0, 2, 3, 5, 7, 9, 11},
		Degrees:   []string{"1", "2", "b3", "4", "5", "6", "7"},
		Formula:   "W-H-W-W-W-W-H",
		Category:  CategoryMinor,
	},
	"majorPentatonic": {
		Key:       "majorPentatonic",
		Name:      "Major Pentatonic",
		Intervals: []int{0, 2, 4, 7, 9},
		Degrees:   []string{"1", "2", "3", "5", "6"},
		Formula:   "W-W-WH-W-WH",
		Category:  CategoryPentatonic,
	},
	"minorPentatonic": {
		Key:       "minorPentatonic",
		Name:      "Minor Pentatonic",
		Intervals: []int{0, 3, 5, 7, 10},
		Degrees:   []string{"1", "b3", "4", "5", "b7"},
		Formula:   "WH-W-W-WH-W",
		Category:  CategoryPentatonic,
	},
	"blues": {
		Key:       "blues",
		Name:      "Blues",
		Intervals: []int{0, 3, 5, 6, 7, 10},
		Degrees:   []string{"1", "b3", "4", "b5", "5", "b7"},
		Formula:   "WH-W-H-H-WH-W",
		Category:  CategoryPentatonic,
	},
	"wholeTone": {
		Key:       "wholeTone",
		Name:      "Whole Tone",
		Intervals: []int{0, 2, 4, 6, 8, 10},
		Degrees:   []string{"1", "2", "3", "#4", "#5", "b7"},
		Formula:   "W-W-W-W-W-W",
		Category:  CategorySymmetric,
	},
	"diminished": {
		Key:       "diminished",
		Name:      "Diminished (Whole-Half)",
		Intervals: []int{0, 2, 3, 5, 6, 8, 9, 11},
		Degrees:   []string{"1", "2", "b3", "4", "b5", "b6", "6", "7"},
		Formula:   "W-H-W-H-W-H-W-H",
		Category:  CategorySymmetric,
	},
	"phrygianDominant": {
		Key:       "phrygianDominant",
		Name:      "Phrygian Dominant",
		Intervals: []int{0, 1, 4, 5, 7, 8, 10},
		Degrees:   []string{"1", "b2", "3", "4", "5", "b6", "b7"},
		Formula:   "H-WH-H-W-H-W-W",
		Category:  CategoryExotic,
	},
	"hungarianMinor": {
		Key:       "hungarianMinor",
		Name:      "Hungarian Minor",
		Intervals: []int{0, 2, 3, 6, 7, 8, 11},
		Degrees:   []string{"1", "2", "b3", "#4", "5", "b6", "7"},
		Formula:   "W-H-WH-H-H-WH-H",
		Category:  CategoryExotic,
	},
	"doubleHarmonic": {
		Key:       "doubleHarmonic",
		Name:      "Double Harmonic",
		Intervals: []int{0, 1, 4, 5, 7, 8, 11},
		Degrees:   []string{"1", "b2", "3", "4", "5", "b6", "7"},
		Formula:   "H-WH-H-W-H-WH-H",
		Category:  CategoryExotic,
	},
}

// Lookup returns the pattern registered under the given key.
func Lookup(key string) (Pattern, bool) {
	p, ok := catalog[key]
	return p, ok
}

// Keys returns every registered pattern key in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(catalog))
	for k := range catalog {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ByCategory groups the catalog by category, each group sorted by name.
func ByCategory() map[Category][]Pattern {
	grouped := make(map[Category][]Pattern)
	for _, p := range catalog {
		grouped[p.Category] = append(grouped[p.Category], p)
	}
	for _, patterns := range grouped {
		sort.Slice(patterns, func(i, j int) bool {
			return patterns[i].Name < patterns[j].Name
		})
	}
	return grouped
}
