package scale

import (
	"errors"
	"fmt"

	"github.com/fretwork/tonecraft/theory/pitch"
)

var (
	// ErrUnknownNote is returned when the requested root is not a note name.
	ErrUnknownNote = errors.New("unknown root note")
	// ErrUnknownType is returned when no pattern is registered for a key.
	ErrUnknownType = errors.New("unknown scale type")
)

// Scale is a pattern resolved against a concrete root. Instances are
// immutable once produced; a key or type change means generating a new one.
type Scale struct {
	Root      string   `json:"root"`
	Type      string   `json:"type"`
	Name      string   `json:"name"`
	Notes     []string `json:"notes"`
	Degrees   []string `json:"degrees"`
	Intervals []int    `json:"intervals"`
	Formula   string   `json:"formula"`
	Category  Category `json:"category"`
}

// Generate resolves the pattern registered under typeKey against the given
// root. The root keeps its requested spelling (flat keys render flat).
func Generate(root, typeKey string) (*Scale, error) {
	if _, ok := pitch.NoteIndex(root); !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownNote, root)
	}
	pattern, ok := Lookup(typeKey)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownType, typeKey)
	}

	notes := make([]string, len(pattern.Intervals))
	degrees := make([]string, len(pattern.Intervals))
	intervals := make([]int, len(pattern.Intervals))
	for i, offset := range pattern.Intervals {
		notes[i] = pitch.Spell(pitch.Transpose(root, offset), root)
		degrees[i] = pattern.Degrees[i]
		intervals[i] = offset
	}

	return &Scale{
		Root:      notes[0],
		Type:      pattern.Key,
		Name:      pattern.Name,
		Notes:     notes,
		Degrees:   degrees,
		Intervals: intervals,
		Formula:   pattern.Formula,
		Category:  pattern.Category,
	}, nil
}

// Len returns the number of notes in the scale.
func (s *Scale) Len() int {
	return len(s.Notes)
}

// RootClass returns the pitch class of the scale root.
func (s *Scale) RootClass() int {
	class, _ := pitch.NoteIndex(s.Root)
	return class
}

// IndexOfClass returns the scale position holding the given pitch class, or
// -1 when the class is not a scale member.
func (s *Scale) IndexOfClass(class int) int {
	for i, note := range s.Notes {
		if c, ok := pitch.NoteIndex(note); ok && c == class {
			return i
		}
	}
	return -1
}

// Contains reports octave-independent scale membership for a note name.
func (s *Scale) Contains(note string) bool {
	class, ok := pitch.NoteIndex(note)
	if !ok {
		return false
	}
	return s.IndexOfClass(class) >= 0
}
