package fretboard

import (
	"github.com/fretwork/tonecraft/theory/pitch"
	"github.com/fretwork/tonecraft/theory/scale"
)

// StandardTuning is six-string guitar tuning listed low to high.
var StandardTuning = []string{"E", "A", "D", "G", "B", "E"}

// Position is one playable occurrence of a scale note on the neck. String
// numbering follows guitar convention: 1 is the highest-pitched string.
type Position struct {
	String   int    `json:"string"`
	Fret     int    `json:"fret"`
	Note     string `json:"note"`
	Degree   string `json:"degree"`
	Interval int    `json:"interval"`
	IsRoot   bool   `json:"is_root"`
}

// Positions maps a scale onto the (string, fret) grid for the given tuning,
// with frets 0..maxFret inclusive. It is a pure membership scan: every
// sounded note whose pitch class belongs to the scale yields one Position,
// duplicates across the neck included. The result is ordered by string (low
// to high) then fret.
func Positions(s *scale.Scale, tuning []string, maxFret int) []Position {
	if s == nil || len(tuning) == 0 || maxFret < 0 {
		return nil
	}

	rootClass := s.RootClass()
	var positions []Position
	for i, open := range tuning {
		if _, ok := pitch.NoteIndex(open); !ok {
			continue
		}
		stringNum := len(tuning) - i
		for fret := 0; fret <= maxFret; fret++ {
			sounded := pitch.Transpose(open, fret)
			class, _ := pitch.NoteIndex(sounded)
			idx := s.IndexOfClass(class)
			if idx < 0 {
				continue
			}
			positions = append(positions, Position{
				String:   stringNum,
				Fret:     fret,
				Note:     s.Notes[idx],
				Degree:   s.Degrees[idx],
				Interval: s.Intervals[idx],
				IsRoot:   class == rootClass,
			})
		}
	}
	return positions
}
