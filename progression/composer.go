package progression

import (
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/fretwork/tonecraft/logging"
	"github.com/fretwork/tonecraft/theory/chord"
	"github.com/fretwork/tonecraft/theory/harmony"
	"github.com/fretwork/tonecraft/theory/pitch"
	"github.com/fretwork/tonecraft/theory/scale"
)

// Complexity scales how far the composer strays from the diatonic layer.
type Complexity int

const (
	Simple Complexity = iota
	Moderate
	Complex
)

// String returns the complexity name.
func (c Complexity) String() string {
	switch c {
	case Simple:
		return "simple"
	case Moderate:
		return "moderate"
	case Complex:
		return "complex"
	default:
		return "simple"
	}
}

// ParseComplexity resolves a complexity name.
func ParseComplexity(name string) (Complexity, error) {
	switch name {
	case "simple", "":
		return Simple, nil
	case "moderate":
		return Moderate, nil
	case "complex":
		return Complex, nil
	default:
		return Simple, fmt.Errorf("unknown complexity %q", name)
	}
}

// layerWeights returns the draw weights over the five harmony layers in
// bundle order: main, secondary dominant, modal interchange, Neapolitan,
// secondary diminished.
func (c Complexity) layerWeights() [5]float64 {
	switch c {
	case Complex:
		return [5]float64{0.40, 0.22, 0.22, 0.08, 0.08}
	case Moderate:
		return [5]float64{0.70, 0.12, 0.12, 0.03, 0.03}
	default:
		return [5]float64{0.90, 0.04, 0.04, 0.01, 0.01}
	}
}

// chromaticFactor scales a style's chromatic-insertion chance during
// template expansion.
func (c Complexity) chromaticFactor() float64 {
	switch c {
	case Complex:
		return 1.8
	case Moderate:
		return 1.0
	default:
		return 0.3
	}
}

var (
	// ErrUnknownStyle is returned for style keys missing from the catalog.
	ErrUnknownStyle = errors.New("unknown style")
	// ErrBadLength is returned for non-positive progression lengths.
	ErrBadLength = errors.New("progression length must be positive")
)

const (
	templateBias      = 0.7  // share of runs expanded from a template
	finalTonicChance  = 0.9  // final chord lands on the tonic
	halfCadenceChance = 0.7  // phrase boundaries close on V rather than vi
	adjacencyLeak     = 0.2  // chance a disallowed transition passes anyway
	phraseLen         = 4
)

// Result is one finished generation run. Chords is the owner-transferable
// progression; the rest is provenance.
type Result struct {
	ID         string        `json:"id"`
	Root       string        `json:"root"`
	ScaleType  string        `json:"scale_type"`
	Style      string        `json:"style"`
	Complexity Complexity    `json:"complexity"`
	Strategy   string        `json:"strategy"`
	Chords     []chord.Chord `json:"chords"`
}

// Composer generates progressions over one scale's harmony layers. Every
// composer owns a fresh layer bundle, so concurrent composers over different
// scales share nothing.
type Composer struct {
	scale      *scale.Scale
	layers     *harmony.Layers
	style      *Style
	length     int
	complexity Complexity
	rng        *rand.Rand
	logger     logging.Logger
}

// NewComposer builds a composer with a time-seeded random source.
func NewComposer(s *scale.Scale, length int, complexity Complexity, styleKey string) (*Composer, error) {
	return NewComposerWithRand(s, length, complexity, styleKey, rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewComposerWithRand builds a composer with an injected random source so
// callers can pin seeds.
func NewComposerWithRand(s *scale.Scale, length int, complexity Complexity, styleKey string, rng *rand.Rand) (*Composer, error) {
	if length <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadLength, length)
	}
	style, ok := StyleFor(styleKey)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStyle, styleKey)
	}
	return &Composer{
		scale:      s,
		layers:     harmony.LayersFor(s),
		style:      style,
		length:     length,
		complexity: complexity,
		rng:        rng,
		logger: logging.WithFields(logging.Fields{
			"component": "composer",
			"style":     styleKey,
		}),
	}, nil
}

// Generate is the convenience entry point: compose once and return the
// chord sequence.
func Generate(s *scale.Scale, length int, complexity Complexity, styleKey string) ([]chord.Chord, error) {
	c, err := NewComposer(s, length, complexity, styleKey)
	if err != nil {
		return nil, err
	}
	return c.Compose().Chords, nil
}

// Compose produces one finished progression of exactly the configured
// length. Strategy choice is probabilistic when the style has templates.
func (c *Composer) Compose() *Result {
	strategy := "algorithmic"
	var chords []chord.Chord
	if len(c.style.Templates) > 0 && c.rng.Float64() < templateBias {
		strategy = "template"
		chords = c.composeFromTemplate()
	} else {
		chords = c.composeWalk()
	}
	c.annotateResolutions(chords)
	c.logger.Debug("composed progression", logging.Fields{
		"strategy": strategy,
		"length":   len(chords),
	})
	return &Result{
		ID:         uuid.NewString(),
		Root:       c.scale.Root,
		ScaleType:  c.scale.Type,
		Style:      c.style.Key,
		Complexity: c.complexity,
		Strategy:   strategy,
		Chords:     chords,
	}
}

// composeFromTemplate expands a randomly chosen template, tiling it until
// the target length is reached. A complexity-scaled coin decides whether a
// matching secondary dominant is slipped in front of a chord, and the final
// slot gets the same soft tonic guarantee as the random walk.
func (c *Composer) composeFromTemplate() []chord.Chord {
	fitting := make([]Template, 0, len(c.style.Templates))
	for _, t := range c.style.Templates {
		if len(t.Tokens) <= c.length {
			fitting = append(fitting, t)
		}
	}
	if len(fitting) == 0 {
		fitting = c.style.Templates
	}
	template := fitting[c.rng.Intn(len(fitting))]

	insertChance := c.style.ChromaticChance * c.complexity.chromaticFactor()
	out := make([]chord.Chord, 0, c.length)
	for i := 0; len(out) < c.length; i++ {
		next := c.resolveToken(template.Tokens[i%len(template.Tokens)])
		if len(out) > 0 && len(out)+2 <= c.length && c.rng.Float64() < insertChance {
			if sd, ok := c.dominantResolvingTo(next); ok {
				out = append(out, sd)
			}
		}
		out = append(out, next)
	}

	if c.rng.Float64() < finalTonicChance {
		out[len(out)-1] = c.tonic()
	}
	return out
}

// resolveToken maps a parsed token onto a concrete chord from the layer
// bundle, falling back to the tonic when the layer cannot supply it.
func (c *Composer) resolveToken(t Token) chord.Chord {
	switch t.Kind {
	case TokenDiatonic:
		return c.degreeChord(t.Degree)
	case TokenSecondaryDominant:
		for _, ch := range c.layers.SecondaryDominants {
			if ch.Degree == t.Degree+1 {
				return ch
			}
		}
	case TokenSecondaryDiminished:
		for _, ch := range c.layers.SecondaryDiminished {
			if ch.Degree == t.Degree+1 {
				return ch
			}
		}
	case TokenModalInterchange:
		if t.Variant < len(c.layers.ModalInterchange) {
			return c.layers.ModalInterchange[t.Variant]
		}
	case TokenNeapolitan:
		if len(c.layers.Neapolitan) > 0 {
			return c.layers.Neapolitan[0]
		}
	}
	return c.tonic()
}

// dominantResolvingTo finds the secondary dominant whose target matches the
// given chord's root.
func (c *Composer) dominantResolvingTo(target chord.Chord) (chord.Chord, bool) {
	targetClass, ok := pitch.NoteIndex(target.Root)
	if !ok {
		return chord.Chord{}, false
	}
	for _, sd := range c.layers.SecondaryDominants {
		if class, ok := pitch.NoteIndex(sd.ResolvesTo); ok && class == targetClass {
			return sd, true
		}
	}
	return chord.Chord{}, false
}

// composeWalk runs the phrase-based constrained random walk. The first
// chord is always the tonic; cadence slots are rule-driven; everything else
// comes from a weighted layer draw filtered by the adjacency table and
// ranked by voice-leading score.
func (c *Composer) composeWalk() []chord.Chord {
	out := make([]chord.Chord, 0, c.length)
	out = append(out, c.tonic())

	for len(out) < c.length {
		i := len(out)
		prev := out[i-1]

		// Secondary chords always resolve on the next slot, except into the
		// final chord where the ending rule wins and the consistency pass
		// annotates instead.
		forced := prev.Layer == chord.LayerSecondaryDominant ||
			prev.Layer == chord.LayerSecondaryDiminished

		var next chord.Chord
		switch {
		case i == c.length-1:
			next = c.finalChord()
		case forced:
			next = c.resolutionTarget(prev)
		case i == c.length-2:
			next = c.cadenceApproach(prev)
		case (i+1)%phraseLen == 0:
			next = c.phraseBoundary()
		default:
			next = c.weightedPick(prev, i)
		}
		out = append(out, next)
	}
	return out
}

// finalChord ends on the tonic most of the time, otherwise on the relative
// vi for an unresolved ending.
func (c *Composer) finalChord() chord.Chord {
	if c.rng.Float64() < finalTonicChance {
		return c.tonic()
	}
	return c.degreeChord(5)
}

// cadenceApproach picks the penultimate chord for the style's preferred
// cadence.
func (c *Composer) cadenceApproach(prev chord.Chord) chord.Chord {
	switch c.style.PreferredCadence {
	case CadencePlagal, CadenceBlues:
		return c.degreeChord(3)
	case CadenceTwoFiveOne:
		if prev.Layer == chord.LayerMain && prev.Degree == 2 {
			return c.degreeChord(4)
		}
		return c.degreeChord(1)
	case CadencePhrygian:
		if len(c.layers.Neapolitan) > 0 {
			return c.layers.Neapolitan[0]
		}
		return c.degreeChord(4)
	default:
		return c.degreeChord(4)
	}
}

// phraseBoundary closes a non-final phrase: half cadence on V most of the
// time, deceptive vi otherwise.
func (c *Composer) phraseBoundary() chord.Chord {
	if c.rng.Float64() < halfCadenceChance {
		return c.degreeChord(4)
	}
	return c.degreeChord(5)
}

// weightedPick draws a harmony layer by complexity weights, filters the
// candidates and ranks the survivors by voice-leading score. Slots within
// reach of the cadence stay diatonic so a late secondary chord cannot
// collide with the ending rules.
func (c *Composer) weightedPick(prev chord.Chord, position int) chord.Chord {
	pool := c.layers.Main
	if position < c.length-3 {
		pool = c.drawLayer()
	}

	candidates := make([]chord.Chord, 0, len(pool))
	for _, cand := range pool {
		if chord.SamePitch(cand, prev) {
			continue
		}
		if !c.adjacencyAllows(prev, cand) && c.rng.Float64() >= adjacencyLeak {
			continue
		}
		candidates = append(candidates, cand)
	}
	if len(candidates) == 0 {
		for _, cand := range c.layers.Main {
			if !chord.SamePitch(cand, prev) {
				candidates = append(candidates, cand)
			}
		}
	}
	if len(candidates) == 0 {
		return c.tonic()
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return c.score(prev, candidates[i]) > c.score(prev, candidates[j])
	})
	top := 3
	if len(candidates) < top {
		top = len(candidates)
	}
	return candidates[c.rng.Intn(top)]
}

// drawLayer selects one of the five layers by complexity weight, skipping
// layers the scale could not produce.
func (c *Composer) drawLayer() []chord.Chord {
	weights := c.complexity.layerWeights()
	pools := [5][]chord.Chord{
		c.layers.Main,
		c.layers.SecondaryDominants,
		c.layers.ModalInterchange,
		c.layers.Neapolitan,
		c.layers.SecondaryDiminished,
	}

	total := 0.0
	for i, pool := range pools {
		if len(pool) > 0 {
			total += weights[i]
		}
	}
	if total <= 0 {
		return c.layers.Main
	}

	r := c.rng.Float64() * total
	for i, pool := range pools {
		if len(pool) == 0 {
			continue
		}
		r -= weights[i]
		if r < 0 {
			return pool
		}
	}
	return c.layers.Main
}

// score ranks a transition: shared tones weigh heaviest, fifth or stepwise
// bass motion helps, a static bass hurts, and the style adds its degree
// bias.
func (c *Composer) score(prev, cand chord.Chord) float64 {
	s := float64(chord.CommonTones(prev, cand)) * 10

	if iv, ok := pitch.Interval(prev.Root, cand.Root); ok {
		switch iv {
		case 0:
			s -= 20
		case 5, 7:
			s += 15
		case 1, 2, 10, 11:
			s += 10
		}
	}

	if cand.Layer == chord.LayerMain {
		s += c.style.DegreeBonus[cand.Degree-1]
	}
	return s
}

// allowedBefore lists, per functional degree, which degrees may precede it.
// Degrees absent from the table accept any predecessor.
var allowedBefore = map[string][]string{
	"I":    {"IV", "V", "vii°", "ii", "vi", "iii", "bII", "bVII", "bVI"},
	"ii":   {"I", "IV", "vi", "iii", "bIII"},
	"iii":  {"I", "IV", "vi"},
	"IV":   {"I", "ii", "vi", "iii", "bIII", "bVII"},
	"V":    {"IV", "ii", "I", "vi", "bII", "bVI"},
	"vi":   {"I", "V", "IV", "iii", "ii"},
	"vii°": {"IV", "ii", "I", "bVI"},
}

// canonicalDegrees names diatonic degrees for adjacency lookups regardless
// of the actual chord quality in the current mode.
var canonicalDegrees = [...]string{"I", "ii", "iii", "IV", "V", "vi", "vii°"}

// functionKey reduces a chord to its adjacency-table key.
func functionKey(ch chord.Chord) string {
	if ch.Layer == chord.LayerMain {
		if ch.Degree >= 1 && ch.Degree <= len(canonicalDegrees) {
			return canonicalDegrees[ch.Degree-1]
		}
		return ""
	}
	return ch.Numeral
}

// adjacencyAllows consults the functional-harmony table.
func (c *Composer) adjacencyAllows(prev, next chord.Chord) bool {
	preds, ok := allowedBefore[functionKey(next)]
	if !ok {
		return true
	}
	prevKey := functionKey(prev)
	for _, p := range preds {
		if p == prevKey {
			return true
		}
	}
	return false
}

// resolutionTarget returns the main chord built on a secondary chord's
// target note, or the tonic when the scale has no such chord.
func (c *Composer) resolutionTarget(prev chord.Chord) chord.Chord {
	targetClass, ok := pitch.NoteIndex(prev.ResolvesTo)
	if !ok {
		return c.tonic()
	}
	for _, ch := range c.layers.Main {
		if class, ok := pitch.NoteIndex(ch.Root); ok && class == targetClass {
			return ch
		}
	}
	return c.tonic()
}

// annotateResolutions is the shared consistency pass: chromatic chords not
// followed by their expected target are annotated, never rewritten.
func (c *Composer) annotateResolutions(chords []chord.Chord) {
	dominantClass := -1
	if note := pitch.Transpose(c.scale.Root, 7); note != "" {
		dominantClass, _ = pitch.NoteIndex(note)
	}
	rootClass := c.scale.RootClass()

	for i := range chords {
		ch := &chords[i]
		var next *chord.Chord
		if i+1 < len(chords) {
			next = &chords[i+1]
		}

		switch ch.Layer {
		case chord.LayerSecondaryDominant, chord.LayerSecondaryDiminished:
			if next == nil || !sameClass(next.Root, ch.ResolvesTo) {
				ch.ExpectsResolution = ch.ResolvesTo
			}
		case chord.LayerNeapolitan:
			if next == nil {
				ch.ExpectsResolution = "V or I"
				continue
			}
			class, ok := pitch.NoteIndex(next.Root)
			if !ok || (class != dominantClass && class != rootClass) {
				ch.ExpectsResolution = "V or I"
			}
		}
	}
}

func sameClass(a, b string) bool {
	ca, ok1 := pitch.NoteIndex(a)
	cb, ok2 := pitch.NoteIndex(b)
	return ok1 && ok2 && ca == cb
}

// tonic returns the degree-one chord.
func (c *Composer) tonic() chord.Chord {
	return c.layers.Main[0]
}

// degreeChord returns the main chord at a 0-based degree, wrapping for
// short scales.
func (c *Composer) degreeChord(degree int) chord.Chord {
	return c.layers.Main[degree%len(c.layers.Main)]
}
