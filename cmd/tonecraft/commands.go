package main

import (
	"fmt"
	"math/rand"
	"os"
	"sort"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/fretwork/tonecraft/progression"
	"github.com/fretwork/tonecraft/theory/chord"
	"github.com/fretwork/tonecraft/theory/fretboard"
	"github.com/fretwork/tonecraft/theory/harmony"
	"github.com/fretwork/tonecraft/theory/scale"
)

var (
	rootColor    = color.New(color.FgRed, color.Bold)
	symbolColor  = color.New(color.FgCyan)
	numeralColor = color.New(color.FgYellow)
	headerColor  = color.New(color.Bold)
)

func scaleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scale [root] [type]",
		Short: "Print a scale's notes, degrees and formula",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := scale.Generate(args[0], args[1])
			if err != nil {
				return err
			}
			headerColor.Printf("%s %s\n", s.Root, s.Name)
			fmt.Printf("Notes:   %s\n", strings.Join(s.Notes, " "))
			fmt.Printf("Degrees: %s\n", strings.Join(s.Degrees, " "))
			fmt.Printf("Formula: %s\n", s.Formula)
			return nil
		},
	}
}

func chordsCmd() *cobra.Command {
	var sevenths bool
	cmd := &cobra.Command{
		Use:   "chords [root] [type]",
		Short: "Harmonize a scale into diatonic chords",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := scale.Generate(args[0], args[1])
			if err != nil {
				return err
			}
			var chords []chord.Chord
			if sevenths {
				chords = chord.HarmonizeSevenths(s)
			} else {
				chords = chord.HarmonizeTriads(s)
			}
			printChordTable(chords)
			return nil
		},
	}
	cmd.Flags().BoolVar(&sevenths, "sevenths", false, "stack seventh chords instead of triads")
	return cmd
}

func layersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "layers [root] [type]",
		Short: "Print every harmony layer for a scale",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := scale.Generate(args[0], args[1])
			if err != nil {
				return err
			}
			layers := harmony.LayersFor(s)

			sections := []struct {
				title  string
				chords []chord.Chord
			}{
				{"Diatonic", layers.Main},
				{"Secondary dominants", layers.SecondaryDominants},
				{"Modal interchange", layers.ModalInterchange},
				{"Neapolitan", layers.Neapolitan},
				{"Secondary diminished", layers.SecondaryDiminished},
			}
			for _, sec := range sections {
				if len(sec.chords) == 0 {
					continue
				}
				headerColor.Println(sec.title)
				printChordTable(sec.chords)
				fmt.Println()
			}
			return nil
		},
	}
}

func fretboardCmd() *cobra.Command {
	var maxFret int
	var tuning string
	cmd := &cobra.Command{
		Use:   "fretboard [root] [type]",
		Short: "Map a scale onto the fretboard",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := scale.Generate(args[0], args[1])
			if err != nil {
				return err
			}
			open := fretboard.StandardTuning
			if tuning != "" {
				open = strings.Split(tuning, ",")
			}
			positions := fretboard.Positions(s, open, maxFret)
			if len(positions) == 0 {
				return fmt.Errorf("no positions for %s %s on tuning %v", args[0], args[1], open)
			}

			byString := make(map[int]map[int]fretboard.Position)
			for _, p := range positions {
				if byString[p.String] == nil {
					byString[p.String] = make(map[int]fretboard.Position)
				}
				byString[p.String][p.Fret] = p
			}
			for str := 1; str <= len(open); str++ {
				fmt.Printf("%d |", str)
				for fret := 0; fret <= maxFret; fret++ {
					p, ok := byString[str][fret]
					switch {
					case ok && p.IsRoot:
						rootColor.Printf(" %-2s", p.Note)
					case ok:
						fmt.Printf(" %-2s", p.Note)
					default:
						fmt.Printf(" %-2s", "·")
					}
				}
				fmt.Println()
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&maxFret, "max-fret", 12, "highest fret to map")
	cmd.Flags().StringVar(&tuning, "tuning", "", "comma-separated open strings, low to high (default standard)")
	return cmd
}

func progressionCmd() *cobra.Command {
	var length int
	var complexityName, styleName, stylePack string
	var seed int64
	var analyze bool
	cmd := &cobra.Command{
		Use:   "progression [root] [type]",
		Short: "Generate a chord progression",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := scale.Generate(args[0], args[1])
			if err != nil {
				return err
			}
			if stylePack != "" {
				if _, err := progression.LoadStyleFile(stylePack); err != nil {
					return err
				}
			}
			if !cmd.Flags().Changed("complexity") {
				complexityName = envDefault("TONECRAFT_COMPLEXITY", complexityName)
			}
			if !cmd.Flags().Changed("style") {
				styleName = envDefault("TONECRAFT_STYLE", styleName)
			}
			complexity, err := progression.ParseComplexity(complexityName)
			if err != nil {
				return err
			}

			rng := rand.New(rand.NewSource(seed))
			if seed == 0 {
				rng = rand.New(rand.NewSource(time.Now().UnixNano()))
			}
			composer, err := progression.NewComposerWithRand(s, length, complexity, styleName, rng)
			if err != nil {
				return err
			}
			result := composer.Compose()

			headerColor.Printf("%s %s · %s · %s (%s)\n", s.Root, s.Name, result.Style, result.Complexity, result.Strategy)
			for i, ch := range result.Chords {
				if i > 0 {
					fmt.Print(" - ")
				}
				symbolColor.Print(ch.Symbol)
				numeralColor.Printf("(%s)", ch.Numeral)
			}
			fmt.Println()

			if analyze {
				printAnalysis(progression.Analyze(result.Chords, s))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&length, "length", 8, "number of chords")
	cmd.Flags().StringVar(&complexityName, "complexity", "simple", "simple, moderate or complex")
	cmd.Flags().StringVar(&styleName, "style", "pop", "style key")
	cmd.Flags().StringVar(&stylePack, "styles-file", "", "YAML style pack to load first")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 = time-based)")
	cmd.Flags().BoolVar(&analyze, "analyze", false, "print the progression analysis")
	return cmd
}

func catalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List scale types by category and available styles",
		RunE: func(cmd *cobra.Command, args []string) error {
			grouped := scale.ByCategory()
			categories := make([]string, 0, len(grouped))
			for category := range grouped {
				categories = append(categories, string(category))
			}
			sort.Strings(categories)
			for _, category := range categories {
				headerColor.Println(category)
				for _, p := range grouped[scale.Category(category)] {
					fmt.Printf("  %-18s %s\n", p.Key, p.Name)
				}
			}
			headerColor.Println("styles")
			fmt.Printf("  %s\n", strings.Join(progression.StyleKeys(), ", "))
			return nil
		},
	}
}

func printChordTable(chords []chord.Chord) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, ch := range chords {
		extra := ""
		if ch.ResolvesTo != "" {
			extra = "→ " + ch.ResolvesTo
		} else if ch.Hint != "" {
			extra = ch.Hint
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			ch.Numeral, ch.Symbol, strings.Join(ch.Notes, " "), ch.Quality, extra)
	}
	w.Flush()
}

func printAnalysis(a *progression.Analysis) {
	fmt.Printf("complexity: %s, chromatic chords: %d\n", a.Complexity, a.ChromaticCount)
	for _, tr := range a.Transitions {
		fmt.Printf("  %s → %s: %s (%d common)\n", tr.From, tr.To, tr.Quality, tr.CommonTones)
	}
	for _, f := range a.Features {
		fmt.Printf("  %s\n", f)
	}
}
