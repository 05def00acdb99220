package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	// Optional .env for default style/complexity (TONECRAFT_STYLE,
	// TONECRAFT_COMPLEXITY); missing files are fine.
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "tonecraft",
		Short: "Music-theory toolbox: scales, harmony layers and progressions",
		Long: `tonecraft derives scales, diatonic and borrowed harmony, fretboard
positions and generated chord progressions from a root note and scale type.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(scaleCmd())
	rootCmd.AddCommand(chordsCmd())
	rootCmd.AddCommand(layersCmd())
	rootCmd.AddCommand(fretboardCmd())
	rootCmd.AddCommand(progressionCmd())
	rootCmd.AddCommand(catalogCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func envDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
