package progression

import (
	"fmt"
	"io"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// styleFile is the YAML shape of a user style pack.
type styleFile struct {
	Styles []styleSpec `yaml:"styles" validate:"required,min=1,dive"`
}

type styleSpec struct {
	Key             string          `yaml:"key" validate:"required"`
	Name            string          `yaml:"name" validate:"required"`
	Cadence         string          `yaml:"cadence" validate:"omitempty,oneof=authentic plagal ii-V-I phrygian blues"`
	ChromaticChance float64         `yaml:"chromatic_chance" validate:"gte=0,lte=1"`
	DegreeBonus     map[int]float64 `yaml:"degree_bonus"` // 1-based degrees
	Templates       []templateSpec  `yaml:"templates" validate:"required,min=1,dive"`
}

type templateSpec struct {
	Name   string   `yaml:"name" validate:"required"`
	Tokens []string `yaml:"tokens" validate:"required,min=2"`
}

var styleValidator = validator.New()

// LoadStyles parses and validates a YAML style pack. Tokens are parsed here,
// once; unknown token spellings fall back to the tonic like the built-in
// catalog.
func LoadStyles(r io.Reader) ([]*Style, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading style pack: %w", err)
	}

	var file styleFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parsing style pack: %w", err)
	}
	if err := styleValidator.Struct(&file); err != nil {
		return nil, fmt.Errorf("validating style pack: %w", err)
	}

	styles := make([]*Style, 0, len(file.Styles))
	for _, spec := range file.Styles {
		cadence, err := ParseCadence(spec.Cadence)
		if err != nil {
			return nil, fmt.Errorf("style %q: %w", spec.Key, err)
		}

		bonus := make(map[int]float64, len(spec.DegreeBonus))
		for degree, b := range spec.DegreeBonus {
			if degree < 1 {
				return nil, fmt.Errorf("style %q: degree bonus keys are 1-based, got %d", spec.Key, degree)
			}
			bonus[degree-1] = b
		}

		templates := make([]Template, 0, len(spec.Templates))
		for _, t := range spec.Templates {
			templates = append(templates, Template{Name: t.Name, Tokens: parseTokens(t.Tokens)})
		}

		styles = append(styles, &Style{
			Key:              spec.Key,
			Name:             spec.Name,
			Templates:        templates,
			ChromaticChance:  spec.ChromaticChance,
			PreferredCadence: cadence,
			DegreeBonus:      bonus,
		})
	}
	return styles, nil
}

// LoadStyleFile reads a style pack from disk and registers every style it
// defines.
func LoadStyleFile(path string) ([]*Style, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening style pack: %w", err)
	}
	defer f.Close()

	styles, err := LoadStyles(f)
	if err != nil {
		return nil, err
	}
	for _, s := range styles {
		RegisterStyle(s)
	}
	return styles, nil
}
