// Package config provides YAML-based scenario configuration loading and
// shape literal parsing for the hitbox tools.
package config

import (
	"errors"
	"fmt"
	"math"
)

// ScenarioConfig describes a set of bodies to separate.
type ScenarioConfig struct {
	Name       string       `yaml:"name"`
	Steps      int          `yaml:"steps"`      // Maximum number of resolution steps
	Correction float64      `yaml:"correction"` // Fraction of each vector applied per step, (0, 1]
	Epsilon    float64      `yaml:"epsilon"`    // Vectors shorter than this are ignored
	Bodies     []BodyConfig `yaml:"bodies"`
}

// BodyConfig places one shape in a scenario.
type BodyConfig struct {
	Name    string  `yaml:"name"`
	Shape   string  `yaml:"shape"` // Shape literal, e.g. "rect:0,0,2,1" or "circle:0,0,1"
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	Dynamic bool    `yaml:"dynamic"`
}

// Validate checks ranges, body names and shape literals.
func (c ScenarioConfig) Validate() error {
	var errs []error

	if c.Steps <= 0 {
		errs = append(errs, fmt.Errorf("steps must be positive, got %d", c.Steps))
	}
	if !(c.Correction > 0 && c.Correction <= 1) {
		errs = append(errs, fmt.Errorf("correction must be in (0, 1], got %g", c.Correction))
	}
	if c.Epsilon < 0 {
		errs = append(errs, fmt.Errorf("epsilon must not be negative, got %g", c.Epsilon))
	}

	seen := make(map[string]bool, len(c.Bodies))
	for i, b := range c.Bodies {
		if b.Name == "" {
			errs = append(errs, fmt.Errorf("body %d has no name", i))
		} else if seen[b.Name] {
			errs = append(errs, fmt.Errorf("duplicate body name %q", b.Name))
		}
		seen[b.Name] = true

		if math.IsNaN(b.X) || math.IsInf(b.X, 0) || math.IsNaN(b.Y) || math.IsInf(b.Y, 0) {
			errs = append(errs, fmt.Errorf("body %q: position (%g, %g) is not finite", b.Name, b.X, b.Y))
		}

		if _, err := ParseShape(b.Shape); err != nil {
			errs = append(errs, fmt.Errorf("body %q: %w", b.Name, err))
		}
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: invalid scenario %q: %w", c.Name, err)
	}
	return nil
}

// ResolutionPreset names a correction strength.
type ResolutionPreset string

const (
	PresetInstant ResolutionPreset = "instant"
	PresetSmooth  ResolutionPreset = "smooth"
	PresetGentle  ResolutionPreset = "gentle"
)

// CorrectionForPreset returns the correction fraction for a preset.
func CorrectionForPreset(preset ResolutionPreset) (float64, error) {
	switch preset {
	case PresetInstant:
		return 1.0, nil
	case PresetSmooth:
		return 0.5, nil
	case PresetGentle:
		return 0.2, nil
	default:
		return 0, fmt.Errorf("config: unknown preset %q (want instant, smooth or gentle)", preset)
	}
}

// ApplyPreset overrides the scenario correction from a preset. Gentler
// presets need more steps to settle, so the step budget is scaled too.
func ApplyPreset(cfg *ScenarioConfig, preset ResolutionPreset) error {
	c, err := CorrectionForPreset(preset)
	if err != nil {
		return err
	}
	if c < cfg.Correction {
		cfg.Steps = int(float64(cfg.Steps) * cfg.Correction / c)
	}
	cfg.Correction = c
	return nil
}
