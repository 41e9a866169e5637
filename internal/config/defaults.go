package config

import (
	_ "embed"
)

//go:embed defaults/scenario.yaml
var defaultScenarioYAML []byte

// DefaultScenarioConfig returns the default scenario: a ball and a crate
// dropped into a walled pit.
func DefaultScenarioConfig() ScenarioConfig {
	return ScenarioConfig{
		Name:       "pit",
		Steps:      50,
		Correction: 1.0,
		Epsilon:    1e-6,
		Bodies: []BodyConfig{
			{Name: "floor", Shape: "rect:-6,-1,12,1"},
			{Name: "left-wall", Shape: "rect:-6,0,1,8"},
			{Name: "right-wall", Shape: "rect:5,0,1,8"},
			{Name: "crate", Shape: "rect:-1,-1,2,2", X: -4.5, Y: 0.5, Dynamic: true},
			{Name: "ball", Shape: "circle:0,0,1", X: 0, Y: 0.25, Dynamic: true},
			{Name: "pebble", Shape: "circle:0,0,0.5", X: 4.8, Y: 1.2, Dynamic: true},
		},
	}
}
