package world

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/hitbox/internal/config"
	"github.com/vovakirdan/hitbox/internal/geom"
)

// FromScenario builds a world holding the bodies of a scenario.
func FromScenario(cfg config.ScenarioConfig, resolver Resolver, logger *log.Logger) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	w, err := New(resolver, Options{Correction: cfg.Correction, Epsilon: cfg.Epsilon}, logger)
	if err != nil {
		return nil, err
	}

	for _, bc := range cfg.Bodies {
		shape, err := config.ParseShape(bc.Shape)
		if err != nil {
			return nil, err
		}
		if err := w.Add(Body{
			Name:    bc.Name,
			Pos:     geom.V(bc.X, bc.Y),
			Shape:   shape,
			Dynamic: bc.Dynamic,
		}); err != nil {
			return nil, err
		}
	}

	return w, nil
}
