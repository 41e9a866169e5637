// Package world moves bodies out of each other using a collision resolver.
// It owns body positions; the shapes it hands to the resolver are rebuilt
// from those positions on every step and never mutated.
package world

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/hitbox/internal/geom"
)

var (
	// ErrDuplicateBody is returned by Add for a name already in use.
	ErrDuplicateBody = errors.New("world: body already exists")
	// ErrUnsupportedShape is returned for body shapes the world cannot place.
	ErrUnsupportedShape = errors.New("world: unsupported shape")
	// ErrInvalidPosition is returned by Add for a NaN or infinite position.
	ErrInvalidPosition = errors.New("world: invalid position")
)

// Resolver computes the displacement of a that separates it from b.
// *collide.Registry implements it.
type Resolver interface {
	Resolve(a, b any) (geom.Vec2, error)
}

// Body is a named hitbox at a position. Shape is expressed relative to Pos.
// Static bodies are never moved.
type Body struct {
	Name    string
	Pos     geom.Vec2
	Shape   any
	Dynamic bool
}

// Placed returns the body's shape translated to its position.
func (b Body) Placed() (any, error) {
	switch s := b.Shape.(type) {
	case geom.Rect:
		return s.ShiftedBy(b.Pos), nil
	case geom.Circle:
		return s.ShiftedBy(b.Pos), nil
	default:
		return nil, fmt.Errorf("%w: %T on body %q", ErrUnsupportedShape, b.Shape, b.Name)
	}
}

// Options tunes how corrections are applied.
type Options struct {
	// Correction is the fraction of each resolution vector applied per
	// step, in (0, 1].
	Correction float64
	// Epsilon is the length below which a resolution vector is ignored.
	Epsilon float64
}

// DefaultOptions applies full corrections.
func DefaultOptions() Options {
	return Options{Correction: 1, Epsilon: 1e-9}
}

// Validate checks the option ranges.
func (o Options) Validate() error {
	if !(o.Correction > 0 && o.Correction <= 1) {
		return fmt.Errorf("world: correction must be in (0, 1], got %g", o.Correction)
	}
	if o.Epsilon < 0 {
		return fmt.Errorf("world: epsilon must not be negative, got %g", o.Epsilon)
	}
	return nil
}

// Contact records one non-zero resolution during a step.
type Contact struct {
	Body    string
	Against string
	Vector  geom.Vec2
}

// StepReport summarizes one step.
type StepReport struct {
	Tick     int
	Contacts []Contact
	MaxDepth float64
}

// Summary summarizes a run of several steps.
type Summary struct {
	Steps    int
	Contacts int
	Settled  bool
	Residual float64
}

// World holds bodies and resolves them against each other.
type World struct {
	resolver Resolver
	opts     Options
	logger   *log.Logger

	bodies []Body
	index  map[string]int
	tick   int
}

// New creates an empty world. A nil logger discards output.
func New(resolver Resolver, opts Options, logger *log.Logger) (*World, error) {
	if resolver == nil {
		return nil, errors.New("world: nil resolver")
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &World{
		resolver: resolver,
		opts:     opts,
		logger:   logger,
		index:    make(map[string]int),
	}, nil
}

// Add inserts a body. Names must be unique and the position finite.
func (w *World) Add(b Body) error {
	if _, exists := w.index[b.Name]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicateBody, b.Name)
	}
	if !b.Pos.IsFinite() {
		return fmt.Errorf("%w: %v on body %q", ErrInvalidPosition, b.Pos, b.Name)
	}
	if _, err := b.Placed(); err != nil {
		return err
	}
	w.index[b.Name] = len(w.bodies)
	w.bodies = append(w.bodies, b)
	return nil
}

// Body returns the named body.
func (w *World) Body(name string) (Body, bool) {
	i, ok := w.index[name]
	if !ok {
		return Body{}, false
	}
	return w.bodies[i], true
}

// Bodies returns a copy of all bodies in insertion order.
func (w *World) Bodies() []Body {
	out := make([]Body, len(w.bodies))
	copy(out, w.bodies)
	return out
}

// Tick returns the number of completed steps.
func (w *World) Tick() int {
	return w.tick
}

// Step resolves every dynamic body against every other body. Bodies are
// processed in insertion order and each one sees the positions already
// corrected earlier in the same step.
func (w *World) Step() (StepReport, error) {
	report := StepReport{Tick: w.tick + 1}

	for i := range w.bodies {
		body := &w.bodies[i]
		if !body.Dynamic {
			continue
		}

		self, err := body.Placed()
		if err != nil {
			return report, err
		}

		var total geom.Vec2
		for j := range w.bodies {
			if i == j {
				continue
			}
			other, err := w.bodies[j].Placed()
			if err != nil {
				return report, err
			}

			v, err := w.resolver.Resolve(self, other)
			if err != nil {
				return report, fmt.Errorf("world: resolving %q against %q: %w", body.Name, w.bodies[j].Name, err)
			}
			if v.Len() <= w.opts.Epsilon {
				continue
			}

			report.Contacts = append(report.Contacts, Contact{Body: body.Name, Against: w.bodies[j].Name, Vector: v})
			report.MaxDepth = max(report.MaxDepth, v.Len())
			total = total.Add(v)

			w.logger.Debug("contact", "tick", report.Tick, "body", body.Name, "against", w.bodies[j].Name, "dx", v.X, "dy", v.Y)
		}

		body.Pos = body.Pos.Add(total.Scale(w.opts.Correction))
	}

	w.tick = report.Tick
	return report, nil
}

// Run steps the world until no contacts remain or maxSteps is reached.
func (w *World) Run(maxSteps int) (Summary, error) {
	var sum Summary
	for sum.Steps < maxSteps {
		report, err := w.Step()
		if err != nil {
			return sum, err
		}
		sum.Steps++
		sum.Contacts += len(report.Contacts)
		sum.Residual = report.MaxDepth

		if len(report.Contacts) == 0 {
			sum.Settled = true
			break
		}
	}

	w.logger.Info("run finished", "steps", sum.Steps, "contacts", sum.Contacts, "settled", sum.Settled, "residual", sum.Residual)
	return sum, nil
}
