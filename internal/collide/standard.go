package collide

import (
	"fmt"
	"sync"

	"github.com/vovakirdan/hitbox/internal/geom"
)

// Names of the built-in kinds.
const (
	KindCircle = "circle"
	KindRect   = "rect"
)

// NewStandard returns an unsealed registry holding the built-in kinds and
// handlers. Callers may register further kinds before the first Resolve.
func NewStandard() (*Registry, error) {
	r := New()

	if _, err := RegisterKind[geom.Circle](r, KindCircle); err != nil {
		return nil, err
	}
	if err := SetHandler(r, CircleCircle); err != nil {
		return nil, err
	}

	if _, err := RegisterKind[geom.Rect](r, KindRect); err != nil {
		return nil, err
	}
	if err := SetHandler(r, CircleRect); err != nil {
		return nil, err
	}
	if err := SetHandler(r, RectRect); err != nil {
		return nil, err
	}

	return r, nil
}

var standard = sync.OnceValue(func() *Registry {
	r, err := NewStandard()
	if err != nil {
		panic(fmt.Sprintf("collide: building standard registry: %v", err))
	}
	r.Seal()
	return r
})

// Standard returns the sealed process-wide registry of built-in kinds.
func Standard() *Registry {
	return standard()
}

// Resolve resolves a against b using the standard registry.
func Resolve(a, b any) (geom.Vec2, error) {
	return Standard().Resolve(a, b)
}
