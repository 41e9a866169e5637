// Package collide resolves penetration between pairs of shapes.
//
// Shape kinds are registered with a Registry, which assigns each kind a
// dense index. Handlers are installed per unordered pair of kinds; the
// registry derives the reverse orientation automatically so that
// Resolve(a, b) == -Resolve(b, a) for every handled pair.
//
// A Registry is built during initialization and sealed by its first
// Resolve call. After sealing it is read-only and safe for concurrent use.
package collide

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
	"sync/atomic"

	"github.com/vovakirdan/hitbox/internal/geom"
)

var (
	// ErrDuplicateKind is returned when a type or name is registered twice.
	ErrDuplicateKind = errors.New("collide: kind already registered")
	// ErrUnknownKind is returned for shapes whose type was never registered.
	ErrUnknownKind = errors.New("collide: unknown kind")
	// ErrUnhandledPair is returned by Resolve when no handler covers the pair.
	ErrUnhandledPair = errors.New("collide: no handler for kind pair")
	// ErrSealed is returned when registering into a sealed registry.
	ErrSealed = errors.New("collide: registry is sealed")
)

// KindIndex is the dense index assigned to a shape kind in registration
// order.
type KindIndex int

// Handler computes how far its first argument must move so that it no
// longer overlaps the second, which is treated as fixed.
type Handler func(a, b any) (geom.Vec2, error)

// KindInfo describes a registered kind.
type KindInfo struct {
	Index KindIndex
	Name  string
	Type  reflect.Type
}

type slot struct {
	fn Handler
	// custom is false for the placeholder installed at registration.
	custom bool
}

// Registry maps pairs of shape kinds to handlers.
type Registry struct {
	mu     sync.Mutex
	sealed atomic.Bool

	kinds  []KindInfo
	byType map[reflect.Type]KindIndex
	byName map[string]KindIndex

	// table[i][j] resolves a kind-i shape against a kind-j shape.
	table [][]slot
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		byType: make(map[reflect.Type]KindIndex),
		byName: make(map[string]KindIndex),
	}
}

// RegisterKind adds the concrete type T to the registry under name and
// returns its index. Every existing kind is paired with the new one by an
// unhandled placeholder, so the table never has missing entries.
func RegisterKind[T any](r *Registry, name string) (KindIndex, error) {
	typ := reflect.TypeFor[T]()
	if typ.Kind() == reflect.Interface {
		return 0, fmt.Errorf("collide: kind %q must be a concrete type, got interface %s", name, typ)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sealed.Load() {
		return 0, fmt.Errorf("%w: cannot register %q", ErrSealed, name)
	}
	if _, exists := r.byType[typ]; exists {
		return 0, fmt.Errorf("%w: type %s", ErrDuplicateKind, typ)
	}
	if _, exists := r.byName[name]; exists {
		return 0, fmt.Errorf("%w: name %q", ErrDuplicateKind, name)
	}

	n := KindIndex(len(r.kinds))
	r.kinds = append(r.kinds, KindInfo{Index: n, Name: name, Type: typ})
	r.byType[typ] = n
	r.byName[name] = n

	for i := range r.table {
		r.table[i] = append(r.table[i], slot{})
	}
	r.table = append(r.table, make([]slot, n+1))

	return n, nil
}

// SetHandler installs fn for the pair (A, B) and its negated transpose for
// (B, A). For A == B only fn is installed, so fn itself must satisfy
// fn(a, b) == -fn(b, a).
func SetHandler[A, B any](r *Registry, fn func(a A, b B) (geom.Vec2, error)) error {
	if fn == nil {
		return errors.New("collide: nil handler")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sealed.Load() {
		return ErrSealed
	}

	i, err := r.indexOfType(reflect.TypeFor[A]())
	if err != nil {
		return err
	}
	j, err := r.indexOfType(reflect.TypeFor[B]())
	if err != nil {
		return err
	}

	r.table[i][j] = slot{custom: true, fn: func(a, b any) (geom.Vec2, error) {
		return fn(a.(A), b.(B))
	}}
	if i != j {
		r.table[j][i] = slot{custom: true, fn: func(b, a any) (geom.Vec2, error) {
			v, err := fn(a.(A), b.(B))
			return v.Neg(), err
		}}
	}

	return nil
}

// Seal freezes the registry. Further registration fails with ErrSealed.
// Sealing is idempotent.
func (r *Registry) Seal() {
	if r.sealed.Load() {
		return
	}
	r.mu.Lock()
	r.sealed.Store(true)
	r.mu.Unlock()
}

// Sealed reports whether the registry has been sealed.
func (r *Registry) Sealed() bool {
	return r.sealed.Load()
}

// Resolve returns the vector by which a must move to stop overlapping b.
// The first call seals the registry.
func (r *Registry) Resolve(a, b any) (geom.Vec2, error) {
	r.Seal()

	i, err := r.indexOfValue(a)
	if err != nil {
		return geom.Vec2{}, err
	}
	j, err := r.indexOfValue(b)
	if err != nil {
		return geom.Vec2{}, err
	}

	s := r.table[i][j]
	if !s.custom {
		return geom.Vec2{}, fmt.Errorf("%w: (%s, %s)", ErrUnhandledPair, r.kinds[i].Name, r.kinds[j].Name)
	}
	return s.fn(a, b)
}

// Handled reports whether a real handler exists for kinds (i, j).
func (r *Registry) Handled(i, j KindIndex) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if int(i) >= len(r.table) || int(j) >= len(r.table) || i < 0 || j < 0 {
		return false
	}
	return r.table[i][j].custom
}

// Kinds returns the registered kinds in index order.
func (r *Registry) Kinds() []KindInfo {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]KindInfo, len(r.kinds))
	copy(out, r.kinds)
	return out
}

// Lookup returns the index registered under name.
func (r *Registry) Lookup(name string) (KindIndex, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.byName[name]
	return i, ok
}

// KindOf returns the kind index of a shape value.
func (r *Registry) KindOf(shape any) (KindIndex, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.indexOfValue(shape)
}

func (r *Registry) indexOfType(typ reflect.Type) (KindIndex, error) {
	i, ok := r.byType[typ]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownKind, typ)
	}
	return i, nil
}

func (r *Registry) indexOfValue(v any) (KindIndex, error) {
	if v == nil {
		return 0, fmt.Errorf("%w: nil shape", ErrUnknownKind)
	}
	return r.indexOfType(reflect.TypeOf(v))
}
