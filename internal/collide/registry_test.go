package collide

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/hitbox/internal/geom"
)

// dot is a point-sized kind used to exercise registration of a third kind.
type dot struct{ p geom.Vec2 }

type shape interface{ isShape() }

func dotDot(a, b dot) (geom.Vec2, error) {
	return geom.Vec2{}, nil
}

func dotRect(a dot, b geom.Rect) (geom.Vec2, error) {
	return RectRect(geom.MustRect(a.p.X, a.p.Y, 0, 0), b)
}

func dotCircle(a dot, b geom.Circle) (geom.Vec2, error) {
	d := a.p.Sub(b.Center())
	if d.LenSq() >= b.Radius()*b.Radius() {
		return geom.Vec2{}, nil
	}
	if d.IsZero() {
		return geom.Vec2{}, geom.ErrDegenerateGeometry
	}
	return d.Scale(b.Radius()/d.Len() - 1), nil
}

func TestRegisterKindAssignsDenseIndices(t *testing.T) {
	r := New()

	i, err := RegisterKind[geom.Circle](r, "circle")
	require.NoError(t, err)
	j, err := RegisterKind[geom.Rect](r, "rect")
	require.NoError(t, err)
	k, err := RegisterKind[dot](r, "dot")
	require.NoError(t, err)

	assert.Equal(t, []KindIndex{0, 1, 2}, []KindIndex{i, j, k})

	kinds := r.Kinds()
	require.Len(t, kinds, 3)
	assert.Equal(t, "rect", kinds[1].Name)

	idx, ok := r.Lookup("dot")
	assert.True(t, ok)
	assert.Equal(t, k, idx)

	idx, err = r.KindOf(geom.MustRect(0, 0, 1, 1))
	require.NoError(t, err)
	assert.Equal(t, j, idx)
}

func TestRegisterKindRejectsDuplicates(t *testing.T) {
	r := New()
	_, err := RegisterKind[geom.Rect](r, "rect")
	require.NoError(t, err)

	_, err = RegisterKind[geom.Rect](r, "box")
	require.ErrorIs(t, err, ErrDuplicateKind)

	_, err = RegisterKind[geom.Circle](r, "rect")
	require.ErrorIs(t, err, ErrDuplicateKind)

	_, err = RegisterKind[shape](r, "iface")
	require.Error(t, err)

	assert.Len(t, r.Kinds(), 1)
}

func TestSetHandlerUnknownKind(t *testing.T) {
	r := New()
	_, err := RegisterKind[geom.Rect](r, "rect")
	require.NoError(t, err)

	err = SetHandler(r, CircleRect)
	require.ErrorIs(t, err, ErrUnknownKind)

	err = SetHandler(r, dotRect)
	require.ErrorIs(t, err, ErrUnknownKind)
}

func TestResolveUnhandledPair(t *testing.T) {
	r := New()
	_, err := RegisterKind[geom.Rect](r, "rect")
	require.NoError(t, err)
	_, err = RegisterKind[geom.Circle](r, "circle")
	require.NoError(t, err)
	require.NoError(t, SetHandler(r, RectRect))

	assert.True(t, r.Handled(0, 0))
	assert.False(t, r.Handled(0, 1))
	assert.False(t, r.Handled(1, 0))
	assert.False(t, r.Handled(5, 0))

	_, err = r.Resolve(geom.MustRect(0, 0, 1, 1), geom.MustCircle(0, 0, 1))
	require.ErrorIs(t, err, ErrUnhandledPair)
	assert.Contains(t, err.Error(), "(rect, circle)")

	_, err = r.Resolve(geom.MustCircle(0, 0, 1), geom.MustCircle(0.5, 0, 1))
	require.ErrorIs(t, err, ErrUnhandledPair)
}

func TestResolveUnknownShape(t *testing.T) {
	r := Standard()

	_, err := r.Resolve(dot{}, geom.MustRect(0, 0, 1, 1))
	require.ErrorIs(t, err, ErrUnknownKind)

	_, err = r.Resolve(geom.MustRect(0, 0, 1, 1), nil)
	require.ErrorIs(t, err, ErrUnknownKind)

	// Pointers are distinct kinds from the values they point to.
	rect := geom.MustRect(0, 0, 1, 1)
	_, err = r.Resolve(&rect, rect)
	require.ErrorIs(t, err, ErrUnknownKind)
}

func TestSetHandlerInstallsNegatedTranspose(t *testing.T) {
	r := New()
	_, err := RegisterKind[geom.Rect](r, "rect")
	require.NoError(t, err)
	_, err = RegisterKind[geom.Circle](r, "circle")
	require.NoError(t, err)

	calls := 0
	err = SetHandler(r, func(a geom.Rect, b geom.Circle) (geom.Vec2, error) {
		calls++
		return geom.V(1, -2), nil
	})
	require.NoError(t, err)

	rect, circle := geom.MustRect(0, 0, 1, 1), geom.MustCircle(0, 0, 1)

	v, err := r.Resolve(rect, circle)
	require.NoError(t, err)
	assert.Equal(t, geom.V(1, -2), v)

	v, err = r.Resolve(circle, rect)
	require.NoError(t, err)
	assert.Equal(t, geom.V(-1, 2), v)
	assert.Equal(t, 2, calls)
}

func TestSealBlocksRegistration(t *testing.T) {
	r, err := NewStandard()
	require.NoError(t, err)
	assert.False(t, r.Sealed())

	_, err = r.Resolve(geom.MustRect(0, 0, 1, 1), geom.MustRect(5, 5, 1, 1))
	require.NoError(t, err)
	assert.True(t, r.Sealed())

	_, err = RegisterKind[dot](r, "dot")
	require.ErrorIs(t, err, ErrSealed)

	err = SetHandler(r, RectRect)
	require.ErrorIs(t, err, ErrSealed)

	assert.True(t, Standard().Sealed())
}

func TestRegistryCompleteness(t *testing.T) {
	r, err := NewStandard()
	require.NoError(t, err)

	_, err = RegisterKind[dot](r, "dot")
	require.NoError(t, err)
	require.NoError(t, SetHandler(r, dotDot))
	require.NoError(t, SetHandler(r, dotRect))
	require.NoError(t, SetHandler(r, dotCircle))

	for i := range r.Kinds() {
		for j := range r.Kinds() {
			assert.True(t, r.Handled(KindIndex(i), KindIndex(j)), "pair (%d, %d)", i, j)
		}
	}

	shapes := []any{
		geom.MustRect(0, 0, 2, 2),
		geom.MustRect(1.5, 0.5, 3, 1),
		geom.MustCircle(2, 3, 1.5),
		geom.MustCircle(-1, 0, 0.5),
		dot{geom.V(0.5, 1.75)},
		dot{geom.V(-1, -1)},
	}

	for _, a := range shapes {
		for _, b := range shapes {
			t.Run(fmt.Sprintf("%T-%T", a, b), func(t *testing.T) {
				ab, err := r.Resolve(a, b)
				if err != nil {
					// Identical shapes are concentric.
					require.ErrorIs(t, err, geom.ErrDegenerateGeometry)
					return
				}

				ba, err := r.Resolve(b, a)
				require.NoError(t, err)
				assert.True(t, ab.ApproxEqual(ba.Neg(), eps), "%v vs %v", ab, ba)
			})
		}
	}

	dv, err := r.Resolve(dot{geom.V(0.5, 1.75)}, geom.MustRect(0, 0, 2, 2))
	require.NoError(t, err)
	assert.Equal(t, geom.V(0, 0.25), dv)
}

func TestResolveConcurrentAfterSeal(t *testing.T) {
	r := Standard()
	a, b := geom.MustCircle(0, 0, 2), geom.MustCircle(3, 0, 2)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				v, err := r.Resolve(a, b)
				if err != nil || !v.ApproxEqual(geom.V(-1, 0), eps) {
					t.Errorf("Resolve() = %v, %v", v, err)
					return
				}
			}
		}()
	}
	wg.Wait()
}
