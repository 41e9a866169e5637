package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eps = 1e-9

func TestNewRectRejectsNegativeDimensions(t *testing.T) {
	inf := math.Inf(1)
	tests := []struct {
		name         string
		left, bottom float64
		w, h         float64
		ok           bool
	}{
		{"positive", 0, 0, 2, 3, true},
		{"zero size", 0, 0, 0, 0, true},
		{"negative width", 0, 0, -1, 3, false},
		{"negative height", 0, 0, 2, -0.5, false},
		{"NaN width", 0, 0, math.NaN(), 1, false},
		{"infinite width", 0, 0, inf, 1, false},
		{"infinite height", 0, 0, 1, inf, false},
		{"infinite left", inf, 0, 1, 1, false},
		{"negative infinite bottom", 0, -inf, 1, 1, false},
		{"NaN left", math.NaN(), 0, 1, 1, false},
		{"NaN bottom", 0, math.NaN(), 1, 1, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewRect(tc.left, tc.bottom, tc.w, tc.h)
			if tc.ok {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, ErrInvalidDimension)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := MustRect(5, 10, 20, 15)

	assert.Equal(t, 5.0, r.Left())
	assert.Equal(t, 25.0, r.Right())
	assert.Equal(t, 10.0, r.Bottom())
	assert.Equal(t, 25.0, r.Top())
	assert.Equal(t, V(15, 17.5), r.Center())
	assert.Equal(t, [4]Vec2{{5, 10}, {25, 10}, {25, 25}, {5, 25}}, r.Corners())
	assert.Equal(t, [4]Vec2{{10, 7.5}, {10, -7.5}, {-10, 7.5}, {-10, -7.5}}, r.RelativeCorners())

	w, h := r.Size()
	assert.Equal(t, 20.0, w)
	assert.Equal(t, 15.0, h)
}

func TestRectCollideRect(t *testing.T) {
	tests := []struct {
		name           string
		a, b           Rect
		strict, closed bool
	}{
		{
			name:   "overlapping rects",
			a:      MustRect(0, 0, 10, 10),
			b:      MustRect(5, 5, 10, 10),
			strict: true, closed: true,
		},
		{
			name: "separated horizontally",
			a:    MustRect(0, 0, 10, 10),
			b:    MustRect(15, 0, 10, 10),
		},
		{
			name: "separated vertically",
			a:    MustRect(0, 0, 10, 10),
			b:    MustRect(0, 15, 10, 10),
		},
		{
			name:   "touching horizontal edge",
			a:      MustRect(0, 0, 10, 10),
			b:      MustRect(10, 0, 10, 10),
			closed: true,
		},
		{
			name:   "touching corner",
			a:      MustRect(0, 0, 10, 10),
			b:      MustRect(10, 10, 10, 10),
			closed: true,
		},
		{
			name:   "contained",
			a:      MustRect(0, 0, 20, 20),
			b:      MustRect(5, 5, 5, 5),
			strict: true, closed: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.strict, tc.a.CollideRect(tc.b, true), "strict")
			assert.Equal(t, tc.strict, tc.b.CollideRect(tc.a, true), "strict reversed")
			assert.Equal(t, tc.closed, tc.a.CollideRect(tc.b, false), "closed")
			assert.Equal(t, tc.closed, tc.b.CollideRect(tc.a, false), "closed reversed")
		})
	}
}

func TestRectShiftedIsReversible(t *testing.T) {
	r := MustRect(1.5, -2, 3, 4)

	assert.Equal(t, r, r.Shifted(0, 0))
	assert.Equal(t, r, r.Shifted(2.25, -7.5).Shifted(-2.25, 7.5))
	assert.Equal(t, MustRect(2.5, 0, 3, 4), r.ShiftedBy(V(1, 2)))
	assert.Equal(t, MustRect(1.5, -2, 3, 4), r, "receiver must not change")

	// Offsets that are not exactly representable only round-trip within
	// rounding error.
	q := MustRect(0.1, 0.1, 1, 1)
	back := q.Shifted(0.2, 0.7).Shifted(-0.2, -0.7)
	assert.InDelta(t, q.Left(), back.Left(), eps)
	assert.InDelta(t, q.Bottom(), back.Bottom(), eps)
	assert.Equal(t, q.Width(), back.Width())
	assert.Equal(t, q.Height(), back.Height())
}

func TestRectMovedTo(t *testing.T) {
	r := MustRect(0, 0, 4, 2).MovedTo(10, 10)
	assert.Equal(t, V(10, 10), r.Center())
	assert.Equal(t, 4.0, r.Width())
	assert.Equal(t, 2.0, r.Height())
}

func TestRectResized(t *testing.T) {
	r := MustRect(0, 0, 4, 4)

	tests := []struct {
		anchor Anchor
		want   Rect
	}{
		{AnchorCenter, MustRect(1, 1, 2, 2)},
		{AnchorBottomLeft, MustRect(0, 0, 2, 2)},
		{AnchorBottomRight, MustRect(2, 0, 2, 2)},
		{AnchorTopLeft, MustRect(0, 2, 2, 2)},
		{AnchorTopRight, MustRect(2, 2, 2, 2)},
	}

	for _, tc := range tests {
		t.Run(tc.anchor.String(), func(t *testing.T) {
			got, err := r.Resized(2, 2, tc.anchor)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)

			scaled, err := r.Scaled(0.5, tc.anchor)
			require.NoError(t, err)
			assert.Equal(t, tc.want, scaled)
		})
	}

	_, err := r.Resized(-1, 2, AnchorCenter)
	require.ErrorIs(t, err, ErrInvalidDimension)

	_, err = r.Scaled(-2, AnchorBottomLeft)
	require.ErrorIs(t, err, ErrInvalidDimension)
}

func TestRectXYScaledAndExpanded(t *testing.T) {
	r := MustRect(0, 0, 4, 2)

	got, err := r.XYScaled(2, 3, AnchorBottomLeft)
	require.NoError(t, err)
	assert.Equal(t, MustRect(0, 0, 8, 6), got)

	got, err = r.Expanded(2, 2)
	require.NoError(t, err)
	assert.Equal(t, MustRect(-1, -1, 6, 4), got)

	_, err = r.Expanded(-5, 0)
	require.ErrorIs(t, err, ErrInvalidDimension)
}

func TestRectRotation(t *testing.T) {
	r := MustRect(0, 0, 4, 2)

	rot := r.Rotated90()
	assert.Equal(t, r.Center(), rot.Center())
	assert.Equal(t, 2.0, rot.Width())
	assert.Equal(t, 4.0, rot.Height())

	b := r.RotatedBounds(90)
	assert.InDelta(t, 2.0, b.Width(), eps)
	assert.InDelta(t, 4.0, b.Height(), eps)
	assert.True(t, b.Center().ApproxEqual(r.Center(), eps))

	sq := MustRect(-1, -1, 2, 2).RotatedBounds(45)
	assert.InDelta(t, 2*math.Sqrt2, sq.Width(), eps)
	assert.InDelta(t, 2*math.Sqrt2, sq.Height(), eps)
}

func TestRectFromSides(t *testing.T) {
	r, err := RectFromSides(1, 3, -1, 4, true)
	require.NoError(t, err)
	assert.Equal(t, MustRect(1, -1, 2, 5), r)

	_, err = RectFromSides(3, 1, -1, 4, true)
	require.ErrorIs(t, err, ErrInvalidDimension)

	r, err = RectFromSides(3, 1, 4, -1, false)
	require.NoError(t, err)
	assert.Equal(t, MustRect(1, -1, 2, 5), r)
}

func TestRectFromCenterAndCorners(t *testing.T) {
	r, err := RectFromCenter(0, 0, 2, 4)
	require.NoError(t, err)
	assert.Equal(t, MustRect(-1, -2, 2, 4), r)

	r, err = RectFromCorners(V(3, -2), V(-1, 4))
	require.NoError(t, err)
	assert.Equal(t, MustRect(-1, -2, 4, 6), r)

	_, err = RectFromCorners(V(math.NaN(), 0), V(1, 1))
	require.ErrorIs(t, err, ErrInvalidDimension)

	_, err = RectFromCorners(V(0, 0), V(1, math.Inf(1)))
	require.ErrorIs(t, err, ErrInvalidDimension)
}

func TestRectThatContains(t *testing.T) {
	r, err := RectThatContains(V(1, 1), V(-2, 5), V(0, -3))
	require.NoError(t, err)
	assert.Equal(t, MustRect(-2, -3, 3, 8), r)

	single, err := RectThatContains(V(4, 4))
	require.NoError(t, err)
	assert.Equal(t, MustRect(4, 4, 0, 0), single)

	_, err = RectThatContains()
	require.ErrorIs(t, err, ErrEmptyInput)
}

func TestRectIntersectRect(t *testing.T) {
	a := MustRect(0, 0, 10, 10)

	got, ok := a.IntersectRect(MustRect(5, -5, 10, 10))
	require.True(t, ok)
	assert.Equal(t, MustRect(5, 0, 5, 5), got)

	got, ok = a.IntersectRect(MustRect(10, 0, 5, 5))
	require.True(t, ok, "touching edges intersect in a zero-width rect")
	assert.Equal(t, 0.0, got.Width())

	_, ok = a.IntersectRect(MustRect(20, 20, 1, 1))
	assert.False(t, ok)
}

func TestRectContainsPoint(t *testing.T) {
	r := MustRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		p        Vec2
		expected bool
	}{
		{"inside", V(15, 15), true},
		{"bottom-left corner", V(10, 10), true},
		{"top-right corner", V(30, 25), true},
		{"outside left", V(5, 15), false},
		{"outside top", V(15, 26), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, r.ContainsPoint(tc.p))
		})
	}
}
