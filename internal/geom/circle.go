package geom

import (
	"fmt"
	"math"
)

// Circle is an immutable circle. Radius is always positive for values
// built with NewCircle.
type Circle struct {
	cx, cy float64
	radius float64
}

// NewCircle creates a circle. A radius that is not strictly positive and
// finite, or a NaN or infinite center, fails with ErrDegenerateGeometry.
func NewCircle(cx, cy, radius float64) (Circle, error) {
	if !(radius > 0) || math.IsInf(radius, 1) {
		return Circle{}, fmt.Errorf("%w: radius=%g", ErrDegenerateGeometry, radius)
	}
	if !finite(cx) || !finite(cy) {
		return Circle{}, fmt.Errorf("%w: non-finite center cx=%g cy=%g", ErrDegenerateGeometry, cx, cy)
	}
	return Circle{cx: cx, cy: cy, radius: radius}, nil
}

// MustCircle is like NewCircle but panics on error.
func MustCircle(cx, cy, radius float64) Circle {
	c, err := NewCircle(cx, cy, radius)
	if err != nil {
		panic(err)
	}
	return c
}

// CenterX returns the x-coordinate of the center.
func (c Circle) CenterX() float64 { return c.cx }

// CenterY returns the y-coordinate of the center.
func (c Circle) CenterY() float64 { return c.cy }

// Center returns the center point.
func (c Circle) Center() Vec2 { return Vec2{c.cx, c.cy} }

// Radius returns the radius.
func (c Circle) Radius() float64 { return c.radius }

// Diameter returns twice the radius.
func (c Circle) Diameter() float64 { return 2 * c.radius }

// String implements fmt.Stringer.
func (c Circle) String() string {
	return fmt.Sprintf("Circle(cx=%g cy=%g r=%g)", c.cx, c.cy, c.radius)
}

// Shifted returns c translated by (dx, dy).
func (c Circle) Shifted(dx, dy float64) Circle {
	return Circle{cx: c.cx + dx, cy: c.cy + dy, radius: c.radius}
}

// ShiftedBy is Shifted with a vector argument.
func (c Circle) ShiftedBy(d Vec2) Circle {
	return c.Shifted(d.X, d.Y)
}

// MovedTo returns c recentered on (cx, cy).
func (c Circle) MovedTo(cx, cy float64) Circle {
	return Circle{cx: cx, cy: cy, radius: c.radius}
}

// Scaled multiplies the radius by s, keeping the center.
func (c Circle) Scaled(s float64) (Circle, error) {
	return NewCircle(c.cx, c.cy, c.radius*s)
}

// Bounds returns the circle's bounding square.
func (c Circle) Bounds() Rect {
	d := c.Diameter()
	return Rect{left: c.cx - c.radius, bottom: c.cy - c.radius, width: d, height: d}
}

// ContainsPoint reports whether p lies inside c or on its boundary.
func (c Circle) ContainsPoint(p Vec2) bool {
	return p.Sub(c.Center()).LenSq() <= c.radius*c.radius
}
