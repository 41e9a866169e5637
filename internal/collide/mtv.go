package collide

import (
	"fmt"
	"math"

	"github.com/vovakirdan/hitbox/internal/geom"
)

// Each function below returns the displacement of its first argument that
// separates it from the second, which stays fixed. Shapes that do not
// overlap yield the zero vector.
//
// Concentric shapes have no separating direction that is consistent under
// argument swap, so they fail with geom.ErrDegenerateGeometry instead of
// picking one arbitrarily.

// RectRect resolves two rectangles along the axis of shallowest
// penetration. When the overlap is equal on both axes the vertical axis
// wins.
func RectRect(a, b geom.Rect) (geom.Vec2, error) {
	ac, bc := a.Center(), b.Center()
	if ac == bc && a.CollideRect(b, true) {
		return geom.Vec2{}, fmt.Errorf("%w: concentric rects %v and %v", geom.ErrDegenerateGeometry, a, b)
	}

	// An exact tie on one axis borrows its orientation from the other so
	// that swapping the arguments still flips the result.
	flipx, flipy := ac.X < bc.X, ac.Y < bc.Y
	if ac.X == bc.X {
		flipx = flipy
	}
	if ac.Y == bc.Y {
		flipy = flipx
	}

	dx := b.Right() - a.Left()
	if flipx {
		dx = b.Left() - a.Right()
	}
	dy := b.Top() - a.Bottom()
	if flipy {
		dy = b.Bottom() - a.Top()
	}

	// Already apart on this axis.
	if (flipx && dx > 0) || (!flipx && dx < 0) {
		dx = 0
	}
	if (flipy && dy > 0) || (!flipy && dy < 0) {
		dy = 0
	}

	if math.Abs(dx) < math.Abs(dy) {
		return geom.V(dx, 0), nil
	}
	return geom.V(0, dy), nil
}

// CircleRect resolves a circle against a rectangle. A circle whose center
// lies within the rectangle's horizontal or vertical band is treated as its
// bounding square; otherwise it can only touch the nearest corner and is
// pushed radially away from it.
func CircleRect(a geom.Circle, b geom.Rect) (geom.Vec2, error) {
	hw, hh := b.Width()/2, b.Height()/2
	d := a.Center().Sub(b.Center())

	if math.Abs(d.X) <= hw || math.Abs(d.Y) <= hh {
		return RectRect(a.Bounds(), b)
	}

	ox, oy := math.Abs(d.X)-hw, math.Abs(d.Y)-hh
	r := a.Radius()
	if ox*ox+oy*oy >= r*r {
		return geom.Vec2{}, nil
	}

	var corner geom.Vec2
	switch {
	case d.X >= 0 && d.Y >= 0:
		corner = b.TopRight()
	case d.X < 0 && d.Y >= 0:
		corner = b.TopLeft()
	case d.X >= 0 && d.Y < 0:
		corner = b.BottomRight()
	default:
		corner = b.BottomLeft()
	}

	// Outside both bands, so the center is strictly away from the corner.
	dr := a.Center().Sub(corner)
	return dr.Scale(r/dr.Len() - 1), nil
}

// RectCircle is CircleRect with the roles swapped.
func RectCircle(a geom.Rect, b geom.Circle) (geom.Vec2, error) {
	v, err := CircleRect(b, a)
	return v.Neg(), err
}

// CircleCircle pushes a away from b along the line between their centers
// by exactly the overlap depth.
func CircleCircle(a, b geom.Circle) (geom.Vec2, error) {
	d := a.Center().Sub(b.Center())
	sq := d.LenSq()
	sum := a.Radius() + b.Radius()

	if sq >= sum*sum {
		return geom.Vec2{}, nil
	}
	if sq == 0 {
		return geom.Vec2{}, fmt.Errorf("%w: concentric circles %v and %v", geom.ErrDegenerateGeometry, a, b)
	}

	return d.Scale(sum/math.Sqrt(sq) - 1), nil
}
