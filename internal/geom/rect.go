package geom

import (
	"fmt"
	"math"
)

// Rect is an axis-aligned rectangle with the y axis pointing up.
// The zero value is a degenerate rectangle at the origin.
//
// Fields are unexported so a Rect can only be built through the
// constructors, which guarantee non-negative dimensions. Rect values are
// comparable with ==.
type Rect struct {
	left, bottom  float64
	width, height float64
}

// Anchor names the point of a rectangle that stays fixed when it is resized.
type Anchor uint8

const (
	AnchorCenter Anchor = iota
	AnchorBottomLeft
	AnchorBottomRight
	AnchorTopLeft
	AnchorTopRight
)

// String returns the anchor name.
func (a Anchor) String() string {
	switch a {
	case AnchorCenter:
		return "center"
	case AnchorBottomLeft:
		return "bottomleft"
	case AnchorBottomRight:
		return "bottomright"
	case AnchorTopLeft:
		return "topleft"
	case AnchorTopRight:
		return "topright"
	default:
		return fmt.Sprintf("Anchor(%d)", uint8(a))
	}
}

// NewRect creates a rectangle from its bottom-left corner and size.
// It fails with ErrInvalidDimension if width or height is negative, or if
// any argument is NaN or infinite.
func NewRect(left, bottom, width, height float64) (Rect, error) {
	if !(width >= 0) || !(height >= 0) || math.IsInf(width, 0) || math.IsInf(height, 0) {
		return Rect{}, fmt.Errorf("%w: width=%g height=%g", ErrInvalidDimension, width, height)
	}
	if !finite(left) || !finite(bottom) {
		return Rect{}, fmt.Errorf("%w: non-finite position left=%g bottom=%g", ErrInvalidDimension, left, bottom)
	}
	return Rect{left: left, bottom: bottom, width: width, height: height}, nil
}

// MustRect is like NewRect but panics on error. Intended for literals.
func MustRect(left, bottom, width, height float64) Rect {
	r, err := NewRect(left, bottom, width, height)
	if err != nil {
		panic(err)
	}
	return r
}

// RectFromCenter creates a rectangle from its center and size.
func RectFromCenter(cx, cy, width, height float64) (Rect, error) {
	return NewRect(cx-width/2, cy-height/2, width, height)
}

// RectFromSides creates a rectangle from the coordinates of its sides.
// When strict is true, left > right or bottom > top is an error; otherwise
// the inverted pair is swapped.
func RectFromSides(left, right, bottom, top float64, strict bool) (Rect, error) {
	if left > right || bottom > top {
		if strict {
			return Rect{}, fmt.Errorf("%w: left=%g right=%g bottom=%g top=%g",
				ErrInvalidDimension, left, right, bottom, top)
		}
		left, right = math.Min(left, right), math.Max(left, right)
		bottom, top = math.Min(bottom, top), math.Max(bottom, top)
	}
	return NewRect(left, bottom, right-left, top-bottom)
}

// RectFromCorners creates the rectangle spanned by two opposing corners.
func RectFromCorners(p1, p2 Vec2) (Rect, error) {
	return RectThatContains(p1, p2)
}

// RectThatContains returns the smallest rectangle covering all points.
func RectThatContains(points ...Vec2) (Rect, error) {
	if len(points) == 0 {
		return Rect{}, ErrEmptyInput
	}

	left, right := points[0].X, points[0].X
	bottom, top := points[0].Y, points[0].Y
	for _, p := range points[1:] {
		left = math.Min(left, p.X)
		right = math.Max(right, p.X)
		bottom = math.Min(bottom, p.Y)
		top = math.Max(top, p.Y)
	}

	return RectFromSides(left, right, bottom, top, true)
}

// Left returns the x-coordinate of the left edge.
func (r Rect) Left() float64 { return r.left }

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.bottom }

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() float64 { return r.left + r.width }

// Top returns the y-coordinate of the top edge.
func (r Rect) Top() float64 { return r.bottom + r.height }

// Width returns the horizontal size.
func (r Rect) Width() float64 { return r.width }

// Height returns the vertical size.
func (r Rect) Height() float64 { return r.height }

// Size returns (width, height).
func (r Rect) Size() (float64, float64) { return r.width, r.height }

// CenterX returns the x-coordinate of the center.
func (r Rect) CenterX() float64 { return r.left + r.width/2 }

// CenterY returns the y-coordinate of the center.
func (r Rect) CenterY() float64 { return r.bottom + r.height/2 }

// Center returns the center point.
func (r Rect) Center() Vec2 { return Vec2{r.CenterX(), r.CenterY()} }

// TopLeft returns the top-left corner.
func (r Rect) TopLeft() Vec2 { return Vec2{r.Left(), r.Top()} }

// TopRight returns the top-right corner.
func (r Rect) TopRight() Vec2 { return Vec2{r.Right(), r.Top()} }

// BottomLeft returns the bottom-left corner.
func (r Rect) BottomLeft() Vec2 { return Vec2{r.Left(), r.Bottom()} }

// BottomRight returns the bottom-right corner.
func (r Rect) BottomRight() Vec2 { return Vec2{r.Right(), r.Bottom()} }

// Corners returns the four corners counter-clockwise from bottom-left.
func (r Rect) Corners() [4]Vec2 {
	return [4]Vec2{r.BottomLeft(), r.BottomRight(), r.TopRight(), r.TopLeft()}
}

// RelativeCorners returns the corner offsets from the center.
func (r Rect) RelativeCorners() [4]Vec2 {
	hw, hh := r.width/2, r.height/2
	return [4]Vec2{{hw, hh}, {hw, -hh}, {-hw, hh}, {-hw, -hh}}
}

// String implements fmt.Stringer.
func (r Rect) String() string {
	return fmt.Sprintf("Rect(l=%g b=%g w=%g h=%g)", r.left, r.bottom, r.width, r.height)
}

// Shifted returns r translated by (dx, dy).
func (r Rect) Shifted(dx, dy float64) Rect {
	return Rect{left: r.left + dx, bottom: r.bottom + dy, width: r.width, height: r.height}
}

// ShiftedBy is Shifted with a vector argument.
func (r Rect) ShiftedBy(d Vec2) Rect {
	return r.Shifted(d.X, d.Y)
}

// MovedTo returns r recentered on (cx, cy).
func (r Rect) MovedTo(cx, cy float64) Rect {
	return Rect{left: cx - r.width/2, bottom: cy - r.height/2, width: r.width, height: r.height}
}

// Resized returns a rectangle of the new size with the given anchor kept
// in place.
func (r Rect) Resized(width, height float64, anchor Anchor) (Rect, error) {
	switch anchor {
	case AnchorCenter:
		return RectFromCenter(r.CenterX(), r.CenterY(), width, height)
	case AnchorBottomLeft:
		return NewRect(r.Left(), r.Bottom(), width, height)
	case AnchorBottomRight:
		return NewRect(r.Right()-width, r.Bottom(), width, height)
	case AnchorTopLeft:
		return NewRect(r.Left(), r.Top()-height, width, height)
	case AnchorTopRight:
		return NewRect(r.Right()-width, r.Top()-height, width, height)
	default:
		return Rect{}, fmt.Errorf("geom: unknown anchor %s", anchor)
	}
}

// Scaled multiplies both dimensions by s about the anchor.
func (r Rect) Scaled(s float64, anchor Anchor) (Rect, error) {
	return r.Resized(r.width*s, r.height*s, anchor)
}

// XYScaled multiplies width by sx and height by sy about the anchor.
func (r Rect) XYScaled(sx, sy float64, anchor Anchor) (Rect, error) {
	return r.Resized(r.width*sx, r.height*sy, anchor)
}

// Expanded grows r about its center by dx horizontally and dy vertically.
// Negative values shrink it.
func (r Rect) Expanded(dx, dy float64) (Rect, error) {
	return RectFromCenter(r.CenterX(), r.CenterY(), r.width+dx, r.height+dy)
}

// Rotated90 swaps width and height about the center.
func (r Rect) Rotated90() Rect {
	return Rect{
		left:   r.CenterX() - r.height/2,
		bottom: r.CenterY() - r.width/2,
		width:  r.height,
		height: r.width,
	}
}

// RotatedBounds returns the axis-aligned bounds of r rotated by angle
// degrees about its center.
func (r Rect) RotatedBounds(angle float64) Rect {
	c := r.Center()
	corners := r.Corners()
	pts := make([]Vec2, len(corners))
	for i, p := range corners {
		pts[i] = p.Rotate(angle, c)
	}
	// Four points, never empty.
	out, _ := RectThatContains(pts...)
	return out
}

// CollideRect reports whether r and other overlap. In strict mode the
// rectangles are treated as open sets, so touching edges do not collide;
// otherwise they are closed and touching counts.
func (r Rect) CollideRect(other Rect, strict bool) bool {
	if strict {
		return !(r.Left() >= other.Right() ||
			r.Right() <= other.Left() ||
			r.Bottom() >= other.Top() ||
			r.Top() <= other.Bottom())
	}
	return !(r.Left() > other.Right() ||
		r.Right() < other.Left() ||
		r.Bottom() > other.Top() ||
		r.Top() < other.Bottom())
}

// IntersectRect returns the closed overlap of r and other.
// The second result is false when they do not touch.
func (r Rect) IntersectRect(other Rect) (Rect, bool) {
	if !r.CollideRect(other, false) {
		return Rect{}, false
	}
	out, err := RectFromSides(
		math.Max(r.Left(), other.Left()),
		math.Min(r.Right(), other.Right()),
		math.Max(r.Bottom(), other.Bottom()),
		math.Min(r.Top(), other.Top()),
		true,
	)
	return out, err == nil
}

// ContainsPoint reports whether p lies inside r or on its boundary.
func (r Rect) ContainsPoint(p Vec2) bool {
	return p.X >= r.Left() && p.X <= r.Right() && p.Y >= r.Bottom() && p.Y <= r.Top()
}
