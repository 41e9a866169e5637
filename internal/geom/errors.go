package geom

import "errors"

var (
	// ErrInvalidDimension is returned when a rectangle would have a negative
	// width or height, or a NaN or infinite coordinate.
	ErrInvalidDimension = errors.New("geom: invalid dimension")

	// ErrEmptyInput is returned by bounding computations given no points.
	ErrEmptyInput = errors.New("geom: empty input")

	// ErrDegenerateGeometry is returned for shapes or configurations that
	// have no meaningful collision response, such as a circle with a
	// non-positive radius.
	ErrDegenerateGeometry = errors.New("geom: degenerate geometry")
)
