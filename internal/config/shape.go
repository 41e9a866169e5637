package config

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/vovakirdan/hitbox/internal/geom"
)

// ParseShape parses a shape literal.
//
//	rect:left,bottom,width,height
//	circle:cx,cy,radius
func ParseShape(s string) (any, error) {
	kind, args, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return nil, fmt.Errorf("config: shape %q: missing kind prefix", s)
	}

	nums, err := parseFloats(args)
	if err != nil {
		return nil, fmt.Errorf("config: shape %q: %w", s, err)
	}

	switch strings.ToLower(kind) {
	case "rect":
		if len(nums) != 4 {
			return nil, fmt.Errorf("config: shape %q: rect wants 4 numbers, got %d", s, len(nums))
		}
		r, err := geom.NewRect(nums[0], nums[1], nums[2], nums[3])
		if err != nil {
			return nil, fmt.Errorf("config: shape %q: %w", s, err)
		}
		return r, nil
	case "circle":
		if len(nums) != 3 {
			return nil, fmt.Errorf("config: shape %q: circle wants 3 numbers, got %d", s, len(nums))
		}
		c, err := geom.NewCircle(nums[0], nums[1], nums[2])
		if err != nil {
			return nil, fmt.Errorf("config: shape %q: %w", s, err)
		}
		return c, nil
	default:
		return nil, fmt.Errorf("config: shape %q: unknown kind %q", s, kind)
	}
}

// FormatShape renders a shape back into literal form.
func FormatShape(shape any) string {
	switch s := shape.(type) {
	case geom.Rect:
		return fmt.Sprintf("rect:%s,%s,%s,%s", ff(s.Left()), ff(s.Bottom()), ff(s.Width()), ff(s.Height()))
	case geom.Circle:
		return fmt.Sprintf("circle:%s,%s,%s", ff(s.CenterX()), ff(s.CenterY()), ff(s.Radius()))
	default:
		return fmt.Sprintf("%v", shape)
	}
}

func parseFloats(s string) ([]float64, error) {
	fields := strings.Split(s, ",")
	out := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, fmt.Errorf("bad number %q", strings.TrimSpace(f))
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("non-finite number %q", strings.TrimSpace(f))
		}
		out = append(out, v)
	}
	return out, nil
}

func ff(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
