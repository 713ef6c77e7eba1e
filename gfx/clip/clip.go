// Package clip trims line segments to the visible screen rectangle.
package clip

import "wirebox/gfx/fixed"

// Rect is the visible area [0,W) x [0,H).
type Rect struct {
	W, H int
}

// Segment is a line between two integer screen points.
type Segment struct {
	X0, Y0, X1, Y1 int
}

type outcode uint8

const (
	left outcode = 1 << iota
	right
	top
	bottom
)

// maxPasses bounds the trimming loop. Each pass moves one endpoint onto a
// boundary; two boundaries per endpoint plus rounding slack is enough.
const maxPasses = 8

// Contains reports whether (x, y) is inside r. Boundary pixels are inside.
func (r Rect) Contains(x, y int) bool {
	return r.code(x, y) == 0
}

func (r Rect) code(x, y int) outcode {
	var c outcode
	if x < 0 {
		c |= left
	} else if x > r.W-1 {
		c |= right
	}
	if y < 0 {
		c |= top
	} else if y > r.H-1 {
		c |= bottom
	}
	return c
}

// Clip returns the part of s inside r. ok is false when nothing is visible.
// Segments already inside are returned unchanged. Coordinates are expected
// within the projection clamp range so intersection products fit 32 bits.
func (r Rect) Clip(s Segment) (Segment, bool) {
	if r.W <= 0 || r.H <= 0 {
		return Segment{}, false
	}
	line := s
	c0 := r.code(s.X0, s.Y0)
	c1 := r.code(s.X1, s.Y1)
	for pass := 0; pass < maxPasses; pass++ {
		if c0|c1 == 0 {
			return s, true
		}
		if c0&c1 != 0 {
			return Segment{}, false
		}

		if c0 != 0 {
			s.X0, s.Y0 = r.intersect(line, c0)
			c0 = r.code(s.X0, s.Y0)
		} else {
			s.X1, s.Y1 = r.intersect(line, c1)
			c1 = r.code(s.X1, s.Y1)
		}
	}
	return Segment{}, false
}

// intersect returns the point where the unclipped line s crosses the first
// boundary flagged by c, never starting from a previously rounded endpoint.
// A line parallel to that boundary would already share an outcode bit with
// its other endpoint, so the divisor is never zero.
func (r Rect) intersect(s Segment, c outcode) (x, y int) {
	dx := s.X1 - s.X0
	dy := s.Y1 - s.Y0
	switch {
	case c&top != 0:
		y = 0
		x = s.X0 + lerp(dx, y-s.Y0, dy)
	case c&bottom != 0:
		y = r.H - 1
		x = s.X0 + lerp(dx, y-s.Y0, dy)
	case c&right != 0:
		x = r.W - 1
		y = s.Y0 + lerp(dy, x-s.X0, dx)
	default:
		x = 0
		y = s.Y0 + lerp(dy, x-s.X0, dx)
	}
	return x, y
}

// lerp returns d*num/den rounded to nearest.
func lerp(d, num, den int) int {
	return int(fixed.DivRound(fixed.Wide(d)*fixed.Wide(num), fixed.Wide(den)))
}
