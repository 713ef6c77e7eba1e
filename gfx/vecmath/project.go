package vecmath

import (
	"errors"
	"fmt"

	"wirebox/gfx/fixed"
)

// ClampLimit bounds projected coordinates handed to the clipper. It keeps
// every clip intersection product inside 32 bits.
const ClampLimit = 2048

var ErrUnknownProjection = errors.New("vecmath: unknown projection")

// ProjectionMode selects how view space maps to the screen.
type ProjectionMode uint8

const (
	// Perspective divides x and y by the depth z+Depth.
	Perspective ProjectionMode = iota
	// Orthographic scales x and y and ignores z.
	Orthographic
)

func (m ProjectionMode) String() string {
	switch m {
	case Perspective:
		return "perspective"
	case Orthographic:
		return "orthographic"
	default:
		return "unknown"
	}
}

// Projection maps view-space vertices to screen pixels. Model +Y is screen down.
type Projection struct {
	Mode   ProjectionMode
	Center Point

	// Perspective: sx = Center.X + x*Focal/(z+Depth).
	Focal    int
	Depth    fixed.Fixed
	MinDepth fixed.Fixed

	// Orthographic: sx = Center.X + x*Scale, in pixels per model unit.
	Scale int
}

// DefaultPerspective looks at the scene from 2.625 units away with a 64 px
// focal length, centered on the 128x64 panel.
func DefaultPerspective() Projection {
	return Projection{
		Mode:     Perspective,
		Center:   Point{X: 64, Y: 32},
		Focal:    64,
		Depth:    0x2a00,
		MinDepth: fixed.One / 16,
	}
}

// DefaultOrthographic maps one model unit to 32 px, centered on the panel.
func DefaultOrthographic() Projection {
	return Projection{
		Mode:   Orthographic,
		Center: Point{X: 64, Y: 32},
		Scale:  32,
	}
}

// ProjectionByName returns the default projection for a mode name:
// "perspective" (or "") and "orthographic" (or "ortho").
func ProjectionByName(name string) (Projection, error) {
	switch name {
	case "perspective", "":
		return DefaultPerspective(), nil
	case "orthographic", "ortho":
		return DefaultOrthographic(), nil
	}
	return Projection{}, fmt.Errorf("%w: %q", ErrUnknownProjection, name)
}

// Project returns the screen position of a view-space vertex.
func (p Projection) Project(v Vec3) Point {
	var sx, sy fixed.Wide
	switch p.Mode {
	case Orthographic:
		sx = fixed.Wide(fixed.MulInt(v.X, p.Scale))
		sy = fixed.Wide(fixed.MulInt(v.Y, p.Scale))
	default:
		z := fixed.Wide(v.Z) + fixed.Wide(p.Depth)
		if floor := fixed.Wide(p.MinDepth); z < floor {
			z = floor
		}
		if z <= 0 {
			z = 1
		}
		sx = fixed.DivRound(fixed.Wide(v.X)*fixed.Wide(p.Focal), z)
		sy = fixed.DivRound(fixed.Wide(v.Y)*fixed.Wide(p.Focal), z)
	}
	return Point{
		X: clampCoord(fixed.Wide(p.Center.X) + sx),
		Y: clampCoord(fixed.Wide(p.Center.Y) + sy),
	}
}

func clampCoord(v fixed.Wide) int16 {
	if v > ClampLimit {
		return ClampLimit
	}
	if v < -ClampLimit {
		return -ClampLimit
	}
	return int16(v)
}
