// Package vecmath provides fixed-point vectors, rotation matrices and the
// projection used to map model space onto the panel.
package vecmath

import "wirebox/gfx/fixed"

// Vec3 is a 3D vector in model space.
type Vec3 struct {
	X, Y, Z fixed.Fixed
}

func V3(x, y, z fixed.Fixed) Vec3 { return Vec3{X: x, Y: y, Z: z} }

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

func (v Vec3) Scale(s fixed.Fixed) Vec3 {
	return Vec3{fixed.Mul(v.X, s), fixed.Mul(v.Y, s), fixed.Mul(v.Z, s)}
}

// Point is a projected screen coordinate.
type Point struct {
	X, Y int16
}
