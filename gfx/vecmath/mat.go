package vecmath

import "wirebox/gfx/fixed"

// Mat3 is a row-major 3x3 matrix. Rotation matrices keep every entry within
// [-One, One], which bounds each row sum of Apply to well inside Wide.
type Mat3 [3][3]fixed.Fixed

func Identity() Mat3 {
	return Mat3{
		{fixed.One, 0, 0},
		{0, fixed.One, 0},
		{0, 0, fixed.One},
	}
}

// RotateX tilts +Y toward +Z.
func RotateX(a fixed.Angle) Mat3 {
	c, s := fixed.Cos(a), fixed.Sin(a)
	return Mat3{
		{fixed.One, 0, 0},
		{0, c, -s},
		{0, s, c},
	}
}

// RotateY turns +X toward +Z, matching (x + iz) * (cos a + i sin a).
func RotateY(a fixed.Angle) Mat3 {
	c, s := fixed.Cos(a), fixed.Sin(a)
	return Mat3{
		{c, 0, -s},
		{0, fixed.One, 0},
		{s, 0, c},
	}
}

// RotateZ turns +X toward +Y.
func RotateZ(a fixed.Angle) Mat3 {
	c, s := fixed.Cos(a), fixed.Sin(a)
	return Mat3{
		{c, -s, 0},
		{s, c, 0},
		{0, 0, fixed.One},
	}
}

// Mul returns m*o (o is applied first).
func (m Mat3) Mul(o Mat3) Mat3 {
	var out Mat3
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out[r][c] = fixed.Narrow(
				fixed.Product(m[r][0], o[0][c]) +
					fixed.Product(m[r][1], o[1][c]) +
					fixed.Product(m[r][2], o[2][c]))
		}
	}
	return out
}

// Apply returns m*v. Each row is accumulated at double width and rounded once.
func (m Mat3) Apply(v Vec3) Vec3 {
	return Vec3{
		X: m.row(0, v),
		Y: m.row(1, v),
		Z: m.row(2, v),
	}
}

func (m Mat3) row(r int, v Vec3) fixed.Fixed {
	return fixed.Narrow(
		fixed.Product(m[r][0], v.X) +
			fixed.Product(m[r][1], v.Y) +
			fixed.Product(m[r][2], v.Z))
}
