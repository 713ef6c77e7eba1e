// Package pipeline turns the animation state into a model transform and
// projects a mesh into screen space once per frame.
package pipeline

import (
	"wirebox/gfx/fixed"
	"wirebox/gfx/scene"
	"wirebox/gfx/vecmath"
)

// State is the per-frame animation state. Both angles wrap at one revolution.
type State struct {
	Spin  fixed.Angle
	Orbit fixed.Angle
}

// Motion holds the animation constants.
type Motion struct {
	SpinStep  fixed.Angle
	OrbitStep fixed.Angle

	// Tilt pitches the scene about X after spinning.
	Tilt fixed.Angle

	// OrbitRadius moves the scene around a circle in the XZ plane, Bob moves
	// it up and down in step with the orbit.
	OrbitRadius fixed.Fixed
	Bob         fixed.Fixed
}

// DefaultMotion spins 3 degrees and orbits 1 degree per frame.
func DefaultMotion() Motion {
	return Motion{
		SpinStep:    3,
		OrbitStep:   1,
		OrbitRadius: fixed.One,
		Bob:         fixed.One / 4,
	}
}

// Static returns a motion that never moves the scene.
func Static() Motion { return Motion{} }

// Advance steps both angles once.
func (s *State) Advance(m Motion) {
	s.Spin = s.Spin.Add(m.SpinStep)
	s.Orbit = s.Orbit.Add(m.OrbitStep)
}

// Compose derives the model transform for s. Rotations are rebuilt from the
// lookup table every frame, so no error accumulates across frames.
func Compose(s State, m Motion) vecmath.Transform {
	rot := vecmath.RotateY(s.Spin)
	if m.Tilt.Norm() != 0 {
		rot = vecmath.RotateX(m.Tilt).Mul(rot)
	}
	sin, cos := fixed.Sin(s.Orbit), fixed.Cos(s.Orbit)
	return vecmath.Transform{
		Rot: rot,
		Move: vecmath.Vec3{
			X: fixed.Mul(m.OrbitRadius, sin),
			Y: fixed.Mul(m.Bob, cos),
			Z: fixed.Mul(m.OrbitRadius, cos),
		},
	}
}

// Projected is the per-frame screen-space copy of a mesh's vertices.
type Projected struct {
	Points [scene.MaxVertices]vecmath.Point
	N      int
}

// At returns the projected position of vertex i.
func (p *Projected) At(i uint8) vecmath.Point { return p.Points[i] }

// Run projects every vertex of m into out. The mesh must have passed
// scene.Validate.
func Run(m *scene.Mesh, xf vecmath.Transform, proj vecmath.Projection, out *Projected) {
	n := len(m.Vertices)
	if n > len(out.Points) {
		n = len(out.Points)
	}
	for i := 0; i < n; i++ {
		out.Points[i] = proj.Project(xf.Apply(m.Vertices[i]))
	}
	out.N = n
}
