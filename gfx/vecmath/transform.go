package vecmath

// Transform is an affine model transform: rotate, then move.
type Transform struct {
	Rot  Mat3
	Move Vec3
}

func IdentityTransform() Transform { return Transform{Rot: Identity()} }

// Apply maps a model-space vertex into view space.
func (t Transform) Apply(v Vec3) Vec3 {
	return t.Rot.Apply(v).Add(t.Move)
}

// Then returns the transform that applies t first and next second.
func (t Transform) Then(next Transform) Transform {
	return Transform{
		Rot:  next.Rot.Mul(t.Rot),
		Move: next.Rot.Apply(t.Move).Add(next.Move),
	}
}
