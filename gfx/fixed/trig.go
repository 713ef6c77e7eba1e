package fixed

//go:generate go run ../../cmd/mksintab -o sintab.go

// AngleSteps is the number of quantized angle steps in one revolution.
// One step is one degree.
const AngleSteps = 360

// Angle is a quantized angle in [0, AngleSteps).
type Angle uint16

const (
	Quarter  Angle = AngleSteps / 4
	HalfTurn Angle = AngleSteps / 2
)

// Add returns a+step wrapped to one revolution.
func (a Angle) Add(step Angle) Angle {
	return Angle((uint32(a) + uint32(step)) % AngleSteps)
}

// Norm wraps a into [0, AngleSteps).
func (a Angle) Norm() Angle { return a % AngleSteps }

// Degrees returns a quantized angle from any integer degree value.
func Degrees(d int) Angle {
	d %= AngleSteps
	if d < 0 {
		d += AngleSteps
	}
	return Angle(d)
}

// Sin returns sin(a) from the quarter-wave table.
func Sin(a Angle) Fixed {
	a = a.Norm()
	switch {
	case a <= Quarter:
		return sinTable[a]
	case a <= HalfTurn:
		return sinTable[HalfTurn-a]
	case a <= HalfTurn+Quarter:
		return -sinTable[a-HalfTurn]
	default:
		return -sinTable[AngleSteps-a]
	}
}

// Cos returns cos(a) from the quarter-wave table.
func Cos(a Angle) Fixed { return Sin(a.Norm().Add(Quarter)) }
