// Package fixed implements the Q4.12 scalar used by the wireframe pipeline.
//
// Values are int16 scaled by 1<<Shift. Products and quotients are formed in the
// 32-bit Wide type and rounded back to nearest, ties away from zero. Results that
// do not fit int16 saturate; scene geometry and projection constants are chosen so
// that this never happens for built-in scenes.
package fixed

// Fixed is a signed Q4.12 number: range [-8, 8), resolution 1/4096.
type Fixed int16

// Wide is the double-width intermediate for products and quotients.
type Wide = int32

const (
	Shift = 12

	One  Fixed = 1 << Shift
	Half Fixed = One / 2

	Max Fixed = 1<<15 - 1
	Min Fixed = -1 << 15
)

// FromInt converts an integer. Out of range values saturate.
func FromInt(v int) Fixed { return saturate(int64(v) << Shift) }

// FromRatio returns num/den rounded to the nearest Fixed.
func FromRatio(num, den int) Fixed {
	return saturate(divRound64(int64(num)<<Shift, int64(den)))
}

// Int returns the integer part, rounded toward negative infinity.
func (f Fixed) Int() int { return int(f) >> Shift }

// Round returns the nearest integer, ties away from zero.
func (f Fixed) Round() int { return int(roundShift(int64(f), Shift)) }

func Add(a, b Fixed) Fixed { return a + b }
func Sub(a, b Fixed) Fixed { return a - b }

// Product widens a and b and multiplies them. The result carries 2*Shift
// fractional bits; pass it to Narrow to get back to Fixed.
func Product(a, b Fixed) Wide { return Wide(a) * Wide(b) }

// Narrow rescales a double-scale product back to Fixed.
func Narrow(w Wide) Fixed { return saturate(roundShift(int64(w), Shift)) }

// Mul returns a*b rounded to nearest.
func Mul(a, b Fixed) Fixed { return Narrow(Product(a, b)) }

// Div returns a/b rounded to nearest. b must be non-zero.
func Div(a, b Fixed) Fixed {
	return saturate(divRound64(int64(a)<<Shift, int64(b)))
}

// Recip returns 1/a. a must be non-zero.
func Recip(a Fixed) Fixed { return Div(One, a) }

// MulInt returns a*n as an integer, rounded to nearest.
func MulInt(a Fixed, n int) int {
	return int(divRound64(int64(a)*int64(n), int64(One)))
}

// DivRound divides two wide integers rounding to nearest, ties away from zero.
// d must be non-zero.
func DivRound(n, d Wide) Wide { return Wide(divRound64(int64(n), int64(d))) }

func roundShift(w int64, s uint) int64 {
	half := int64(1) << (s - 1)
	if w >= 0 {
		return (w + half) >> s
	}
	return -((-w + half) >> s)
}

func divRound64(n, d int64) int64 {
	if d < 0 {
		n, d = -n, -d
	}
	if n >= 0 {
		return (n + d/2) / d
	}
	return -((-n + d/2) / d)
}

func saturate(v int64) Fixed {
	if v > int64(Max) {
		return Max
	}
	if v < int64(Min) {
		return Min
	}
	return Fixed(v)
}
