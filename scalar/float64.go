package scalar

import (
	"math"
	"math/big"
	"strconv"
)

// epsFloat64 is the float64 machine epsilon (2⁻⁵²), the spacing between
// 1.0 and the next representable value.
const epsFloat64 = 0x1p-52

// Float64 is the machine floating-point domain.
//
// Tolerance policy: Tol(n, m) = min(n, m)·ε. A pivot whose magnitude does
// not strictly exceed this threshold is treated as zero, absorbing the
// rounding noise accumulated by up to min(n, m) elimination updates.
type Float64 struct{}

// Zero returns 0.
func (Float64) Zero() float64 { return 0 }

// One returns 1.
func (Float64) One() float64 { return 1 }

// FromRat rounds r to the nearest float64.
func (Float64) FromRat(r *big.Rat) (float64, error) {
	f, _ := r.Float64()
	return f, nil
}

// Add returns x + y. Never fails.
func (Float64) Add(x, y float64) (float64, error) { return x + y, nil }

// Sub returns x - y. Never fails.
func (Float64) Sub(x, y float64) (float64, error) { return x - y, nil }

// Mul returns x * y. Never fails.
func (Float64) Mul(x, y float64) (float64, error) { return x * y, nil }

// Div returns x / y, or ErrDivisionByZero when y == 0.
func (Float64) Div(x, y float64) (float64, error) {
	if y == 0 {
		return 0, ErrDivisionByZero
	}
	return x / y, nil
}

// Neg returns -x. Never fails.
func (Float64) Neg(x float64) (float64, error) { return -x, nil }

// CmpAbs compares |x| against |y|.
func (Float64) CmpAbs(x, y float64) int {
	ax, ay := math.Abs(x), math.Abs(y)
	switch {
	case ax < ay:
		return -1
	case ax > ay:
		return +1
	default:
		return 0
	}
}

// IsZero reports |x| ≤ tol.
func (Float64) IsZero(x, tol float64) bool { return math.Abs(x) <= math.Abs(tol) }

// Tol returns min(rows, cols)·ε.
func (Float64) Tol(rows, cols int) float64 { return float64(minDim(rows, cols)) * epsFloat64 }

// Clone returns x (value type; nothing to copy).
func (Float64) Clone(x float64) float64 { return x }

// Format renders x in shortest round-trip form.
func (Float64) Format(x float64) string { return strconv.FormatFloat(x, 'g', -1, 64) }
