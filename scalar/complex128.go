package scalar

import (
	"math/big"
	"math/cmplx"
	"strconv"
)

// Complex128 is the complex machine floating-point domain.
// Magnitude is the modulus |z|; the tolerance policy mirrors Float64
// (min(n, m)·ε, carried in the real part of the tolerance value).
type Complex128 struct{}

// Zero returns 0.
func (Complex128) Zero() complex128 { return 0 }

// One returns 1.
func (Complex128) One() complex128 { return 1 }

// FromRat rounds r to the nearest float64 and embeds it as a real value.
func (Complex128) FromRat(r *big.Rat) (complex128, error) {
	f, _ := r.Float64()
	return complex(f, 0), nil
}

// Add returns x + y. Never fails.
func (Complex128) Add(x, y complex128) (complex128, error) { return x + y, nil }

// Sub returns x - y. Never fails.
func (Complex128) Sub(x, y complex128) (complex128, error) { return x - y, nil }

// Mul returns x * y. Never fails.
func (Complex128) Mul(x, y complex128) (complex128, error) { return x * y, nil }

// Div returns x / y, or ErrDivisionByZero when y == 0.
func (Complex128) Div(x, y complex128) (complex128, error) {
	if y == 0 {
		return 0, ErrDivisionByZero
	}
	return x / y, nil
}

// Neg returns -x. Never fails.
func (Complex128) Neg(x complex128) (complex128, error) { return -x, nil }

// CmpAbs compares moduli |x| and |y|.
func (Complex128) CmpAbs(x, y complex128) int {
	ax, ay := cmplx.Abs(x), cmplx.Abs(y)
	switch {
	case ax < ay:
		return -1
	case ax > ay:
		return +1
	default:
		return 0
	}
}

// IsZero reports |x| ≤ |tol|.
func (Complex128) IsZero(x, tol complex128) bool { return cmplx.Abs(x) <= cmplx.Abs(tol) }

// Tol returns min(rows, cols)·ε as a real complex value.
func (Complex128) Tol(rows, cols int) complex128 {
	return complex(float64(minDim(rows, cols))*epsFloat64, 0)
}

// Clone returns x (value type; nothing to copy).
func (Complex128) Clone(x complex128) complex128 { return x }

// Format renders x as "(re+imi)" in shortest round-trip form.
func (Complex128) Format(x complex128) string {
	return strconv.FormatComplex(x, 'g', -1, 128)
}
