// Package scalar: fixed-width exact rationals.
// Rat64 keeps an int64 numerator over a positive int64 denominator in
// lowest terms. Every arithmetic step is overflow checked: exceeding the
// representable range surfaces ErrOverflow instead of wrapping, so callers
// can distinguish "your values outgrew 64 bits" from every other failure
// and retry with the BigRat domain.

package scalar

import (
	"fmt"
	"math"
	"math/big"
	"math/bits"
)

// Rat64 is an exact rational with 64-bit fixed-width components.
// Invariants: den > 0 and gcd(|num|, den) == 1. The zero Rat64 has
// den == 0 and is not a valid number; construct through NewRat64,
// NewRat64FromInt or the FixedRat domain.
type Rat64 struct {
	num int64
	den int64
}

// NewRat64 builds num/den in lowest terms.
// Returns ErrZeroDenominator when den == 0 and ErrOverflow when the
// reduced components do not fit in int64 (sign normalization of -2⁶³).
func NewRat64(num, den int64) (Rat64, error) {
	return reduceRat64(num, den)
}

// NewRat64FromInt builds n/1.
func NewRat64FromInt(n int64) Rat64 {
	return Rat64{num: n, den: 1}
}

// Num returns the numerator (sign-carrying).
func (r Rat64) Num() int64 { return r.num }

// Den returns the denominator (always positive for valid values).
func (r Rat64) Den() int64 { return r.den }

// Sign returns -1, 0 or +1 by the sign of the numerator.
func (r Rat64) Sign() int {
	switch {
	case r.num < 0:
		return -1
	case r.num > 0:
		return +1
	default:
		return 0
	}
}

// Rat converts to an arbitrary-precision *big.Rat.
func (r Rat64) Rat() *big.Rat { return big.NewRat(r.num, r.den) }

// String renders "num/den", or just "num" when den == 1.
func (r Rat64) String() string {
	if r.den == 1 {
		return fmt.Sprintf("%d", r.num)
	}
	return fmt.Sprintf("%d/%d", r.num, r.den)
}

// absU64 returns |n| as uint64; correct for math.MinInt64.
func absU64(n int64) uint64 {
	if n < 0 {
		return -uint64(n)
	}
	return uint64(n)
}

// gcdU64 returns gcd(a, b) with gcd(x, 0) == x.
func gcdU64(a, b uint64) uint64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// reduceRat64 normalizes num/den: positive denominator, lowest terms.
// Works through uint64 magnitudes so that math.MinInt64 inputs are handled
// without intermediate wraparound.
func reduceRat64(num, den int64) (Rat64, error) {
	if den == 0 {
		return Rat64{}, ErrZeroDenominator
	}
	if num == 0 {
		return Rat64{num: 0, den: 1}, nil
	}
	neg := (num < 0) != (den < 0)
	un, ud := absU64(num), absU64(den)
	g := gcdU64(un, ud)
	un /= g
	ud /= g
	if ud > math.MaxInt64 {
		return Rat64{}, ErrOverflow
	}
	if neg {
		// -2⁶³ is representable as a numerator; anything larger is not.
		if un > uint64(math.MaxInt64)+1 {
			return Rat64{}, ErrOverflow
		}
		return Rat64{num: -int64(un), den: int64(ud)}, nil
	}
	if un > math.MaxInt64 {
		return Rat64{}, ErrOverflow
	}
	return Rat64{num: int64(un), den: int64(ud)}, nil
}

// addInt64 returns a + b or ErrOverflow.
func addInt64(a, b int64) (int64, error) {
	s := a + b
	if (a > 0 && b > 0 && s <= 0) || (a < 0 && b < 0 && s >= 0) {
		return 0, ErrOverflow
	}
	return s, nil
}

// mulInt64 returns a * b or ErrOverflow.
func mulInt64(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	if a == math.MinInt64 || b == math.MinInt64 {
		// |MinInt64| has no int64 counterpart; any nonzero partner but ±1
		// overflows, and MinInt64 * -1 overflows too.
		if a == 1 {
			return b, nil
		}
		if b == 1 {
			return a, nil
		}
		return 0, ErrOverflow
	}
	p := a * b
	if p/b != a {
		return 0, ErrOverflow
	}
	return p, nil
}

// FixedRat is the fixed-width exact rational domain over Rat64.
//
// Like BigRat its tolerance is exactly zero, but unlike BigRat its
// arithmetic can fail: numerator/denominator growth beyond int64 during
// elimination is reported as ErrOverflow.
type FixedRat struct{}

// Zero returns 0/1.
func (FixedRat) Zero() Rat64 { return Rat64{num: 0, den: 1} }

// One returns 1/1.
func (FixedRat) One() Rat64 { return Rat64{num: 1, den: 1} }

// FromRat converts r when both components fit in int64;
// otherwise returns ErrNotRepresentable.
func (FixedRat) FromRat(r *big.Rat) (Rat64, error) {
	if !r.Num().IsInt64() || !r.Denom().IsInt64() {
		return Rat64{}, ErrNotRepresentable
	}
	return reduceRat64(r.Num().Int64(), r.Denom().Int64())
}

// Add returns x + y, overflow checked.
func (FixedRat) Add(x, y Rat64) (Rat64, error) {
	// x.num*y.den + y.num*x.den over x.den*y.den, then reduce.
	xn, err := mulInt64(x.num, y.den)
	if err != nil {
		return Rat64{}, err
	}
	yn, err := mulInt64(y.num, x.den)
	if err != nil {
		return Rat64{}, err
	}
	num, err := addInt64(xn, yn)
	if err != nil {
		return Rat64{}, err
	}
	den, err := mulInt64(x.den, y.den)
	if err != nil {
		return Rat64{}, err
	}
	return reduceRat64(num, den)
}

// Sub returns x - y, overflow checked.
func (d FixedRat) Sub(x, y Rat64) (Rat64, error) {
	ny, err := d.Neg(y)
	if err != nil {
		return Rat64{}, err
	}
	return d.Add(x, ny)
}

// Mul returns x * y, overflow checked.
func (FixedRat) Mul(x, y Rat64) (Rat64, error) {
	// Cross-reduce first so that e.g. (a/b)*(b/a) never overflows.
	g1 := gcdU64(absU64(x.num), absU64(y.den))
	g2 := gcdU64(absU64(y.num), absU64(x.den))
	if g1 == 0 {
		g1 = 1
	}
	if g2 == 0 {
		g2 = 1
	}
	num, err := mulInt64(x.num/int64(g1), y.num/int64(g2))
	if err != nil {
		return Rat64{}, err
	}
	den, err := mulInt64(x.den/int64(g2), y.den/int64(g1))
	if err != nil {
		return Rat64{}, err
	}
	return reduceRat64(num, den)
}

// Div returns x / y; a zero y yields ErrDivisionByZero.
func (d FixedRat) Div(x, y Rat64) (Rat64, error) {
	if y.num == 0 {
		return Rat64{}, ErrDivisionByZero
	}
	inv, err := reduceRat64(y.den, y.num)
	if err != nil {
		return Rat64{}, err
	}
	return d.Mul(x, inv)
}

// Neg returns -x; negating a -2⁶³ numerator overflows.
func (FixedRat) Neg(x Rat64) (Rat64, error) {
	if x.num == math.MinInt64 {
		return Rat64{}, ErrOverflow
	}
	return Rat64{num: -x.num, den: x.den}, nil
}

// CmpAbs compares |x| against |y| exactly, via 128-bit cross products.
func (FixedRat) CmpAbs(x, y Rat64) int {
	hx, lx := bits.Mul64(absU64(x.num), uint64(y.den))
	hy, ly := bits.Mul64(absU64(y.num), uint64(x.den))
	switch {
	case hx < hy || (hx == hy && lx < ly):
		return -1
	case hx > hy || (hx == hy && lx > ly):
		return +1
	default:
		return 0
	}
}

// IsZero reports x == 0 exactly (tolerance is always zero for this domain).
func (d FixedRat) IsZero(x, tol Rat64) bool {
	if tol.num == 0 {
		return x.num == 0
	}
	return d.CmpAbs(x, tol) <= 0
}

// Tol returns exact zero.
func (FixedRat) Tol(rows, cols int) Rat64 { return Rat64{num: 0, den: 1} }

// Clone returns x (value type; nothing to copy).
func (FixedRat) Clone(x Rat64) Rat64 { return x }

// Format renders x via Rat64.String.
func (FixedRat) Format(x Rat64) string { return x.String() }
