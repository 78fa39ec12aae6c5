package scalar

import "math/big"

// BigRat is the arbitrary-precision exact rational domain over *big.Rat.
//
// Every operation allocates a fresh *big.Rat; operands are never mutated.
// The tolerance is exactly zero: only a true zero entry halts elimination,
// so rank detection is exact regardless of entry growth.
type BigRat struct{}

// Zero returns a fresh 0/1.
func (BigRat) Zero() *big.Rat { return new(big.Rat) }

// One returns a fresh 1/1.
func (BigRat) One() *big.Rat { return big.NewRat(1, 1) }

// FromRat returns an independent copy of r.
func (BigRat) FromRat(r *big.Rat) (*big.Rat, error) {
	return new(big.Rat).Set(r), nil
}

// Add returns x + y. Never fails.
func (BigRat) Add(x, y *big.Rat) (*big.Rat, error) { return new(big.Rat).Add(x, y), nil }

// Sub returns x - y. Never fails.
func (BigRat) Sub(x, y *big.Rat) (*big.Rat, error) { return new(big.Rat).Sub(x, y), nil }

// Mul returns x * y. Never fails.
func (BigRat) Mul(x, y *big.Rat) (*big.Rat, error) { return new(big.Rat).Mul(x, y), nil }

// Div returns x / y, or ErrDivisionByZero when y == 0.
func (BigRat) Div(x, y *big.Rat) (*big.Rat, error) {
	if y.Sign() == 0 {
		return nil, ErrDivisionByZero
	}
	return new(big.Rat).Quo(x, y), nil
}

// Neg returns -x. Never fails.
func (BigRat) Neg(x *big.Rat) (*big.Rat, error) { return new(big.Rat).Neg(x), nil }

// CmpAbs compares |x| against |y| exactly.
func (BigRat) CmpAbs(x, y *big.Rat) int {
	ax := new(big.Rat).Abs(x)
	ay := new(big.Rat).Abs(y)
	return ax.Cmp(ay)
}

// IsZero reports x == 0 exactly (tol is always zero for this domain).
func (BigRat) IsZero(x, tol *big.Rat) bool {
	return new(big.Rat).Abs(x).Cmp(new(big.Rat).Abs(tol)) <= 0
}

// Tol returns exact zero: this domain never loses precision.
func (BigRat) Tol(rows, cols int) *big.Rat { return new(big.Rat) }

// Clone returns an independent copy of x.
func (BigRat) Clone(x *big.Rat) *big.Rat { return new(big.Rat).Set(x) }

// Format renders x as "num/den" (big.Rat canonical form).
func (BigRat) Format(x *big.Rat) string { return x.RatString() }
