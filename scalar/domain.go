// Package scalar: the Domain interface.
// This file intentionally contains ONLY the generic arithmetic contract.
// Concrete domains live in dedicated files (float64.go, complex128.go,
// bigrat.go, rat64.go, bigfloat.go) per the package conventions.

package scalar

import "math/big"

// Domain describes the arithmetic a generic factorization needs from a
// scalar type T. Implementations must be stateless value types: a Domain
// may be copied freely and used concurrently.
//
// Contract:
//   - Operations never mutate their operands; pointer-valued T (BigRat,
//     BigFloat) always receives a freshly allocated result.
//   - Failures are explicit: checked domains (Rat64) return ErrOverflow,
//     every domain returns ErrDivisionByZero for a zero divisor. Domains
//     whose operations cannot fail return a nil error unconditionally.
//   - CmpAbs imposes a total order on magnitudes; pivot selection relies
//     on it being exact (no rounding inside the comparison).
type Domain[T any] interface {
	// Zero returns the additive identity.
	Zero() T

	// One returns the multiplicative identity.
	One() T

	// FromRat converts an exact rational into the domain. Approximate
	// domains round; Rat64 returns ErrNotRepresentable when num or den
	// exceeds int64.
	FromRat(r *big.Rat) (T, error)

	// Add returns x + y.
	Add(x, y T) (T, error)

	// Sub returns x - y.
	Sub(x, y T) (T, error)

	// Mul returns x * y.
	Mul(x, y T) (T, error)

	// Div returns x / y. A zero divisor yields ErrDivisionByZero.
	Div(x, y T) (T, error)

	// Neg returns -x.
	Neg(x T) (T, error)

	// CmpAbs compares magnitudes: -1 if |x| < |y|, 0 if equal, +1 if |x| > |y|.
	CmpAbs(x, y T) int

	// IsZero reports whether x is effectively zero under tolerance tol,
	// i.e. |x| ≤ |tol|. Exact domains pass a true-zero tolerance, so only
	// an exact zero satisfies the predicate.
	IsZero(x, tol T) bool

	// Tol returns the pivot tolerance for factorizing an rows×cols matrix:
	// exact zero for exact domains, min(rows,cols)·ε for approximate ones.
	Tol(rows, cols int) T

	// Clone returns an independent deep copy of x.
	Clone(x T) T

	// Format renders x for diagnostics and matrix printing.
	Format(x T) string
}

// minDim returns min(rows, cols), clamped at zero for degenerate shapes.
func minDim(rows, cols int) int {
	if rows < cols {
		cols = rows
	}
	if cols < 0 {
		cols = 0
	}
	return cols
}
