// Package scalar: sentinel error set.
// All arithmetic failures in this package are reported through these
// sentinels; callers match them with errors.Is. No operation panics on
// user-triggered conditions.

package scalar

import "errors"

var (
	// ErrOverflow is returned when fixed-width rational arithmetic exceeds
	// the representable int64 numerator/denominator range. It is fatal for
	// the enclosing computation: callers needing larger values must opt
	// into the arbitrary-precision BigRat domain.
	ErrOverflow = errors.New("scalar: fixed-width rational overflow")

	// ErrDivisionByZero is returned by Div when the divisor is zero.
	ErrDivisionByZero = errors.New("scalar: division by zero")

	// ErrZeroDenominator is returned when constructing a rational with a
	// zero denominator.
	ErrZeroDenominator = errors.New("scalar: zero denominator")

	// ErrNotRepresentable is returned by FromRat when an exact rational
	// cannot be represented in the target domain without loss beyond the
	// domain's conversion policy (e.g. a big.Rat outside int64 range for
	// the Rat64 domain).
	ErrNotRepresentable = errors.New("scalar: value not representable in domain")
)
