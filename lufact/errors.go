// Package lufact: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors. All kernels return
// these sentinels and tests check them via errors.Is. Wrapping with an
// operation tag happens at the facade via lufactErrorf; callers still
// match the underlying sentinel.

package lufact

import (
	"errors"
	"fmt"
)

var (
	// ErrNilMatrix indicates that a nil *Dense was passed where a matrix
	// is required.
	ErrNilMatrix = errors.New("lufact: nil matrix")

	// ErrNilDomain indicates that a matrix was constructed without a
	// scalar domain.
	ErrNilDomain = errors.New("lufact: nil scalar domain")

	// ErrBadShape is returned when a requested shape is invalid
	// (negative rows or columns; zero is a legal degenerate shape).
	ErrBadShape = errors.New("lufact: invalid shape")

	// ErrOutOfRange indicates a row or column index outside valid bounds.
	// Public indexers (At/Set) return this, they never panic.
	ErrOutOfRange = errors.New("lufact: index out of range")

	// ErrDataLength indicates that a flat data slice does not match the
	// requested rows×cols element count.
	ErrDataLength = errors.New("lufact: data length does not match dimensions")

	// ErrDimensionMismatch indicates incompatible operand dimensions,
	// e.g. Mul where a.Cols() != b.Rows().
	ErrDimensionMismatch = errors.New("lufact: dimension mismatch")

	// ErrBadPermutation indicates a permutation slice whose length or
	// contents do not form a permutation of the expected index range.
	ErrBadPermutation = errors.New("lufact: invalid permutation")
)

// Operation name constants for unified error wrapping.
const (
	opDecompose = "Decompose"
	opNullSpace = "NullSpace"
	opMul       = "Mul"
	opPermuted  = "Permuted"
	opUnpermute = "UnpermuteRows"
)

// lufactErrorf wraps err with an operation tag, preserving the underlying
// sentinel for errors.Is/As. Call only with err != nil.
func lufactErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
