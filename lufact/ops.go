// Package lufact: generic matrix operations shared by kernels and tests.

package lufact

import "fmt"

// Mul performs standard matrix multiplication C = A × B over the
// operands' common domain. No aliasing: a fresh result is allocated and
// the operands are never mutated.
//
// Determinism: fixed i→j→k loop order. Complexity: O(r·n·c).
func Mul[T any](a, b *Dense[T]) (*Dense[T], error) {
	if a == nil || b == nil {
		return nil, lufactErrorf(opMul, ErrNilMatrix)
	}
	if a.cols != b.rows {
		return nil, lufactErrorf(opMul, ErrDimensionMismatch)
	}
	dom := a.dom
	res, err := NewDense[T](dom, a.rows, b.cols)
	if err != nil {
		return nil, lufactErrorf(opMul, err)
	}
	var i, j, k int
	for i = 0; i < a.rows; i++ {
		for j = 0; j < b.cols; j++ {
			acc := dom.Zero()
			for k = 0; k < a.cols; k++ {
				prod, err := dom.Mul(a.at(i, k), b.at(k, j))
				if err != nil {
					return nil, lufactErrorf(opMul, fmt.Errorf("(%d,%d,%d): %w", i, j, k, err))
				}
				acc, err = dom.Add(acc, prod)
				if err != nil {
					return nil, lufactErrorf(opMul, fmt.Errorf("(%d,%d,%d): %w", i, j, k, err))
				}
			}
			res.set(i, j, acc)
		}
	}
	return res, nil
}

// Equal reports whether a and b agree entrywise within tol: every
// difference d must satisfy |d| ≤ |tol|. Pass the domain's zero to
// demand exact equality. Shapes must match.
func Equal[T any](a, b *Dense[T], tol T) (bool, error) {
	if a == nil || b == nil {
		return false, ErrNilMatrix
	}
	if a.rows != b.rows || a.cols != b.cols {
		return false, ErrDimensionMismatch
	}
	dom := a.dom
	for i := 0; i < a.rows; i++ {
		for j := 0; j < a.cols; j++ {
			d, err := dom.Sub(a.at(i, j), b.at(i, j))
			if err != nil {
				return false, err
			}
			if !dom.IsZero(d, tol) {
				return false, nil
			}
		}
	}
	return true, nil
}

// IsZeroMatrix reports whether every entry of a is within tol of zero.
func IsZeroMatrix[T any](a *Dense[T], tol T) (bool, error) {
	if a == nil {
		return false, ErrNilMatrix
	}
	for i := 0; i < a.rows; i++ {
		for j := 0; j < a.cols; j++ {
			if !a.dom.IsZero(a.at(i, j), tol) {
				return false, nil
			}
		}
	}
	return true, nil
}
