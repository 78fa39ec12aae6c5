// Package lufact: null-space extraction from a full-pivot factorization.

package lufact

import "fmt"

// NullSpace constructs an explicit basis for the kernel of the factored
// matrix. The result is an m×(m−r) matrix whose columns are the basis
// vectors, expressed in PERMUTED column coordinates: coordinate i of a
// basis vector belongs to original column ColPerm()[i]. Use
// UnpermuteRows to translate back.
//
// Stage 1 (Shape): r = Rank(); m−r free columns. Full column rank (and
// the degenerate m = 0 case) yields a matrix with zero columns — never
// an error.
//
// Stage 2 (Back-substitute): for each free column f = r..m-1 solve
// U[0:r,0:r]·x = −U[0:r,f] bottom-up against the leading triangular
// block, then emit (x…, 1 at position f, 0 elsewhere). The solve is
// exact for exact domains; the pivots U[i,i] are nonzero by construction
// of the rank, so the divisions cannot hit a zero divisor.
//
// Complexity: O(r²·(m−r)). Determinism: fixed traversal orders; the
// basis depends only on the factorization (and thus on the documented
// pivot tie-break).
func (f *Factorization[T]) NullSpace() (*Dense[T], error) {
	dom := f.u.dom
	m := f.u.cols
	r := f.rank

	basis, err := NewDense[T](dom, m, m-r)
	if err != nil {
		return nil, lufactErrorf(opNullSpace, err)
	}
	if m == r {
		return basis, nil // no free columns, empty basis
	}

	x := make([]T, r)
	var i, j int
	for free := r; free < m; free++ {
		// Solve U₁·x = −U[0:r, free] by back-substitution.
		for i = r - 1; i >= 0; i-- {
			sum := f.u.at(i, free)
			for j = i + 1; j < r; j++ {
				prod, err := dom.Mul(f.u.at(i, j), x[j])
				if err != nil {
					return nil, lufactErrorf(opNullSpace, fmt.Errorf("column %d, (%d,%d): %w", free, i, j, err))
				}
				sum, err = dom.Add(sum, prod)
				if err != nil {
					return nil, lufactErrorf(opNullSpace, fmt.Errorf("column %d, (%d,%d): %w", free, i, j, err))
				}
			}
			neg, err := dom.Neg(sum)
			if err != nil {
				return nil, lufactErrorf(opNullSpace, fmt.Errorf("column %d, row %d: %w", free, i, err))
			}
			x[i], err = dom.Div(neg, f.u.at(i, i))
			if err != nil {
				return nil, lufactErrorf(opNullSpace, fmt.Errorf("column %d, row %d: %w", free, i, err))
			}
		}
		// Emit the basis vector: bound coordinates, then the free 1.
		col := free - r
		for i = 0; i < r; i++ {
			basis.set(i, col, x[i])
		}
		basis.set(free, col, dom.One())
	}

	return basis, nil
}

// UnpermuteRows maps a matrix whose rows are indexed in permuted
// coordinates back to original coordinates: row i of b becomes row q[i]
// of the result. This is how null-space basis vectors (permuted column
// space) are translated into original column space.
func UnpermuteRows[T any](b *Dense[T], q []int) (*Dense[T], error) {
	if b == nil {
		return nil, lufactErrorf(opUnpermute, ErrNilMatrix)
	}
	if err := validatePerm(q, b.rows); err != nil {
		return nil, lufactErrorf(opUnpermute, err)
	}
	out, err := NewDense[T](b.dom, b.rows, b.cols)
	if err != nil {
		return nil, lufactErrorf(opUnpermute, err)
	}
	for i := 0; i < b.rows; i++ {
		for j := 0; j < b.cols; j++ {
			out.set(q[i], j, b.dom.Clone(b.at(i, j)))
		}
	}
	return out, nil
}
