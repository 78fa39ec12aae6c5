// Package lufact: full-pivoting LU factorization.
// Decompose is the single rank authority of the package: the rank is the
// number of elimination steps actually completed here and is carried in
// the Factorization, never recomputed by an independent method.

package lufact

import "fmt"

// Factorization owns the four artifacts of a full-pivot LU decomposition
// of an n×m matrix A: L (n×n, unit lower-triangular), U (n×m,
// upper-triangular in the pivoted sense), the row permutation p and the
// column permutation q, such that L·U = A[p, q] — exactly for exact
// domains, within the domain tolerance otherwise.
//
// A Factorization is immutable after construction.
type Factorization[T any] struct {
	l       *Dense[T]
	u       *Dense[T]
	rowPerm []int
	colPerm []int
	rank    int
}

// L returns the unit lower-triangular factor (n×n).
// The returned matrix is shared, not copied; treat it as read-only.
func (f *Factorization[T]) L() *Dense[T] { return f.l }

// U returns the upper-triangular factor (n×m). Read-only, like L.
func (f *Factorization[T]) U() *Dense[T] { return f.u }

// Rank returns the number of elimination steps completed before the
// pivot search found no entry strictly above the domain tolerance.
func (f *Factorization[T]) Rank() int { return f.rank }

// RowPerm returns a copy of the row permutation p (length n).
func (f *Factorization[T]) RowPerm() []int {
	p := make([]int, len(f.rowPerm))
	copy(p, f.rowPerm)
	return p
}

// ColPerm returns a copy of the column permutation q (length m).
func (f *Factorization[T]) ColPerm() []int {
	q := make([]int, len(f.colPerm))
	copy(q, f.colPerm)
	return q
}

// Decompose computes the full-pivot LU factorization of a.
//
// Stage 1 (Prepare): copy a into U (the input is never mutated), set
// L = I, p and q to identity, and fetch the domain tolerance for the
// shape (exact zero for exact domains, min(n,m)·ε otherwise).
//
// Stage 2 (Eliminate): for each step k, scan the trailing block
// U[k:, k:] in column-major order (columns outer, rows inner) for the
// entry of maximum magnitude. The FIRST maximum encountered wins ties —
// a fixed, documented order, because the choice decides which null-space
// basis the solver later returns. If the maximum is not strictly above
// the tolerance, elimination stops and the rank is k. Otherwise swap
// row k↔i in U and in the built columns of L (recording p), swap column
// k↔j in U (recording q), store the multipliers τ = U[k+1:,k]/U[k,k]
// into L, zero the pivot column below the diagonal and apply the rank-1
// update to the trailing block.
//
// Any arithmetic failure (notably scalar.ErrOverflow under the FixedRat
// domain) aborts the whole factorization; no partial Factorization is
// ever returned.
//
// Complexity: O(min(n,m)·n·m). Determinism: fixed scan and update orders.
func Decompose[T any](a *Dense[T]) (*Factorization[T], error) {
	if a == nil {
		return nil, lufactErrorf(opDecompose, ErrNilMatrix)
	}
	dom := a.dom
	n, m := a.rows, a.cols

	u := a.Clone()
	l, err := NewDense[T](dom, n, n)
	if err != nil {
		return nil, lufactErrorf(opDecompose, err)
	}
	for i := 0; i < n; i++ {
		l.set(i, i, dom.One())
	}
	p := identityPerm(n)
	q := identityPerm(m)

	steps := n
	if m < steps {
		steps = m
	}
	tol := dom.Tol(n, m)
	rank := steps

	var i, j, k int
	for k = 0; k < steps; k++ {
		// Pivot search over the trailing block, column-major, first max wins.
		bi, bj := k, k
		best := u.at(k, k)
		for j = k; j < m; j++ {
			for i = k; i < n; i++ {
				if dom.CmpAbs(u.at(i, j), best) > 0 {
					best, bi, bj = u.at(i, j), i, j
				}
			}
		}

		// No usable pivot left: the effective rank is the steps done so far.
		if dom.IsZero(best, tol) {
			rank = k
			break
		}

		// Row swap k↔bi: whole row of U, built columns (0..k-1) of L.
		if bi != k {
			for j = 0; j < m; j++ {
				u.data[k*m+j], u.data[bi*m+j] = u.data[bi*m+j], u.data[k*m+j]
			}
			for j = 0; j < k; j++ {
				l.data[k*n+j], l.data[bi*n+j] = l.data[bi*n+j], l.data[k*n+j]
			}
			p[k], p[bi] = p[bi], p[k]
		}

		// Column swap k↔bj in U.
		if bj != k {
			for i = 0; i < n; i++ {
				u.data[i*m+k], u.data[i*m+bj] = u.data[i*m+bj], u.data[i*m+k]
			}
			q[k], q[bj] = q[bj], q[k]
		}

		// Eliminate below the pivot: τ = U[i,k]/U[k,k], rank-1 update.
		pivot := u.at(k, k)
		for i = k + 1; i < n; i++ {
			tau, err := dom.Div(u.at(i, k), pivot)
			if err != nil {
				return nil, lufactErrorf(opDecompose, fmt.Errorf("step %d, row %d: %w", k, i, err))
			}
			l.set(i, k, tau)
			u.set(i, k, dom.Zero())
			for j = k + 1; j < m; j++ {
				prod, err := dom.Mul(tau, u.at(k, j))
				if err != nil {
					return nil, lufactErrorf(opDecompose, fmt.Errorf("step %d, (%d,%d): %w", k, i, j, err))
				}
				diff, err := dom.Sub(u.at(i, j), prod)
				if err != nil {
					return nil, lufactErrorf(opDecompose, fmt.Errorf("step %d, (%d,%d): %w", k, i, j, err))
				}
				u.set(i, j, diff)
			}
		}

		rank = k + 1
	}

	return &Factorization[T]{l: l, u: u, rowPerm: p, colPerm: q, rank: rank}, nil
}

// identityPerm returns [0, 1, …, n-1].
func identityPerm(n int) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	return p
}
