// Package lufact provides generic dense matrices and a rank-revealing,
// full-pivoting LU factorization with null-space extraction.
//
// 🚀 What is full pivoting?
//
//	At every elimination step the pivot is the largest-magnitude entry of
//	the ENTIRE trailing submatrix, not just the current column. Row and
//	column swaps are both recorded, giving
//
//	    L · U = A[p, q]
//
//	with L unit lower-triangular (n×n), U upper-triangular in the pivoted
//	sense (n×m), p a row permutation and q a column permutation. Full
//	pivoting is what makes the factorization survive singular and
//	rectangular inputs and makes rank detection trustworthy.
//
// Algorithm Outline:
//  1. Copy A into U; set L = I, p = q = identity.
//  2. For k = 0..min(n,m)-1:
//     scan U[k:, k:] column-major (columns outer, rows inner) for the
//     entry of maximum magnitude, keeping the FIRST maximum encountered;
//     if it is not strictly above the domain tolerance, stop — rank = k;
//     swap row k↔i (in U and the built part of L, recording p) and
//     column k↔j (in U, recording q);
//     store multipliers τ = U[k+1:,k]/U[k,k] into L and eliminate the
//     trailing block (rank-1 update).
//  3. Rank = number of completed steps; it is never recomputed elsewhere.
//
// Null space: for each free column f = rank..m-1, back-substitute
// U[0:r,0:r]·x = -U[0:r,f] and emit the basis vector (x…, 1 at f, 0…).
// Basis vectors live in PERMUTED column coordinates; use UnpermuteRows
// with the column permutation to return to original coordinates.
//
// Genericity:
//
//	Every kernel is parameterized by a scalar.Domain, so the same code
//	factorizes float64, complex128, exact rational (fixed- and
//	arbitrary-precision) and arbitrary-precision float matrices. Exact
//	domains use a zero pivot tolerance and the factorization invariant
//	holds exactly; approximate domains hold it within min(n,m)·ε.
//
// Errors:
//   - scalar.ErrOverflow — fixed-width rational growth (fatal, distinct)
//   - ErrDimensionMismatch, ErrBadShape, ErrOutOfRange — shape/index misuse
//
// Inputs are never mutated; a failed factorization returns no partial
// artifacts.
//
// Complexity: O(min(n,m)·n·m) for Decompose, O(r²·(m-r)) for NullSpace.
package lufact
