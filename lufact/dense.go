// Package lufact: generic row-major dense matrix.
// Dense stores its elements in a flat slice for cache friendliness and
// carries the scalar domain that gives those elements their arithmetic.

package lufact

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/katalvlaran/buckpi/scalar"
)

// Dense is a row-major rows×cols matrix over the scalar type T.
// Zero-sized shapes (0×m, n×0, 0×0) are legal and behave as empty
// matrices; negative shapes are rejected at construction.
type Dense[T any] struct {
	dom  scalar.Domain[T]
	rows int
	cols int
	data []T // flat backing storage, length == rows*cols
}

// NewDense creates a rows×cols matrix filled with the domain's zero.
// Stage 1 (Validate): domain non-nil, rows ≥ 0, cols ≥ 0.
// Stage 2 (Prepare): allocate and zero-fill the flat backing slice.
// Complexity: O(rows·cols).
func NewDense[T any](d scalar.Domain[T], rows, cols int) (*Dense[T], error) {
	if d == nil {
		return nil, ErrNilDomain
	}
	if rows < 0 || cols < 0 {
		return nil, ErrBadShape
	}
	data := make([]T, rows*cols)
	for i := range data {
		data[i] = d.Zero()
	}
	return &Dense[T]{dom: d, rows: rows, cols: cols, data: data}, nil
}

// NewDenseFromSlice creates a rows×cols matrix from row-major data.
// Entries are deep-copied through the domain, so the caller's slice and
// any pointer-valued elements remain independent of the matrix.
func NewDenseFromSlice[T any](d scalar.Domain[T], rows, cols int, data []T) (*Dense[T], error) {
	if d == nil {
		return nil, ErrNilDomain
	}
	if rows < 0 || cols < 0 {
		return nil, ErrBadShape
	}
	if len(data) != rows*cols {
		return nil, ErrDataLength
	}
	cp := make([]T, len(data))
	for i, v := range data {
		cp[i] = d.Clone(v)
	}
	return &Dense[T]{dom: d, rows: rows, cols: cols, data: cp}, nil
}

// NewDenseFromRats creates a matrix in any domain from exact rational
// entries. This is the bridge the exponent-matrix builder uses: exponents
// are always exact rationals, the working domain is the caller's choice.
// Conversion failures (e.g. scalar.ErrNotRepresentable for the FixedRat
// domain) abort construction; nothing partial is returned.
func NewDenseFromRats[T any](d scalar.Domain[T], rows, cols int, data []*big.Rat) (*Dense[T], error) {
	if d == nil {
		return nil, ErrNilDomain
	}
	if rows < 0 || cols < 0 {
		return nil, ErrBadShape
	}
	if len(data) != rows*cols {
		return nil, ErrDataLength
	}
	cp := make([]T, len(data))
	for i, r := range data {
		v, err := d.FromRat(r)
		if err != nil {
			return nil, fmt.Errorf("NewDenseFromRats: entry %d: %w", i, err)
		}
		cp[i] = v
	}
	return &Dense[T]{dom: d, rows: rows, cols: cols, data: cp}, nil
}

// NewFloat64 creates a float64 matrix from row-major data.
func NewFloat64(rows, cols int, data []float64) (*Dense[float64], error) {
	return NewDenseFromSlice[float64](scalar.Float64{}, rows, cols, data)
}

// NewFromInt64 creates a float64 matrix from integer data.
// Integers are promoted to floating point: Gaussian elimination divides,
// and division is not closed over the integers.
func NewFromInt64(rows, cols int, data []int64) (*Dense[float64], error) {
	f := make([]float64, len(data))
	for i, v := range data {
		f[i] = float64(v)
	}
	return NewFloat64(rows, cols, f)
}

// NewComplex128 creates a complex128 matrix from row-major data.
func NewComplex128(rows, cols int, data []complex128) (*Dense[complex128], error) {
	return NewDenseFromSlice[complex128](scalar.Complex128{}, rows, cols, data)
}

// NewFromGaussianInt64 creates a complex128 matrix from integer real and
// imaginary parts (promoted to complex floating point).
func NewFromGaussianInt64(rows, cols int, re, im []int64) (*Dense[complex128], error) {
	if len(re) != len(im) {
		return nil, ErrDataLength
	}
	c := make([]complex128, len(re))
	for i := range re {
		c[i] = complex(float64(re[i]), float64(im[i]))
	}
	return NewComplex128(rows, cols, c)
}

// NewBigRat creates an arbitrary-precision exact rational matrix.
func NewBigRat(rows, cols int, data []*big.Rat) (*Dense[*big.Rat], error) {
	return NewDenseFromSlice[*big.Rat](scalar.BigRat{}, rows, cols, data)
}

// NewRat64 creates a fixed-width exact rational matrix.
func NewRat64(rows, cols int, data []scalar.Rat64) (*Dense[scalar.Rat64], error) {
	return NewDenseFromSlice[scalar.Rat64](scalar.FixedRat{}, rows, cols, data)
}

// Rows returns the number of rows. Complexity: O(1).
func (m *Dense[T]) Rows() int { return m.rows }

// Cols returns the number of columns. Complexity: O(1).
func (m *Dense[T]) Cols() int { return m.cols }

// Domain returns the scalar domain the matrix was built over.
func (m *Dense[T]) Domain() scalar.Domain[T] { return m.dom }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
func (m *Dense[T]) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		return 0, fmt.Errorf("Dense(%d,%d): %w", row, col, ErrOutOfRange)
	}
	return row*m.cols + col, nil
}

// At retrieves the element at (row, col).
// The returned value is a deep copy for pointer-valued T, so callers can
// never alias the matrix's internal state. Complexity: O(1).
func (m *Dense[T]) At(row, col int) (T, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		var zero T
		return zero, err
	}
	return m.dom.Clone(m.data[idx]), nil
}

// Set assigns a deep copy of v at (row, col). Complexity: O(1).
func (m *Dense[T]) Set(row, col int, v T) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return err
	}
	m.data[idx] = m.dom.Clone(v)
	return nil
}

// at reads without bounds checks or copying; kernels own the invariants.
func (m *Dense[T]) at(row, col int) T { return m.data[row*m.cols+col] }

// set writes without bounds checks or copying.
func (m *Dense[T]) set(row, col int, v T) { m.data[row*m.cols+col] = v }

// Clone returns an independent deep copy. Complexity: O(rows·cols).
func (m *Dense[T]) Clone() *Dense[T] {
	cp := make([]T, len(m.data))
	for i, v := range m.data {
		cp[i] = m.dom.Clone(v)
	}
	return &Dense[T]{dom: m.dom, rows: m.rows, cols: m.cols, data: cp}
}

// Permuted returns A[p, q]: row i of the result is row p[i] of m and
// column j is column q[j]. Both permutations are validated.
// Complexity: O(rows·cols).
func (m *Dense[T]) Permuted(p, q []int) (*Dense[T], error) {
	if err := validatePerm(p, m.rows); err != nil {
		return nil, lufactErrorf(opPermuted, err)
	}
	if err := validatePerm(q, m.cols); err != nil {
		return nil, lufactErrorf(opPermuted, err)
	}
	out, err := NewDense[T](m.dom, m.rows, m.cols)
	if err != nil {
		return nil, lufactErrorf(opPermuted, err)
	}
	for i := 0; i < m.rows; i++ {
		for j := 0; j < m.cols; j++ {
			out.set(i, j, m.dom.Clone(m.at(p[i], q[j])))
		}
	}
	return out, nil
}

// String implements fmt.Stringer for debugging, one bracketed row per line.
func (m *Dense[T]) String() string {
	var b strings.Builder
	for i := 0; i < m.rows; i++ {
		b.WriteByte('[')
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			b.WriteString(m.dom.Format(m.at(i, j)))
		}
		b.WriteString("]\n")
	}
	return b.String()
}

// validatePerm checks that p is a permutation of 0..n-1.
func validatePerm(p []int, n int) error {
	if len(p) != n {
		return ErrBadPermutation
	}
	seen := make([]bool, n)
	for _, v := range p {
		if v < 0 || v >= n || seen[v] {
			return ErrBadPermutation
		}
		seen[v] = true
	}
	return nil
}
