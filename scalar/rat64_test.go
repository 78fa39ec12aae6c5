package scalar_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/katalvlaran/buckpi/scalar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewRat64_Normalization verifies lowest-terms reduction and sign
// normalization onto the numerator.
func TestNewRat64_Normalization(t *testing.T) {
	r, err := scalar.NewRat64(2, 4)
	require.NoError(t, err)
	assert.Equal(t, int64(1), r.Num(), "2/4 must reduce to 1/2")
	assert.Equal(t, int64(2), r.Den())

	r, err = scalar.NewRat64(3, -6)
	require.NoError(t, err)
	assert.Equal(t, int64(-1), r.Num(), "sign must move to the numerator")
	assert.Equal(t, int64(2), r.Den())

	r, err = scalar.NewRat64(0, -7)
	require.NoError(t, err)
	assert.Equal(t, int64(0), r.Num(), "zero must normalize to 0/1")
	assert.Equal(t, int64(1), r.Den())
}

// TestNewRat64_ZeroDenominator verifies the construction-time rejection.
func TestNewRat64_ZeroDenominator(t *testing.T) {
	_, err := scalar.NewRat64(1, 0)
	assert.ErrorIs(t, err, scalar.ErrZeroDenominator)
}

// TestFixedRat_Arithmetic exercises the four checked operations on
// small values where no overflow is possible.
func TestFixedRat_Arithmetic(t *testing.T) {
	d := scalar.FixedRat{}
	half, err := scalar.NewRat64(1, 2)
	require.NoError(t, err)
	third, err := scalar.NewRat64(1, 3)
	require.NoError(t, err)

	sum, err := d.Add(half, third)
	require.NoError(t, err)
	assert.Equal(t, "5/6", sum.String(), "1/2 + 1/3 = 5/6")

	diff, err := d.Sub(half, third)
	require.NoError(t, err)
	assert.Equal(t, "1/6", diff.String(), "1/2 - 1/3 = 1/6")

	prod, err := d.Mul(half, third)
	require.NoError(t, err)
	assert.Equal(t, "1/6", prod.String(), "1/2 * 1/3 = 1/6")

	quot, err := d.Div(half, third)
	require.NoError(t, err)
	assert.Equal(t, "3/2", quot.String(), "(1/2)/(1/3) = 3/2")
}

// TestFixedRat_Overflow verifies that numerator growth beyond int64
// fails with the distinct overflow sentinel instead of wrapping.
func TestFixedRat_Overflow(t *testing.T) {
	d := scalar.FixedRat{}
	maxInt := scalar.NewRat64FromInt(math.MaxInt64)
	one := d.One()

	_, err := d.Add(maxInt, one)
	assert.ErrorIs(t, err, scalar.ErrOverflow, "MaxInt64 + 1 must overflow")

	_, err = d.Mul(maxInt, scalar.NewRat64FromInt(2))
	assert.ErrorIs(t, err, scalar.ErrOverflow, "MaxInt64 * 2 must overflow")

	// Denominator growth overflows, too: 1/p * 1/q with p*q > MaxInt64.
	p, err := scalar.NewRat64(1, 3_100_000_001)
	require.NoError(t, err)
	q, err := scalar.NewRat64(1, 3_100_000_003)
	require.NoError(t, err)
	_, err = d.Mul(p, q)
	assert.ErrorIs(t, err, scalar.ErrOverflow, "denominator product must overflow")
}

// TestFixedRat_CrossReduction verifies that reducible products stay in
// range even when the naive cross product would overflow.
func TestFixedRat_CrossReduction(t *testing.T) {
	d := scalar.FixedRat{}
	big1, err := scalar.NewRat64(math.MaxInt64, 7)
	require.NoError(t, err)
	big2, err := scalar.NewRat64(7, math.MaxInt64)
	require.NoError(t, err)

	prod, err := d.Mul(big1, big2)
	require.NoError(t, err, "(M/7)*(7/M) must cross-reduce to 1")
	assert.Equal(t, "1", prod.String())
}

// TestFixedRat_DivisionByZero verifies the zero-divisor sentinel.
func TestFixedRat_DivisionByZero(t *testing.T) {
	d := scalar.FixedRat{}
	_, err := d.Div(d.One(), d.Zero())
	assert.ErrorIs(t, err, scalar.ErrDivisionByZero)
}

// TestFixedRat_CmpAbs verifies exact magnitude comparison including
// cross products that exceed 64 bits.
func TestFixedRat_CmpAbs(t *testing.T) {
	d := scalar.FixedRat{}
	a, err := scalar.NewRat64(math.MaxInt64, 3)
	require.NoError(t, err)
	b, err := scalar.NewRat64(-math.MaxInt64, 2)
	require.NoError(t, err)

	assert.Equal(t, -1, d.CmpAbs(a, b), "M/3 < M/2 in magnitude")
	assert.Equal(t, +1, d.CmpAbs(b, a))
	assert.Equal(t, 0, d.CmpAbs(a, a))
}

// TestFixedRat_FromRat verifies conversion from big.Rat and rejection
// of values outside int64.
func TestFixedRat_FromRat(t *testing.T) {
	d := scalar.FixedRat{}

	v, err := d.FromRat(big.NewRat(-3, 9))
	require.NoError(t, err)
	assert.Equal(t, "-1/3", v.String())

	huge := new(big.Rat).SetInt(new(big.Int).Lsh(big.NewInt(1), 70))
	_, err = d.FromRat(huge)
	assert.ErrorIs(t, err, scalar.ErrNotRepresentable)
}

// TestFixedRat_IsZero verifies the exact-zero predicate.
func TestFixedRat_IsZero(t *testing.T) {
	d := scalar.FixedRat{}
	tiny, err := scalar.NewRat64(1, math.MaxInt64)
	require.NoError(t, err)

	assert.True(t, d.IsZero(d.Zero(), d.Tol(5, 5)))
	assert.False(t, d.IsZero(tiny, d.Tol(5, 5)), "exact domain: only true zero is zero")
}
