package expr_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/buckpi/expr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRat_String verifies the denominator is always printed.
func TestRat_String(t *testing.T) {
	assert.Equal(t, "1//2", expr.NewRat(big.NewRat(1, 2)).String())
	assert.Equal(t, "-3//4", expr.NewRat(big.NewRat(-3, 4)).String())
	assert.Equal(t, "2//1", expr.NewRat(big.NewRat(2, 1)).String(), "whole numbers keep the //1")
	assert.Equal(t, "0//1", expr.NewRat(new(big.Rat)).String())
}

// TestMonomial_String pins the canonical textual form of a group.
func TestMonomial_String(t *testing.T) {
	m, err := expr.Monomial(
		[]string{"g", "l", "T"},
		[]*big.Rat{big.NewRat(1, 2), big.NewRat(-1, 2), big.NewRat(1, 1)},
	)
	require.NoError(t, err)
	assert.Equal(t, "g^(1//2)*l^(-1//2)*T^(1//1)", m.String())
}

// TestMonomial_LengthMismatch verifies the guard.
func TestMonomial_LengthMismatch(t *testing.T) {
	_, err := expr.Monomial([]string{"a"}, nil)
	assert.Error(t, err)
}

// TestProduct_Empty verifies the empty product is the identity.
func TestProduct_Empty(t *testing.T) {
	var p expr.Product
	assert.Equal(t, "1", p.String())

	v, err := p.Eval(nil)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)
}

// TestEval_Substitution verifies numeric evaluation of a full tree.
func TestEval_Substitution(t *testing.T) {
	m, err := expr.Monomial(
		[]string{"g", "l", "T"},
		[]*big.Rat{big.NewRat(1, 2), big.NewRat(-1, 2), big.NewRat(1, 1)},
	)
	require.NoError(t, err)

	// sqrt(9.8/2.45)*2 = 2*2 = 4.
	v, err := m.Eval(map[string]float64{"g": 9.8, "l": 2.45, "T": 2})
	require.NoError(t, err)
	assert.InDelta(t, 4.0, v, 1e-12)
}

// TestEval_UnboundSymbol verifies missing bindings fail loudly.
func TestEval_UnboundSymbol(t *testing.T) {
	m, err := expr.Monomial([]string{"x"}, []*big.Rat{big.NewRat(1, 1)})
	require.NoError(t, err)

	_, err = m.Eval(map[string]float64{"y": 1})
	assert.ErrorIs(t, err, expr.ErrUnboundSymbol)
	assert.Contains(t, err.Error(), "x", "the message names the missing symbol")
}

// TestPow_NestedString verifies rendering of hand-built trees.
func TestPow_NestedString(t *testing.T) {
	p := expr.Pow{Base: expr.Sym("nu"), Exponent: expr.NewRat(big.NewRat(-1, 1))}
	assert.Equal(t, "nu^(-1//1)", p.String())

	v, err := p.Eval(map[string]float64{"nu": 4})
	require.NoError(t, err)
	assert.InDelta(t, 0.25, v, 1e-15)
}
