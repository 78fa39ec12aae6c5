package pigroups_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/buckpi/dimension"
	"github.com/katalvlaran/buckpi/expr"
	"github.com/katalvlaran/buckpi/pigroups"
	"github.com/katalvlaran/buckpi/scalar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pendulumRegistry registers the classic simple-pendulum parameters:
// length, gravity, mass, period and the (dimensionless) release angle.
func pendulumRegistry(t *testing.T) *pigroups.Registry {
	t.Helper()
	accel := dimension.Metre.Div(dimension.Second.Pow(big.NewRat(2, 1)))
	reg := pigroups.NewRegistry()
	require.NoError(t, reg.Register(
		pigroups.Entry{Symbol: "l", Param: dimension.Metre},
		pigroups.Entry{Symbol: "g", Param: dimension.NewQuantity(big.NewRat(981, 100), accel)},
		pigroups.Entry{Symbol: "m", Param: dimension.Kilogram},
		pigroups.Entry{Symbol: "T", Param: dimension.Second},
		pigroups.Entry{Symbol: "theta", Param: dimension.NewNumber(big.NewRat(1, 4))},
	))
	return reg
}

// assertDimensionless recomputes the exponent sum of every dimension
// across a group's factors and requires exact cancellation.
func assertDimensionless(t *testing.T, reg *pigroups.Registry, g pigroups.Group) {
	t.Helper()
	totals := make(map[dimension.Name]*big.Rat)
	for _, f := range g {
		p, ok := reg.Param(f.Symbol)
		require.True(t, ok, "factor symbol %q must be registered", f.Symbol)
		for _, pw := range p.Exponents() {
			if totals[pw.Dim] == nil {
				totals[pw.Dim] = new(big.Rat)
			}
			totals[pw.Dim].Add(totals[pw.Dim], new(big.Rat).Mul(pw.Exp, f.Exp))
		}
	}
	for dim, sum := range totals {
		assert.Zero(t, sum.Sign(), "dimension %s must cancel exactly, got %s", dim, sum.RatString())
	}
}

// TestGroups_Pendulum pins the two pendulum groups: the frequency group
// sqrt(g/l)*T and the already-dimensionless angle.
func TestGroups_Pendulum(t *testing.T) {
	reg := pendulumRegistry(t)

	groups, err := pigroups.Groups(reg, nil)
	require.NoError(t, err)
	require.Len(t, groups, 2, "five parameters, rank three")

	require.Len(t, groups[0], 3)
	assert.Equal(t, "g", groups[0][0].Symbol)
	assert.Equal(t, "1/2", groups[0][0].Exp.RatString())
	assert.Equal(t, "l", groups[0][1].Symbol)
	assert.Equal(t, "-1/2", groups[0][1].Exp.RatString())
	assert.Equal(t, "T", groups[0][2].Symbol)
	assert.Equal(t, "1", groups[0][2].Exp.RatString())

	require.Len(t, groups[1], 1)
	assert.Equal(t, "theta", groups[1][0].Symbol)
	assert.Equal(t, "1", groups[1][0].Exp.RatString())

	for _, g := range groups {
		assertDimensionless(t, reg, g)
	}
}

// TestGroups_PendulumText pins the delimited rendering.
func TestGroups_PendulumText(t *testing.T) {
	groups, err := pigroups.Groups(pendulumRegistry(t), nil)
	require.NoError(t, err)
	require.Len(t, groups, 2)

	assert.Equal(t, "g^(1//2)*l^(-1//2)*T^(1//1)", groups[0].Text())
	assert.Equal(t, "theta^(1//1)", groups[1].Text())
}

// TestGroups_Reynolds recovers the Reynolds number from density,
// dynamic viscosity, flow speed and characteristic length.
func TestGroups_Reynolds(t *testing.T) {
	density := dimension.Kilogram.Div(dimension.Metre.Pow(big.NewRat(3, 1)))
	viscosity := dimension.Kilogram.Div(dimension.Metre.Mul(dimension.Second))
	speed := dimension.Metre.Div(dimension.Second)

	reg := pigroups.NewRegistry()
	require.NoError(t, reg.Register(
		pigroups.Entry{Symbol: "rho", Param: density},
		pigroups.Entry{Symbol: "mu", Param: viscosity},
		pigroups.Entry{Symbol: "u", Param: speed},
		pigroups.Entry{Symbol: "l", Param: dimension.Metre},
	))

	groups, err := pigroups.Groups(reg, nil)
	require.NoError(t, err)
	require.Len(t, groups, 1, "four parameters, rank three")
	assert.Equal(t, "rho^(1//1)*mu^(-1//1)*u^(1//1)*l^(1//1)", groups[0].Text())
	assertDimensionless(t, reg, groups[0])
}

// TestGroups_NilAndEmpty covers the degenerate inputs.
func TestGroups_NilAndEmpty(t *testing.T) {
	_, err := pigroups.Groups(nil, nil)
	assert.ErrorIs(t, err, pigroups.ErrNilRegistry)

	groups, err := pigroups.Groups(pigroups.NewRegistry(), nil)
	require.NoError(t, err)
	require.NotNil(t, groups, "empty registry yields an empty, non-nil slice")
	assert.Len(t, groups, 0)
}

// TestGroups_FullRankNoGroups verifies dimensionally independent
// parameters admit no dimensionless combination.
func TestGroups_FullRankNoGroups(t *testing.T) {
	reg := pigroups.NewRegistry()
	require.NoError(t, reg.Register(
		pigroups.Entry{Symbol: "l", Param: dimension.Metre},
		pigroups.Entry{Symbol: "t", Param: dimension.Second},
		pigroups.Entry{Symbol: "m", Param: dimension.Kilogram},
	))

	groups, err := pigroups.Groups(reg, nil)
	require.NoError(t, err)
	require.NotNil(t, groups)
	assert.Len(t, groups, 0)
}

// TestGroups_DimensionlessOnly verifies pure numbers each form their
// own trivial group.
func TestGroups_DimensionlessOnly(t *testing.T) {
	reg := pigroups.NewRegistry()
	require.NoError(t, reg.Register(
		pigroups.Entry{Symbol: "a", Param: dimension.NewNumber(big.NewRat(2, 1))},
		pigroups.Entry{Symbol: "b", Param: dimension.NewNumber(big.NewRat(3, 1))},
	))

	groups, err := pigroups.Groups(reg, nil)
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "a^(1//1)", groups[0].Text())
	assert.Equal(t, "b^(1//1)", groups[1].Text())
}

// TestGroups_Fixed64Mode verifies the fixed-width domain reproduces the
// exact-mode result when nothing overflows.
func TestGroups_Fixed64Mode(t *testing.T) {
	opts := pigroups.Options{Mode: pigroups.ModeFixed64}
	groups, err := pigroups.Groups(pendulumRegistry(t), &opts)
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "g^(1//2)*l^(-1//2)*T^(1//1)", groups[0].Text())
	assert.Equal(t, "theta^(1//1)", groups[1].Text())
}

// TestGroups_Fixed64Overflow verifies overflow in the fixed-width
// domain surfaces as scalar.ErrOverflow while exact mode handles the
// same registry.
func TestGroups_Fixed64Overflow(t *testing.T) {
	// Fractional exponents with pairwise coprime denominators near
	// 3.1e9: the first elimination update multiplies two of them, and
	// the product exceeds MaxInt64.
	mk := func(dl, dt int64) dimension.Param {
		return dimension.Metre.Pow(big.NewRat(1, dl)).Mul(dimension.Second.Pow(big.NewRat(1, dt)))
	}
	reg := pigroups.NewRegistry()
	require.NoError(t, reg.Register(
		pigroups.Entry{Symbol: "x", Param: mk(3_100_000_001, 3_100_000_007)},
		pigroups.Entry{Symbol: "y", Param: mk(3_100_000_003, 3_100_000_009)},
	))

	opts := pigroups.Options{Mode: pigroups.ModeFixed64}
	_, err := pigroups.Groups(reg, &opts)
	assert.ErrorIs(t, err, scalar.ErrOverflow)

	groups, err := pigroups.Groups(reg, nil)
	require.NoError(t, err, "exact arithmetic absorbs the same exponents")
	require.NotNil(t, groups)
	assert.Len(t, groups, 0, "the two parameters are dimensionally independent")
}

// TestGroups_UnknownMode verifies the options guard.
func TestGroups_UnknownMode(t *testing.T) {
	opts := pigroups.Options{Mode: pigroups.Mode(99)}
	_, err := pigroups.Groups(pendulumRegistry(t), &opts)
	assert.ErrorIs(t, err, pigroups.ErrUnknownMode)
}

// TestRender_Forms covers both output forms over the pendulum registry.
func TestRender_Forms(t *testing.T) {
	reg := pendulumRegistry(t)

	text, err := pigroups.Render(reg, pigroups.FormText, nil)
	require.NoError(t, err)
	require.Len(t, text, 2)
	assert.Equal(t, "g^(1//2)*l^(-1//2)*T^(1//1)", text[0].String())

	trees, err := pigroups.Render(reg, pigroups.FormExpr, nil)
	require.NoError(t, err)
	require.Len(t, trees, 2)

	// The expression form is a typed tree, not a string in disguise.
	prod, ok := trees[0].(expr.Product)
	require.True(t, ok)
	require.Len(t, prod, 3)
	pow, ok := prod[0].(expr.Pow)
	require.True(t, ok)
	assert.Equal(t, expr.Sym("g"), pow.Base)

	// Both forms render identically.
	assert.Equal(t, text[0].String(), trees[0].String())
	assert.Equal(t, text[1].String(), trees[1].String())
}

// TestRender_ExprEval verifies a rendered tree evaluates numerically.
func TestRender_ExprEval(t *testing.T) {
	trees, err := pigroups.Render(pendulumRegistry(t), pigroups.FormExpr, nil)
	require.NoError(t, err)
	require.Len(t, trees, 2)

	prod, ok := trees[0].(expr.Product)
	require.True(t, ok)

	// sqrt(9.8/2.45)*2 = 4: a pendulum of fixed pi-group value.
	v, err := prod.Eval(map[string]float64{"g": 9.8, "l": 2.45, "T": 2})
	require.NoError(t, err)
	assert.InDelta(t, 4.0, v, 1e-12)
}

// TestRender_UnknownForm verifies the form guard fires before any
// computation: even a nil registry reports the bad form first.
func TestRender_UnknownForm(t *testing.T) {
	_, err := pigroups.Render(nil, pigroups.Form(99), nil)
	assert.ErrorIs(t, err, pigroups.ErrUnknownForm)
}
