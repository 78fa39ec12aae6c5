package pigroups_test

import (
	"math/big"
	"testing"

	"github.com/katalvlaran/buckpi/dimension"
	"github.com/katalvlaran/buckpi/pigroups"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRegistry_AddIdempotent verifies re-adding a symbol is a no-op and
// registration order is preserved.
func TestRegistry_AddIdempotent(t *testing.T) {
	reg := pigroups.NewRegistry()

	require.NoError(t, reg.Add("l", dimension.Metre))
	require.NoError(t, reg.Add("T", dimension.Second))
	require.NoError(t, reg.Add("l", dimension.Kilogram), "re-add is a no-op, not an error")

	assert.Equal(t, 2, reg.Len())
	assert.Equal(t, []string{"l", "T"}, reg.Symbols())

	p, ok := reg.Param("l")
	require.True(t, ok)
	assert.Equal(t, "m", p.String(), "the first registration wins")
}

// TestRegistry_AddValidation verifies rejected inputs leave no trace.
func TestRegistry_AddValidation(t *testing.T) {
	reg := pigroups.NewRegistry()

	assert.ErrorIs(t, reg.Add("", dimension.Metre), pigroups.ErrEmptySymbol)
	assert.ErrorIs(t, reg.Add("x", nil), pigroups.ErrNilParam)
	assert.Equal(t, 0, reg.Len())
}

// TestRegistry_RegisterReplacesAll verifies the replace-all semantics.
func TestRegistry_RegisterReplacesAll(t *testing.T) {
	reg := pigroups.NewRegistry()
	require.NoError(t, reg.Add("old", dimension.Metre))

	err := reg.Register(
		pigroups.Entry{Symbol: "a", Param: dimension.Second},
		pigroups.Entry{Symbol: "b", Param: dimension.Kilogram},
	)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, reg.Symbols(), "previous content is gone")
}

// TestRegistry_RegisterAtomic verifies nothing is committed when any
// entry fails validation.
func TestRegistry_RegisterAtomic(t *testing.T) {
	reg := pigroups.NewRegistry()
	require.NoError(t, reg.Add("keep", dimension.Metre))

	err := reg.Register(
		pigroups.Entry{Symbol: "a", Param: dimension.Second},
		pigroups.Entry{Symbol: "a", Param: dimension.Kilogram},
	)
	assert.ErrorIs(t, err, pigroups.ErrDuplicateSymbol)
	assert.Equal(t, []string{"keep"}, reg.Symbols(), "failed replace must preserve prior content")

	err = reg.Register(pigroups.Entry{Symbol: "", Param: dimension.Second})
	assert.ErrorIs(t, err, pigroups.ErrEmptySymbol)
	err = reg.Register(pigroups.Entry{Symbol: "x", Param: nil})
	assert.ErrorIs(t, err, pigroups.ErrNilParam)
	assert.Equal(t, []string{"keep"}, reg.Symbols())
}

// TestRegistry_Clear verifies a cleared registry is reusable.
func TestRegistry_Clear(t *testing.T) {
	reg := pigroups.NewRegistry()
	require.NoError(t, reg.Add("x", dimension.Metre))

	reg.Clear()
	assert.Equal(t, 0, reg.Len())
	require.NoError(t, reg.Add("y", dimension.Second))
	assert.Equal(t, []string{"y"}, reg.Symbols())
}

// TestRegistry_String pins the listing format.
func TestRegistry_String(t *testing.T) {
	reg := pigroups.NewRegistry()
	require.NoError(t, reg.Add("g", dimension.NewQuantity(
		big.NewRat(981, 100), dimension.Metre.Div(dimension.Second.Pow(big.NewRat(2, 1))))))
	require.NoError(t, reg.Add("theta", dimension.NewNumber(big.NewRat(1, 2))))

	assert.Equal(t, "g = 981/100 m/s^2\ntheta = 1/2\n", reg.String())
}
