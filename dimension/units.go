// Package dimension: units as products of base-dimension powers.

package dimension

import "math/big"

// Unit is a named product of base-dimension powers. Units are immutable
// values: combinators return fresh units and never touch their operands.
type Unit struct {
	name string
	exps Exponents
}

// NewUnit builds a unit with an explicit decomposition. The exponents
// are normalized (duplicates merged, zeros dropped) and deep-copied.
func NewUnit(name string, exps Exponents) Unit {
	return Unit{name: name, exps: normalize(exps.Clone())}
}

// Name returns the unit's display name.
func (u Unit) Name() string { return u.name }

// Exponents returns a copy of the unit's decomposition.
func (u Unit) Exponents() Exponents { return u.exps.Clone() }

// String returns the unit's display name.
func (u Unit) String() string { return u.name }

func (Unit) isParam() {}

// Mul returns the product unit u·v, e.g. Newton = Kilogram.Mul(accel).
func (u Unit) Mul(v Unit) Unit {
	return Unit{
		name: u.name + "*" + v.name,
		exps: normalize(append(u.exps.Clone(), v.exps.Clone()...)),
	}
}

// Div returns the quotient unit u/v, e.g. speed = Metre.Div(Second).
func (u Unit) Div(v Unit) Unit {
	return Unit{
		name: u.name + "/" + v.name,
		exps: normalize(append(u.exps.Clone(), scale(v.exps, big.NewRat(-1, 1))...)),
	}
}

// Pow returns u raised to an exact rational power.
func (u Unit) Pow(k *big.Rat) Unit {
	return Unit{
		name: u.name + "^" + k.RatString(),
		exps: normalize(scale(u.exps, k)),
	}
}

// baseUnit builds a catalog entry: one base dimension to the first power.
func baseUnit(name string, dim Name) Unit {
	return Unit{name: name, exps: Exponents{{Dim: dim, Exp: big.NewRat(1, 1)}}}
}

// The SI base units. Derived units are composed from these with
// Mul/Div/Pow; the catalog stays deliberately small.
var (
	Metre    = baseUnit("m", Length)
	Kilogram = baseUnit("kg", Mass)
	Second   = baseUnit("s", Time)
	Ampere   = baseUnit("A", Current)
	Kelvin   = baseUnit("K", Temperature)
	Mole     = baseUnit("mol", Amount)
	Candela  = baseUnit("cd", Luminosity)
)
