// Package dimension: base-dimension names and exact decompositions.
// This file contains ONLY the dimension-level types; the parameter
// variants live in param.go and the unit catalog in units.go.

package dimension

import (
	"math/big"
	"strings"
)

// Name identifies one independent physical quantity axis (a base
// dimension). Comparison is plain string equality; the exponent-matrix
// builder keys its rows by Name.
type Name string

// The seven SI base dimensions.
const (
	Length      Name = "length"
	Mass        Name = "mass"
	Time        Name = "time"
	Current     Name = "current"
	Temperature Name = "temperature"
	Amount      Name = "amount"
	Luminosity  Name = "luminosity"
)

// Power is one base dimension raised to an exact rational exponent.
type Power struct {
	Dim Name
	Exp *big.Rat
}

// Exponents is an ordered base-dimension decomposition. A nil or empty
// value means dimensionless. Values produced by this package are always
// normalized (see normalize); external constructors normalize on entry.
type Exponents []Power

// Clone returns an independent deep copy.
func (e Exponents) Clone() Exponents {
	if e == nil {
		return nil
	}
	out := make(Exponents, len(e))
	for i, p := range e {
		out[i] = Power{Dim: p.Dim, Exp: new(big.Rat).Set(p.Exp)}
	}
	return out
}

// IsDimensionless reports whether the decomposition is empty.
func (e Exponents) IsDimensionless() bool { return len(e) == 0 }

// String renders e.g. "length^1 * time^-2"; "1" when dimensionless.
func (e Exponents) String() string {
	if len(e) == 0 {
		return "1"
	}
	parts := make([]string, len(e))
	for i, p := range e {
		parts[i] = string(p.Dim) + "^" + p.Exp.RatString()
	}
	return strings.Join(parts, " * ")
}

// normalize merges duplicate dimensions (summing exponents, first-seen
// order preserved) and drops zero exponents. Input is not mutated.
func normalize(e Exponents) Exponents {
	if len(e) == 0 {
		return nil
	}
	order := make([]Name, 0, len(e))
	sums := make(map[Name]*big.Rat, len(e))
	for _, p := range e {
		if acc, ok := sums[p.Dim]; ok {
			acc.Add(acc, p.Exp)
			continue
		}
		sums[p.Dim] = new(big.Rat).Set(p.Exp)
		order = append(order, p.Dim)
	}
	out := make(Exponents, 0, len(order))
	for _, d := range order {
		if sums[d].Sign() == 0 {
			continue
		}
		out = append(out, Power{Dim: d, Exp: sums[d]})
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// scale multiplies every exponent by k; k = 0 yields dimensionless.
func scale(e Exponents, k *big.Rat) Exponents {
	if k.Sign() == 0 || len(e) == 0 {
		return nil
	}
	out := make(Exponents, len(e))
	for i, p := range e {
		out[i] = Power{Dim: p.Dim, Exp: new(big.Rat).Mul(p.Exp, k)}
	}
	return out
}
