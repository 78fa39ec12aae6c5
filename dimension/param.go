// Package dimension: the sealed parameter variants.

package dimension

import "math/big"

// Param is the closed set of values the pi-group computation accepts.
// Its single capability is yielding a base-dimension decomposition; the
// unexported method seals the interface to the four variants defined in
// this package (Quantity, Unit, Dim, Number).
type Param interface {
	// Exponents returns the parameter's normalized base-dimension
	// decomposition. Dimensionless parameters return an empty value.
	Exponents() Exponents

	// String renders the parameter for display.
	String() string

	isParam()
}

// Dim is a bare base dimension used directly as a parameter
// (e.g. registering "T" as plain time in the pendulum problem).
type Dim Name

// Exponents returns the single power dim¹.
func (d Dim) Exponents() Exponents {
	return Exponents{{Dim: Name(d), Exp: big.NewRat(1, 1)}}
}

// String returns the dimension name.
func (d Dim) String() string { return string(d) }

func (Dim) isParam() {}

// Quantity is a numeric value carrying a unit: 2 m, 9.81 m/s².
// The value plays no role in the dimensional analysis; only the unit's
// decomposition reaches the exponent matrix.
type Quantity struct {
	value *big.Rat
	unit  Unit
}

// NewQuantity builds value × unit. The value is copied.
func NewQuantity(value *big.Rat, unit Unit) Quantity {
	return Quantity{value: new(big.Rat).Set(value), unit: unit}
}

// Value returns a copy of the numeric value.
func (q Quantity) Value() *big.Rat { return new(big.Rat).Set(q.value) }

// Unit returns the quantity's unit.
func (q Quantity) Unit() Unit { return q.unit }

// Exponents returns the unit's decomposition.
func (q Quantity) Exponents() Exponents { return q.unit.Exponents() }

// String renders "value unit", e.g. "981/100 m/s^2".
func (q Quantity) String() string { return q.value.RatString() + " " + q.unit.String() }

func (Quantity) isParam() {}

// Number is a plain dimensionless number. It contributes an all-zero
// exponent column and therefore always forms its own trivial pi group.
type Number struct {
	value *big.Rat
}

// NewNumber builds a dimensionless numeric parameter. The value is copied.
func NewNumber(value *big.Rat) Number {
	return Number{value: new(big.Rat).Set(value)}
}

// Value returns a copy of the numeric value.
func (n Number) Value() *big.Rat { return new(big.Rat).Set(n.value) }

// Exponents returns the empty decomposition.
func (n Number) Exponents() Exponents { return nil }

// String renders the number in rational form.
func (n Number) String() string { return n.value.RatString() }

func (Number) isParam() {}
