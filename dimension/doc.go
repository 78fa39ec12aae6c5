// Package dimension models physical parameters for Buckingham-Pi
// analysis: base dimensions, exact-rational dimension decompositions,
// units built as products of base-dimension powers, and the closed set
// of parameter kinds the pi-group computation accepts.
//
// 🚀 The parameter model
//
//	Param is a sealed interface with a single capability — yielding the
//	parameter's base-dimension decomposition — and exactly four variants:
//
//	  • Quantity — a numeric value carrying a unit (2 m, 9.81 m/s²)
//	  • Unit     — a bare unit (kg, m/s²)
//	  • Dim      — a bare base dimension (length, time)
//	  • Number   — a plain dimensionless number (π, 0.5)
//
//	No other variant can be constructed: the interface has an unexported
//	method, so "unsupported parameter kind" is a compile-time
//	impossibility rather than a runtime check.
//
// Decompositions are ordered lists of (dimension, exact rational
// exponent) pairs, always normalized: duplicate dimensions merged in
// first-seen order, zero exponents dropped. A Number decomposes to the
// empty list and later contributes an all-zero exponent column.
//
// Units compose with Mul, Div and Pow, so derived units are spelled the
// way they read:
//
//	accel := dimension.Metre.Div(dimension.Second.Pow(big.NewRat(2, 1)))
//	visc := dimension.Kilogram.Div(dimension.Metre).Div(dimension.Second)
//
// The catalog covers the seven SI base dimensions and their base units;
// everything else derives from those.
package dimension
