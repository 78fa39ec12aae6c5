// Package expr provides a small, typed expression tree for monomials of
// the form sym₁^e₁ * sym₂^e₂ * …, with exact rational exponents.
//
// It exists so the pi-group pipeline never round-trips through text:
// groups are handed over as typed (symbol, exponent) term lists and
// converted DIRECTLY into a tree; the textual form is derived from the
// tree, not the other way around.
//
// Rendering convention: an exponent is always printed as an exact
// numerator//denominator pair, even when the denominator is 1, so
// "l^(-1//2)*g^(1//2)*T^(1//1)" is a canonical pendulum group. Products
// are joined with "*" in term order.
//
// Trees also evaluate numerically: Eval substitutes float64 values for
// symbols and folds the product; an unbound symbol is an explicit error,
// not a NaN.
package expr
