// Package pigroups: result types, output forms and computation options.

package pigroups

import (
	"math/big"

	"github.com/katalvlaran/buckpi/expr"
)

// Factor is one parameter raised to an exact rational exponent inside a
// dimensionless group.
type Factor struct {
	Symbol string
	Exp    *big.Rat
}

// Group is one dimensionless monomial: an ordered list of factors with
// nonzero exponents. Factor order follows the factorizer's column
// permutation — stable across runs for the same registry, but not the
// registration order.
type Group []Factor

// Text renders the group in the delimited textual form
// "sym^(num//den)*sym2^(num2//den2)*…". The rendering is derived from
// the expression tree, so the two output forms can never drift apart.
func (g Group) Text() string { return g.Expr().String() }

// Expr builds the group's typed expression tree: a product of
// symbol^exponent terms, constructed directly from the factor list.
func (g Group) Expr() expr.Product {
	p := make(expr.Product, len(g))
	for i, f := range g {
		p[i] = expr.Pow{Base: expr.Sym(f.Symbol), Exponent: expr.NewRat(f.Exp)}
	}
	return p
}

// Form selects the output rendering of the computation entry point.
type Form int

const (
	// FormText renders each group as a delimited string.
	FormText Form = iota + 1

	// FormExpr renders each group as a typed expression tree.
	FormExpr
)

// Mode selects the numeric domain the factorization runs over. Group
// computation is only offered over exact domains; the approximate
// domains exist for the general-purpose factorizer in lufact.
type Mode int

const (
	// ModeExact uses arbitrary-precision rationals (never overflows).
	ModeExact Mode = iota

	// ModeFixed64 uses fixed-width int64 rationals; numerator or
	// denominator growth beyond int64 fails with scalar.ErrOverflow.
	ModeFixed64
)

// Options configures a group computation.
//
// Fields:
//   - Mode — numeric domain selection (default ModeExact).
//
// A nil *Options means DefaultOptions().
type Options struct {
	Mode Mode
}

// DefaultOptions returns the exact-arithmetic defaults.
func DefaultOptions() Options { return Options{Mode: ModeExact} }

// Text is a rendered group string; it satisfies fmt.Stringer so FormText
// and FormExpr results share the Render return type.
type Text string

// String returns the rendered text.
func (t Text) String() string { return string(t) }
