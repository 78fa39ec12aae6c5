// Package expr: node types and rendering.

package expr

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strings"
)

// ErrUnboundSymbol is returned by Eval when a symbol has no binding in
// the supplied environment.
var ErrUnboundSymbol = errors.New("expr: unbound symbol")

// Expr is a node of a monomial expression tree. The interface is sealed
// to the variants of this package (Sym, Rat, Pow, Product).
type Expr interface {
	// String renders the canonical textual form of the node.
	String() string

	// Eval substitutes vars into symbols and computes the node's value.
	Eval(vars map[string]float64) (float64, error)

	exprNode()
}

// Sym is a symbol leaf (a parameter name).
type Sym string

// String returns the symbol name.
func (s Sym) String() string { return string(s) }

// Eval looks the symbol up in vars; missing bindings are an error.
func (s Sym) Eval(vars map[string]float64) (float64, error) {
	v, ok := vars[string(s)]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnboundSymbol, string(s))
	}
	return v, nil
}

func (Sym) exprNode() {}

// Rat is an exact rational constant leaf.
type Rat struct {
	val *big.Rat
}

// NewRat wraps an exact rational (copied).
func NewRat(r *big.Rat) Rat { return Rat{val: new(big.Rat).Set(r)} }

// Value returns a copy of the constant.
func (r Rat) Value() *big.Rat { return new(big.Rat).Set(r.val) }

// String renders "num//den", denominator always printed.
func (r Rat) String() string {
	return r.val.Num().String() + "//" + r.val.Denom().String()
}

// Eval returns the nearest float64.
func (r Rat) Eval(map[string]float64) (float64, error) {
	f, _ := r.val.Float64()
	return f, nil
}

func (Rat) exprNode() {}

// Pow is base^exponent.
type Pow struct {
	Base     Expr
	Exponent Expr
}

// String renders "base^(exponent)".
func (p Pow) String() string {
	return p.Base.String() + "^(" + p.Exponent.String() + ")"
}

// Eval computes base^exponent via math.Pow.
func (p Pow) Eval(vars map[string]float64) (float64, error) {
	b, err := p.Base.Eval(vars)
	if err != nil {
		return 0, err
	}
	e, err := p.Exponent.Eval(vars)
	if err != nil {
		return 0, err
	}
	return math.Pow(b, e), nil
}

func (Pow) exprNode() {}

// Product is a *-joined list of factors. An empty product renders and
// evaluates as 1.
type Product []Expr

// String joins factor renderings with "*"; "1" when empty.
func (p Product) String() string {
	if len(p) == 0 {
		return "1"
	}
	parts := make([]string, len(p))
	for i, f := range p {
		parts[i] = f.String()
	}
	return strings.Join(parts, "*")
}

// Eval folds the product left to right.
func (p Product) Eval(vars map[string]float64) (float64, error) {
	acc := 1.0
	for _, f := range p {
		v, err := f.Eval(vars)
		if err != nil {
			return 0, err
		}
		acc *= v
	}
	return acc, nil
}

func (Product) exprNode() {}

// Monomial builds the tree for an ordered (symbol, exponent) term list:
// Product(Pow(Sym, Rat), …). It is the direct-construction path the
// group assembler uses — no textual intermediate anywhere.
func Monomial(syms []string, exps []*big.Rat) (Product, error) {
	if len(syms) != len(exps) {
		return nil, errors.New("expr: symbol/exponent length mismatch")
	}
	p := make(Product, len(syms))
	for i := range syms {
		p[i] = Pow{Base: Sym(syms[i]), Exponent: NewRat(exps[i])}
	}
	return p, nil
}
