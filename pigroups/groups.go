// Package pigroups: the computation entry points and group assembler.

package pigroups

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/buckpi/lufact"
	"github.com/katalvlaran/buckpi/scalar"
)

// Groups computes the dimensionless groups for the currently registered
// parameters as typed (symbol, exponent) factor lists.
//
// Stage 1 (Build): assemble the exact exponent matrix from the registry
// snapshot (rows: base dimensions, cols: parameters).
//
// Stage 2 (Solve): factorize with full-pivot LU over the domain selected
// by opts.Mode and extract the null-space basis. Under ModeFixed64 any
// overflow aborts with scalar.ErrOverflow and no partial result.
//
// Stage 3 (Assemble): translate each basis column through the column
// permutation q into factors — the coordinate at permuted position i
// belongs to the parameter at original position q[i]. Factors keep the
// permuted order; zero exponents are omitted.
//
// Zero registered parameters yield an empty, non-nil slice without error.
// A nil opts means DefaultOptions().
func Groups(reg *Registry, opts *Options) ([]Group, error) {
	if reg == nil {
		return nil, ErrNilRegistry
	}
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	switch o.Mode {
	case ModeExact:
		return computeGroups[*big.Rat](scalar.BigRat{}, reg,
			func(v *big.Rat) *big.Rat { return new(big.Rat).Set(v) })
	case ModeFixed64:
		return computeGroups[scalar.Rat64](scalar.FixedRat{}, reg,
			func(v scalar.Rat64) *big.Rat { return v.Rat() })
	default:
		return nil, fmt.Errorf("Groups: mode %d: %w", o.Mode, ErrUnknownMode)
	}
}

// computeGroups runs the pipeline over one exact domain. toRat converts
// a domain value back into the exact rational the public Factor carries.
func computeGroups[T any](dom scalar.Domain[T], reg *Registry, toRat func(T) *big.Rat) ([]Group, error) {
	syms := reg.Symbols()
	cols := len(syms)
	if cols == 0 {
		return []Group{}, nil
	}

	dims, data := exponentMatrix(reg)
	a, err := lufact.NewDenseFromRats[T](dom, len(dims), cols, data)
	if err != nil {
		return nil, fmt.Errorf("Groups: %w", err)
	}

	fact, err := lufact.Decompose(a)
	if err != nil {
		return nil, fmt.Errorf("Groups: %w", err)
	}
	basis, err := fact.NullSpace()
	if err != nil {
		return nil, fmt.Errorf("Groups: %w", err)
	}

	// Assemble: basis coordinates live in permuted column space.
	q := fact.ColPerm()
	zero := dom.Zero()
	groups := make([]Group, basis.Cols())
	for c := 0; c < basis.Cols(); c++ {
		var g Group
		for i := 0; i < basis.Rows(); i++ {
			v, err := basis.At(i, c)
			if err != nil {
				return nil, fmt.Errorf("Groups: %w", err)
			}
			if dom.IsZero(v, zero) {
				continue
			}
			g = append(g, Factor{Symbol: syms[q[i]], Exp: toRat(v)})
		}
		groups[c] = g
	}
	return groups, nil
}

// Render computes the groups and renders each in the requested output
// form. The elements are Text values under FormText and expr.Product
// trees under FormExpr (type-assert to walk the tree); both satisfy
// fmt.Stringer. An unrecognized form fails with ErrUnknownForm before
// any computation happens.
func Render(reg *Registry, form Form, opts *Options) ([]fmt.Stringer, error) {
	if form != FormText && form != FormExpr {
		return nil, fmt.Errorf("Render: form %d: %w", form, ErrUnknownForm)
	}
	groups, err := Groups(reg, opts)
	if err != nil {
		return nil, err
	}
	out := make([]fmt.Stringer, len(groups))
	for i, g := range groups {
		switch form {
		case FormText:
			out[i] = Text(g.Text())
		case FormExpr:
			out[i] = g.Expr()
		}
	}
	return out, nil
}
