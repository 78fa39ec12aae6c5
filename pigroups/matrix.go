// Package pigroups: the exponent-matrix builder.

package pigroups

import (
	"math/big"

	"github.com/katalvlaran/buckpi/dimension"
)

// exponentMatrix builds the exact exponent matrix for a registry
// snapshot: rows are the distinct base dimensions observed across all
// parameters (first-seen order, fixed for this computation), columns are
// parameters in registration order, entry (i, j) is the exponent of
// dimension i in parameter j, defaulting to exact zero.
//
// Parameters with empty decompositions (plain numbers, dimensionless
// quantities) contribute all-zero columns — they are legal inputs, not
// errors, and each later yields its own trivial pi group.
//
// Returns the row-dimension names and the flat row-major entries
// (len == len(dims)·reg.Len()).
func exponentMatrix(reg *Registry) ([]dimension.Name, []*big.Rat) {
	cols := reg.Len()

	// Pass 1: collect distinct dimension names in first-seen order.
	var dims []dimension.Name
	rowOf := make(map[dimension.Name]int)
	decomps := make([]dimension.Exponents, cols)
	for j, e := range reg.Entries() {
		decomps[j] = e.Param.Exponents()
		for _, p := range decomps[j] {
			if _, ok := rowOf[p.Dim]; !ok {
				rowOf[p.Dim] = len(dims)
				dims = append(dims, p.Dim)
			}
		}
	}

	// Pass 2: fill the flat matrix, absent dimensions stay exact zero.
	rows := len(dims)
	data := make([]*big.Rat, rows*cols)
	for i := range data {
		data[i] = new(big.Rat)
	}
	for j := 0; j < cols; j++ {
		for _, p := range decomps[j] {
			data[rowOf[p.Dim]*cols+j] = new(big.Rat).Set(p.Exp)
		}
	}
	return dims, data
}
