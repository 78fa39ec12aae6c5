// Package buckpi computes dimensionless (Buckingham-Pi) groups from a set
// of physical parameters — from exact-rational linear algebra up to rendered
// monomial expressions.
//
// 🚀 What is buckpi?
//
//	A small, deterministic library that brings together:
//		• Numeric domains: float64, complex128, exact rationals (fixed & arbitrary
//		  precision), arbitrary-precision floats — behind one arithmetic interface
//		• Full-pivot LU: rank-revealing factorization of rectangular and singular
//		  matrices, L·U = A[p,q], exact where the domain is exact
//		• Null-space extraction: explicit kernel bases with permutation bookkeeping
//		• Parameter model: quantities, units, bare dimensions and plain numbers
//		• Pi groups: registry → exponent matrix → kernel → rendered monomials
//
// ✨ Why choose buckpi?
//
//   - Exact by default – arbitrary-precision rationals, no rounding surprises
//   - Deterministic – fixed pivot tie-break and traversal orders, stable output
//   - Honest failures – fixed-width rational overflow is a checked, distinct error
//   - Pure computation – no global state; the caller owns the parameter registry
//
// Under the hood, everything is organized under five subpackages:
//
//	scalar/    — numeric-domain abstraction and its concrete arithmetic domains
//	lufact/    — generic dense matrices, full-pivot LU, rank and null-space
//	dimension/ — base dimensions, units, and the closed parameter variants
//	expr/      — typed monomial expression trees and their textual rendering
//	pigroups/  — parameter registry, exponent matrix builder, group assembly
//
// Quick example (simple pendulum):
//
//	reg := pigroups.NewRegistry()
//	_ = reg.Add("l", dimension.NewQuantity(big.NewRat(2, 1), dimension.Metre))
//	_ = reg.Add("g", dimension.NewQuantity(big.NewRat(981, 100),
//		dimension.Metre.Div(dimension.Second.Pow(big.NewRat(2, 1)))))
//	_ = reg.Add("T", dimension.Dim(dimension.Time))
//	groups, _ := pigroups.Groups(reg, nil)
//	// groups[0] ≡ l^(-1//2) * g^(1//2) * T^(1//1)
//
// Dive into each package's doc.go for algorithm outlines, error contracts
// and worked examples.
//
//	go get github.com/katalvlaran/buckpi
package buckpi
