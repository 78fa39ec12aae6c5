// Package pigroups computes Buckingham-Pi dimensionless groups for a
// registered set of physical parameters.
//
// 🚀 Pipeline
//
//	Registry (ordered symbol → parameter)
//	  → exponent matrix          (rows: base dimensions, cols: parameters)
//	  → full-pivot LU            (lufact.Decompose)
//	  → null-space basis         (kernel of the exponent matrix)
//	  → group assembly           (basis columns → (symbol, exponent) lists)
//	  → rendering                (textual form or expression trees)
//
// Every invocation computes everything fresh from the registry snapshot;
// nothing persists between calls and no global state exists — the caller
// owns the Registry and passes it in explicitly.
//
// ✨ Guarantees
//
//   - Exact by default: the arbitrary-precision rational domain is used
//     unless the caller opts into fixed-width rationals (ModeFixed64),
//     where overflow surfaces as scalar.ErrOverflow.
//   - Deterministic: factor order within a group follows the factorizer's
//     column permutation (a documented, stable but non-canonical order);
//     zero exponents are omitted.
//   - Atomic failures: a failed registration leaves the registry
//     untouched; a failed computation returns no partial groups.
//
// Example (Reynolds number):
//
//	reg := pigroups.NewRegistry()
//	_ = reg.Add("rho", dimension.Kilogram.Div(dimension.Metre.Pow(big.NewRat(3, 1))))
//	_ = reg.Add("mu", dimension.Kilogram.Div(dimension.Metre).Div(dimension.Second))
//	_ = reg.Add("u", dimension.Metre.Div(dimension.Second))
//	_ = reg.Add("l", dimension.Metre)
//	groups, _ := pigroups.Groups(reg, nil) // one group ≡ ρ·u·l/μ
package pigroups
