// Package scalar defines the numeric-domain abstraction that buckpi's
// factorization kernels are generic over, plus the concrete domains.
//
// 🚀 What is a Domain?
//
//	A Domain[T] bundles the minimal arithmetic a full-pivot factorization
//	needs from a scalar type:
//	  • additive/multiplicative identities (Zero, One)
//	  • checked Add/Sub/Mul/Div/Neg (failures surface, never wrap silently)
//	  • magnitude comparison (CmpAbs) for pivot selection
//	  • an explicit "effectively zero" predicate driven by a per-domain
//	    tolerance (Tol), which decides when elimination must stop
//
// Concrete domains:
//
//   - Float64    — machine floats; tolerance min(n,m)·ε with ε = 2⁻⁵²
//   - Complex128 — complex machine floats; magnitude via |z|
//   - BigRat     — arbitrary-precision exact rationals (math/big); tolerance 0
//   - Rat64      — fixed-width int64 rationals; every operation is overflow
//     checked and fails with ErrOverflow instead of wrapping
//   - BigFloat   — arbitrary-precision binary floats
//     (github.com/predrag3141/PSLQ/bignumber); tolerance 2^log2Tol
//
// Exact domains (BigRat, Rat64) use a zero tolerance: only a true zero halts
// elimination. Approximate domains scale ε by min(n,m) to absorb rounding
// noise when deciding that no usable pivot remains.
//
// Integer inputs are promoted to Float64 (division is not closed over the
// integers) and complex-integer inputs to Complex128; see the matrix
// constructors in lufact.
package scalar
