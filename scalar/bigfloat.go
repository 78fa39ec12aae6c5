package scalar

import (
	"fmt"
	"math/big"

	"github.com/predrag3141/PSLQ/bignumber"
)

// DefaultBigFloatLog2Tol is the default pivot-tolerance exponent for the
// BigFloat domain: 2⁻²⁵⁶ is far below bignumber's default working
// precision, yet far above the noise floor of well-scaled eliminations.
const DefaultBigFloatLog2Tol = -256

// BigFloat is the arbitrary-precision binary floating-point domain over
// *bignumber.BigNumber. Working precision is configured globally through
// bignumber.Init; the domain only carries its own pivot-tolerance
// exponent, so different factorizations may use different cut-offs.
type BigFloat struct {
	// Log2Tol is the base-2 exponent of the pivot tolerance
	// (Tol = min(n,m)·2^Log2Tol). Must be negative to be useful.
	Log2Tol int64
}

// NewBigFloat returns a BigFloat domain with the given tolerance exponent.
func NewBigFloat(log2Tol int64) BigFloat { return BigFloat{Log2Tol: log2Tol} }

// DefaultBigFloat returns a BigFloat domain with DefaultBigFloatLog2Tol.
func DefaultBigFloat() BigFloat { return BigFloat{Log2Tol: DefaultBigFloatLog2Tol} }

// Zero returns a fresh 0.
func (BigFloat) Zero() *bignumber.BigNumber { return bignumber.NewFromInt64(0) }

// One returns a fresh 1.
func (BigFloat) One() *bignumber.BigNumber { return bignumber.NewFromInt64(1) }

// FromRat converts r by dividing its big.Int components at working precision.
func (BigFloat) FromRat(r *big.Rat) (*bignumber.BigNumber, error) {
	num := bignumber.NewFromInt(new(big.Int).Set(r.Num()))
	den := bignumber.NewFromInt(new(big.Int).Set(r.Denom()))
	q, err := bignumber.NewFromInt64(0).Quo(num, den)
	if err != nil {
		return nil, fmt.Errorf("BigFloat.FromRat: %w", err)
	}
	return q, nil
}

// Add returns x + y in a fresh value. Never fails.
func (BigFloat) Add(x, y *bignumber.BigNumber) (*bignumber.BigNumber, error) {
	return bignumber.NewFromInt64(0).Add(x, y), nil
}

// Sub returns x - y in a fresh value. Never fails.
func (BigFloat) Sub(x, y *bignumber.BigNumber) (*bignumber.BigNumber, error) {
	return bignumber.NewFromInt64(0).Sub(x, y), nil
}

// Mul returns x * y in a fresh value. Never fails.
func (BigFloat) Mul(x, y *bignumber.BigNumber) (*bignumber.BigNumber, error) {
	return bignumber.NewFromInt64(0).Mul(x, y), nil
}

// Div returns x / y, or ErrDivisionByZero when y == 0.
func (BigFloat) Div(x, y *bignumber.BigNumber) (*bignumber.BigNumber, error) {
	if y.IsZero() {
		return nil, ErrDivisionByZero
	}
	q, err := bignumber.NewFromInt64(0).Quo(x, y)
	if err != nil {
		return nil, fmt.Errorf("BigFloat.Div: %w", err)
	}
	return q, nil
}

// Neg returns -x in a fresh value. Never fails.
func (BigFloat) Neg(x *bignumber.BigNumber) (*bignumber.BigNumber, error) {
	return bignumber.NewFromInt64(0).Sub(bignumber.NewFromInt64(0), x), nil
}

// CmpAbs compares |x| against |y|.
func (BigFloat) CmpAbs(x, y *bignumber.BigNumber) int {
	ax := bignumber.NewFromInt64(0).Abs(x)
	ay := bignumber.NewFromInt64(0).Abs(y)
	return ax.Cmp(ay)
}

// IsZero reports |x| ≤ |tol|.
func (d BigFloat) IsZero(x, tol *bignumber.BigNumber) bool {
	return d.CmpAbs(x, tol) <= 0
}

// Tol returns min(rows, cols)·2^Log2Tol.
func (d BigFloat) Tol(rows, cols int) *bignumber.BigNumber {
	m := minDim(rows, cols)
	if m == 0 {
		return bignumber.NewFromInt64(0)
	}
	return bignumber.NewFromInt64(0).Int64Mul(int64(m), bignumber.NewPowerOfTwo(d.Log2Tol))
}

// Clone returns an independent copy of x.
func (BigFloat) Clone(x *bignumber.BigNumber) *bignumber.BigNumber {
	return bignumber.NewFromBigNumber(x)
}

// Format renders x via its big.Float view.
func (BigFloat) Format(x *bignumber.BigNumber) string {
	return x.AsFloat().Text('g', 20)
}
