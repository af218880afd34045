// Package polynomial implements the dense univariate polynomial over
// bigint.Int used to represent the GNFS selection polynomial f, its
// base-m construction from N, and Horner evaluation over both the
// integers and the rationals (spec section 4.4).
//
// Grounded on gospel/math/factorizer/qs.Function, the quadratic
// sieve's "number with a helper coefficient, evaluated by a single F
// method" shape; generalized here from a fixed quadratic form to an
// arbitrary-degree dense coefficient list, and given a second ring
// (big.Rat) for algebraic-norm evaluation per spec section 4.9's
// design note on dual-ring Horner.
package polynomial

import (
	"math/big"

	"github.com/danielrcurtis/gnfs-sub002/bigint"
	"github.com/danielrcurtis/gnfs-sub002/gnfserr"
)

// Polynomial is an immutable dense polynomial c_0 + c_1*x + ... + c_d*x^d
// with c_d != 0.
type Polynomial struct {
	coeffs []*bigint.Int // low-order first, coeffs[d] != 0
}

// Degree returns the polynomial's degree d.
func (p *Polynomial) Degree() int {
	return len(p.coeffs) - 1
}

// Coefficient returns c_i, or ZERO if i is out of range.
func (p *Polynomial) Coefficient(i int) *bigint.Int {
	if i < 0 || i >= len(p.coeffs) {
		return bigint.ZERO
	}
	return p.coeffs[i]
}

// Coefficients returns a copy of the coefficient slice, low-order first.
func (p *Polynomial) Coefficients() []*bigint.Int {
	out := make([]*bigint.Int, len(p.coeffs))
	copy(out, p.coeffs)
	return out
}

// FromBaseM constructs f such that f(m) = n via repeated base-m
// expansion: c_i = (remaining / m^i) mod m, consuming n by repeated
// divmod, collecting remainders low-order first (spec section 4.4).
// Fails with InvalidInput if n < 2, m <= 1, d < 2, or the resulting
// f(m) != n.
func FromBaseM(n, m *bigint.Int, d int) (*Polynomial, error) {
	if n.Cmp(bigint.TWO) < 0 {
		return nil, gnfserr.New(gnfserr.ErrInvalidInput, "N=%v < 2", n)
	}
	if m.Cmp(bigint.ONE) <= 0 {
		return nil, gnfserr.New(gnfserr.ErrInvalidInput, "polynomial base m=%v <= 1", m)
	}
	if d < 2 {
		return nil, gnfserr.New(gnfserr.ErrInvalidInput, "degree d=%d < 2", d)
	}

	coeffs := make([]*bigint.Int, d+1)
	rem := n
	for i := 0; i <= d; i++ {
		if i == d {
			coeffs[i] = rem
			break
		}
		var c *bigint.Int
		rem, c = rem.DivMod(m)
		coeffs[i] = c
	}
	if coeffs[d].Sign() == 0 {
		return nil, gnfserr.New(gnfserr.ErrInvalidInput, "leading coefficient is zero for N=%v, m=%v, d=%d", n, m, d)
	}

	f := &Polynomial{coeffs: coeffs}
	if got := f.EvalInt(m); !got.Equals(n) {
		return nil, gnfserr.New(gnfserr.ErrInvalidInput, "f(m)=%v != N=%v", got, n)
	}
	return f, nil
}

// EvalInt evaluates f(x) over the integers via Horner's method.
func (p *Polynomial) EvalInt(x *bigint.Int) *bigint.Int {
	acc := bigint.ZERO
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		acc = acc.Mul(x).Add(p.coeffs[i])
	}
	return acc
}

// EvalRat evaluates f(x) over the rationals via Horner's method.
func (p *Polynomial) EvalRat(x *big.Rat) *big.Rat {
	acc := new(big.Rat)
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		acc.Mul(acc, x)
		acc.Add(acc, new(big.Rat).SetInt(p.coeffs[i].Big()))
	}
	return acc
}

// EvalIntMod evaluates f(x) mod p over the integers via Horner's method.
func (p *Polynomial) EvalIntMod(x, m *bigint.Int) *bigint.Int {
	acc := bigint.ZERO
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		acc = acc.Mul(x).Add(p.coeffs[i]).Mod(m)
	}
	return acc
}

// EvalRatAsInt evaluates f at the rational value a/b and returns the
// result as a bigint.Int, failing with InternalInvariantViolation if the
// rational result is not integral -- the contract spec section 4.4
// requires for algebraic-norm evaluation.
func (p *Polynomial) EvalRatAsInt(x *big.Rat) (*bigint.Int, error) {
	r := p.EvalRat(x)
	if r.Denom().Cmp(big.NewInt(1)) != 0 {
		return nil, gnfserr.New(gnfserr.ErrInternalInvariant, "non-integral polynomial evaluation: %v", r)
	}
	return bigint.FromBig(new(big.Int).Set(r.Num())), nil
}

// DegreeForDigits returns the GNFS-recommended degree for a number with
// the given decimal digit count, per spec section 3's tabulated
// thresholds. Callers needing a non-default table should consult
// config.Options.DegreeThresholds instead of this function.
func DegreeForDigits(digits int) int {
	switch {
	case digits <= 64:
		return 3
	case digits <= 124:
		return 4
	case digits <= 224:
		return 5
	case digits <= 314:
		return 6
	default:
		return 7
	}
}

// DigitsOf returns the number of decimal digits of |n|.
func DigitsOf(n *bigint.Int) int {
	return len(n.Abs().String())
}

// SelectDegree picks the polynomial degree for a number with the given
// digit count. overrides, when non-nil, maps a maximum digit count to a
// degree (the same "largest digits this degree handles" shape as the
// spec's own table) and takes precedence: the smallest key >= digits is
// used. A nil or exhausted override map falls back to DegreeForDigits
// (spec section 3, design note 9 Open Question 3).
func SelectDegree(digits int, overrides map[int]int) int {
	if overrides != nil {
		bestKey := -1
		for k := range overrides {
			if k >= digits && (bestKey == -1 || k < bestKey) {
				bestKey = k
			}
		}
		if bestKey != -1 {
			return overrides[bestKey]
		}
	}
	return DegreeForDigits(digits)
}
