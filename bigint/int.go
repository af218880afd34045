// Package bigint provides the arbitrary-precision integer substrate the
// rest of this module is built on: a thin wrapper over math/big.Int with
// the handful of extra operations (NthRoot, IsSquare) that number-theoretic
// code above it needs but math/big does not provide directly.
package bigint

import (
	"math/big"
)

var (
	// ZERO is the integer 0.
	ZERO = NewInt(0)
	// ONE is the integer 1.
	ONE = NewInt(1)
	// TWO is the integer 2.
	TWO = NewInt(2)
	// THREE is the integer 3.
	THREE = NewInt(3)
	// FOUR is the integer 4.
	FOUR = NewInt(4)
	// NEGONE is the integer -1, used as the synthetic sign-bit key in
	// relation factorizations.
	NEGONE = NewInt(-1)
)

// Int is an integer of arbitrary size.
type Int struct {
	v *big.Int
}

// NewInt returns a new Int from an intrinsic int64.
func NewInt(v int64) *Int {
	return &Int{v: big.NewInt(v)}
}

// NewIntFromString converts a base-10 string representation into an Int.
// It panics on malformed input, matching the teacher's NewIntFromString.
func NewIntFromString(s string) *Int {
	v := new(big.Int)
	if _, ok := v.SetString(s, 10); !ok {
		panic("bigint: malformed integer literal: " + s)
	}
	return &Int{v: v}
}

// NewIntFromBytes converts a big-endian byte array into an unsigned Int.
func NewIntFromBytes(buf []byte) *Int {
	return &Int{v: new(big.Int).SetBytes(buf)}
}

// Bytes returns the big-endian byte representation of the absolute value.
func (i *Int) Bytes() []byte {
	return i.v.Bytes()
}

// String converts an Int to its base-10 representation.
func (i *Int) String() string {
	return i.v.String()
}

// Add returns i+j.
func (i *Int) Add(j *Int) *Int {
	return &Int{v: new(big.Int).Add(i.v, j.v)}
}

// Sub returns i-j.
func (i *Int) Sub(j *Int) *Int {
	return &Int{v: new(big.Int).Sub(i.v, j.v)}
}

// Mul returns i*j.
func (i *Int) Mul(j *Int) *Int {
	return &Int{v: new(big.Int).Mul(i.v, j.v)}
}

// Div returns the truncated-toward-zero quotient i/j.
func (i *Int) Div(j *Int) *Int {
	return &Int{v: new(big.Int).Quo(i.v, j.v)}
}

// DivMod returns the Euclidean quotient q and remainder m of i by j, so
// that i = q*j + m with 0 <= m < |j|. The remainder equals i.Mod(j); the
// quotient differs from the truncated i.Div(j) when i is negative and
// j does not divide it.
func (i *Int) DivMod(j *Int) (*Int, *Int) {
	q, m := new(big.Int), new(big.Int)
	q.QuoRem(i.v, j.v, m)
	if m.Sign() < 0 {
		if j.v.Sign() > 0 {
			m.Add(m, j.v)
			q.Sub(q, big.NewInt(1))
		} else {
			m.Sub(m, j.v)
			q.Add(q, big.NewInt(1))
		}
	}
	return &Int{v: q}, &Int{v: m}
}

// Mod returns the non-negative remainder of i divided by j (Euclidean mod).
func (i *Int) Mod(j *Int) *Int {
	return &Int{v: new(big.Int).Mod(i.v, j.v)}
}

// ModPow returns i^n mod m.
func (i *Int) ModPow(n, m *Int) *Int {
	return &Int{v: new(big.Int).Exp(i.v, n.v, m.v)}
}

// GCD returns the greatest common divisor of i and j (always non-negative).
func (i *Int) GCD(j *Int) *Int {
	return &Int{v: new(big.Int).GCD(nil, nil, new(big.Int).Abs(i.v), new(big.Int).Abs(j.v))}
}

// LCM returns the least common multiple of i and j.
func (i *Int) LCM(j *Int) *Int {
	if i.Sign() == 0 || j.Sign() == 0 {
		return ZERO
	}
	g := i.GCD(j)
	return i.Div(g).Mul(j).Abs()
}

// Pow raises i to the (non-negative) power n.
func (i *Int) Pow(n int) *Int {
	return &Int{v: new(big.Int).Exp(i.v, big.NewInt(int64(n)), nil)}
}

// BitLen returns the number of bits required to represent |i|.
func (i *Int) BitLen() int {
	return i.v.BitLen()
}

// Sign returns -1, 0 or +1 depending on the sign of i.
func (i *Int) Sign() int {
	return i.v.Sign()
}

// Cmp compares i and j, returning -1, 0 or +1.
func (i *Int) Cmp(j *Int) int {
	return i.v.Cmp(j.v)
}

// Equals reports whether i and j represent the same value.
func (i *Int) Equals(j *Int) bool {
	return i.v.Cmp(j.v) == 0
}

// Abs returns |i|.
func (i *Int) Abs() *Int {
	return &Int{v: new(big.Int).Abs(i.v)}
}

// Neg returns -i.
func (i *Int) Neg() *Int {
	return &Int{v: new(big.Int).Neg(i.v)}
}

// Int64 returns the int64 value of i. The result is undefined if i does
// not fit into an int64.
func (i *Int) Int64() int64 {
	return i.v.Int64()
}

// Bit returns the value of the n-th bit of i (0 or 1).
func (i *Int) Bit(n int) uint {
	return i.v.Bit(n)
}

// Big exposes the underlying math/big.Int for callers that need it
// (e.g. to feed big.Rat construction in the polynomial package).
func (i *Int) Big() *big.Int {
	return i.v
}

// FromBig wraps an existing math/big.Int without copying.
func FromBig(v *big.Int) *Int {
	return &Int{v: v}
}

// NthRoot computes the integer n-th root of i. If upper is set and i is
// not a perfect n-th power, the result is the ceiling of the true root
// rather than the floor.
func (i *Int) NthRoot(n int, upper bool) *Int {
	if i.Sign() == 0 {
		return ZERO
	}
	r := ZERO
	b := i.v.BitLen()
	if n < b {
		for s := TWO.Pow(b/n + 1); s.Cmp(ZERO) > 0; {
			t := r.Add(s)
			if t.Pow(n).Cmp(i) <= 0 {
				r = t
			} else {
				s = s.Div(TWO)
			}
		}
	} else {
		r = ONE
	}
	if upper && r.Pow(n).Cmp(i) < 0 {
		r = r.Add(ONE)
	}
	return r
}

// IsSquare reports whether i is a non-negative perfect square.
func (i *Int) IsSquare() bool {
	if i.Sign() < 0 {
		return false
	}
	r := i.NthRoot(2, false)
	return r.Mul(r).Equals(i)
}
