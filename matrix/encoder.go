package matrix

import (
	"github.com/danielrcurtis/gnfs-sub002/factorbase"
	"github.com/danielrcurtis/gnfs-sub002/numbertheory"
	"github.com/danielrcurtis/gnfs-sub002/relation"
)

// Encoder maps a smooth relation to a fixed-width GF(2) bit vector:
// sign bit, rational-base block, algebraic-base block, quadratic-
// character block (spec section 4.8). It is a pure function of
// (relation, factor-base handles); the rest of the matrix package never
// looks at relation internals directly (spec section 9, design note on
// "relation -> row encoding").
type Encoder struct {
	ratIndex map[int64]int // prime -> bit offset within the rational block
	algIndex map[int64]int // prime -> bit offset within the algebraic block
	qfb      []factorbase.QuadraticPair
	ratLen   int
	algLen   int
	quadLen  int
}

// NewEncoder builds an Encoder from the job's three factor-base
// collections.
func NewEncoder(rat []factorbase.RationalPair, alg []factorbase.AlgebraicPair, qfb []factorbase.QuadraticPair) *Encoder {
	e := &Encoder{
		ratIndex: make(map[int64]int, len(rat)),
		algIndex: make(map[int64]int, len(alg)),
		qfb:      qfb,
		ratLen:   len(rat),
		algLen:   len(alg),
		quadLen:  len(qfb),
	}
	for i, p := range rat {
		e.ratIndex[p.P.Int64()] = i
	}
	// Multiple algebraic pairs can share the same prime with different
	// roots; the bit position is the prime's index in the distinct-prime
	// ordering, not the pair's index (spec section 4.8).
	next := 0
	for _, p := range alg {
		if _, ok := e.algIndex[p.P.Int64()]; !ok {
			e.algIndex[p.P.Int64()] = next
			next++
		}
	}
	e.algLen = next
	return e
}

// totalLen is 1 (sign) + the three block widths, the un-truncated
// per-relation vector length.
func (e *Encoder) totalLen() int {
	return 1 + e.ratLen + e.algLen + e.quadLen
}

// EncodeFull returns r's full-width, untruncated bit vector and the
// index one past the last set bit within each of the three blocks
// (used to compute the per-block truncation of spec section 4.8 step 1).
func (e *Encoder) EncodeFull(r *relation.Relation) (vec *Bitset, ratUsed, algUsed, quadUsed int) {
	vec = NewBitset(e.totalLen())
	if r.RationalNorm.Sign() < 0 {
		vec.Set(0)
	}
	ratOff := 1
	for prime, exp := range r.RationalFactorization {
		if prime == relation.SignKey {
			continue
		}
		if exp&1 == 0 {
			continue
		}
		if idx, ok := e.ratIndex[prime]; ok {
			vec.Set(ratOff + idx)
			if idx+1 > ratUsed {
				ratUsed = idx + 1
			}
		}
	}
	algOff := ratOff + e.ratLen
	for prime, exp := range r.AlgebraicFactorization {
		if prime == relation.SignKey {
			continue
		}
		if exp&1 == 0 {
			continue
		}
		if idx, ok := e.algIndex[prime]; ok {
			vec.Set(algOff + idx)
			if idx+1 > algUsed {
				algUsed = idx + 1
			}
		}
	}
	quadOff := algOff + e.algLen
	ab := r.A.Add(r.B)
	for i, qp := range e.qfb {
		arg := ab.Mul(qp.P).Abs()
		s, err := numbertheory.Symbol(arg, qp.R)
		if err != nil {
			// qp.R is a polynomial root, not a prime, and can legitimately
			// be 0 or 1, an invalid Legendre modulus (see DESIGN.md, Open
			// Questions). That is a property of the root, not a defect in
			// this relation, so the character bit is left unset instead of
			// propagating the error.
			continue
		}
		if s != 1 {
			vec.Set(quadOff + i)
			if i+1 > quadUsed {
				quadUsed = i + 1
			}
		}
	}
	return vec, ratUsed, algUsed, quadUsed
}
