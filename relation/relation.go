// Package relation implements the sieved (a,b) relation record, the
// two-sided trial-division classifier, and the append-only relation
// store (spec sections 3, 4.7).
//
// Grounded on gospel/math/factorizer/sac.RelationImpl: the teacher's
// relation carries a (ys, yf, yh) reduction state over one factor base,
// combined and normalized incrementally. This package re-targets that
// shape to GNFS's two norms (rational, algebraic) trial-divided against
// two independent bases in one pass rather than sac's single running
// reduction, per spec section 4.7.
package relation

import (
	"math/big"
	"sort"

	"github.com/danielrcurtis/gnfs-sub002/bigint"
	"github.com/danielrcurtis/gnfs-sub002/gnfserr"
	"github.com/danielrcurtis/gnfs-sub002/numbertheory"
	"github.com/danielrcurtis/gnfs-sub002/polynomial"
)

// SignKey is the synthetic factorization key recording a negative norm
// (spec section 3).
const SignKey int64 = -1

// Relation is an immutable (a,b) sieve result once classification
// completes.
type Relation struct {
	A, B *bigint.Int

	RationalNorm  *bigint.Int
	AlgebraicNorm *bigint.Int

	RationalFactorization  map[int64]int
	AlgebraicFactorization map[int64]int

	RationalQuotient  *bigint.Int
	AlgebraicQuotient *bigint.Int
}

// IsSmooth reports whether both quotients reduced to {0,1} (spec
// section 3).
func (r *Relation) IsSmooth() bool {
	return isTrivial(r.RationalQuotient) && isTrivial(r.AlgebraicQuotient)
}

func isTrivial(q *bigint.Int) bool {
	return q.Sign() == 0 || q.Equals(bigint.ONE)
}

// New builds and classifies a relation for coprime (a,b). The rational
// base is trial-divided first; the algebraic base is only attempted if
// the rational quotient reduced fully to 1 (spec section 4.7's
// short-circuit, since otherwise the relation cannot be smooth).
func New(a, b, m *bigint.Int, f *polynomial.Polynomial, degree int, ratPrimes, algPrimes []int64) (*Relation, error) {
	if !numbertheory.Coprime(a, b) {
		return nil, gnfserr.New(gnfserr.ErrInternalInvariant, "gcd(%v,%v) != 1", a, b)
	}

	rNorm := a.Add(b.Mul(m))

	negA := new(big.Rat).SetInt(a.Big())
	negA.Neg(negA)
	bRat := new(big.Rat).SetInt(b.Big())
	x := new(big.Rat).Quo(negA, bRat)
	fx, err := f.EvalRatAsInt(x)
	if err != nil {
		return nil, gnfserr.New(gnfserr.ErrInternalInvariant, "non-integral algebraic norm for (%v,%v): %v", a, b, err)
	}
	negB := b.Neg()
	aNorm := negB.Pow(degree).Mul(fx)

	rQuot, rFact, err := trialDivide(ratPrimes, rNorm.Abs())
	if err != nil {
		return nil, err
	}
	if rNorm.Sign() < 0 {
		rFact[SignKey] = 1
	}

	aQuot := aNorm.Abs()
	aFact := map[int64]int{}
	if isTrivial(rQuot) {
		aQuot, aFact, err = trialDivide(algPrimes, aNorm.Abs())
		if err != nil {
			return nil, err
		}
	}
	if aNorm.Sign() < 0 {
		aFact[SignKey] = 1
	}

	return &Relation{
		A: a, B: b,
		RationalNorm:  rNorm,
		AlgebraicNorm: aNorm,

		RationalFactorization:  rFact,
		AlgebraicFactorization: aFact,

		RationalQuotient:  rQuot,
		AlgebraicQuotient: aQuot,
	}, nil
}

// trialDivide implements spec section 4.7's trial-division primitive:
// given an ascending sequence of primes p and a positive quotient q,
// divide out every prime in p from q in order, recording exponents;
// once p^2 > q, the remainder is either 1 (fully divided), the prime q
// itself (if q <= the largest prime in p, i.e. q is a member of the
// base), or a residual larger than the base's bound that is left
// untouched.
func trialDivide(ps []int64, q *bigint.Int) (*bigint.Int, map[int64]int, error) {
	fact := map[int64]int{}
	if q.Sign() < 0 {
		return nil, nil, gnfserr.New(gnfserr.ErrInternalInvariant, "trial division given negative quotient %v", q)
	}
	for _, p := range ps {
		if p < 0 {
			return nil, nil, gnfserr.New(gnfserr.ErrInternalInvariant, "trial division given negative prime %d", p)
		}
		if q.Equals(bigint.ONE) {
			break
		}
		pb := bigint.NewInt(p)
		if pb.Mul(pb).Cmp(q) > 0 {
			if q.Cmp(bigint.ONE) > 0 && inBase(ps, q) {
				fact[q.Int64()]++
				q = bigint.ONE
			}
			break
		}
		for q.Mod(pb).Sign() == 0 {
			fact[p]++
			q = q.Div(pb)
		}
	}
	return q, fact, nil
}

// inBase reports whether v (assumed prime by the caller's invariant)
// does not exceed the largest prime in the ascending, sorted list ps.
func inBase(ps []int64, v *bigint.Int) bool {
	if len(ps) == 0 {
		return false
	}
	return v.Cmp(bigint.NewInt(ps[len(ps)-1])) <= 0
}

// SortedKeys returns the keys of a factorization map in ascending
// numeric order, sign key first.
func SortedKeys(fact map[int64]int) []int64 {
	keys := make([]int64, 0, len(fact))
	for k := range fact {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
