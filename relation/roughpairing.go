package relation

import (
	"github.com/danielrcurtis/gnfs-sub002/bigint"
	"github.com/danielrcurtis/gnfs-sub002/primes"
)

// HeuristicPair is the result of combining two rough relations whose
// leftover quotients matched, per spec section 4.7 / 6.1. It is not a
// validated smooth relation -- the combined value still needs to be
// re-trial-divided and square-checked by a caller that wants to use it
// -- and exists purely as an experimental optimization (spec section 9,
// Open Question 2). Nothing in the core calls PairRoughRelations, and
// config.Options.EnableRoughPairing is not read by any package; a host
// that wants the pairing calls it directly.
type HeuristicPair struct {
	First, Second *Relation
	Combined      *bigint.Int
}

// PairRoughRelations implements the recovered rough-relation
// post-processing of spec section 4.7 / 6.1, grounded on
// gospel/math/factorizer/sac.RelationImpl.Multiply's GCD-based exponent
// merge -- adapted here from "combine two fully-reduced relations into
// one" to "opportunistically combine two rough relations with matching
// quotients" per the spec's heuristic formula
// (a1+b1)(a1-b1)*(a2+b2)(a2-b2).
//
// Relations whose rational or algebraic quotient is a probable prime
// strictly larger than the corresponding factor-base bound are dropped
// first (spec section 4.7, "discarded"); the remainder is grouped by
// matching (rationalQuotient, algebraicQuotient) and paired off.
func PairRoughRelations(rough []*Relation, ratBound, algBound int64) []HeuristicPair {
	kept := make([]*Relation, 0, len(rough))
	for _, r := range rough {
		if quotientIsOversizedPrime(r.RationalQuotient, ratBound) {
			continue
		}
		if quotientIsOversizedPrime(r.AlgebraicQuotient, algBound) {
			continue
		}
		kept = append(kept, r)
	}

	groups := map[string][]*Relation{}
	for _, r := range kept {
		key := r.RationalQuotient.String() + "|" + r.AlgebraicQuotient.String()
		groups[key] = append(groups[key], r)
	}

	var out []HeuristicPair
	for _, g := range groups {
		for i := 0; i+1 < len(g); i += 2 {
			r1, r2 := g[i], g[i+1]
			v1 := r1.A.Add(r1.B).Mul(r1.A.Sub(r1.B))
			v2 := r2.A.Add(r2.B).Mul(r2.A.Sub(r2.B))
			out = append(out, HeuristicPair{First: r1, Second: r2, Combined: v1.Mul(v2)})
		}
	}
	return out
}

func quotientIsOversizedPrime(q *bigint.Int, bound int64) bool {
	if q.Cmp(bigint.NewInt(bound)) <= 0 {
		return false
	}
	return primes.IsProbablePrime(q)
}
