// Package factorbase builds the three factor-pair collections a GNFS
// job sieves against: rational, algebraic and quadratic (spec sections
// 3, 4.6). Grounded on gospel/math/factorizer/{qs,sac}.FactorBase --
// both teacher variants expose a fixed-size prime/root table built once
// from the number being factored; this package generalizes that to
// three differently-shaped tables driven by the GNFS polynomial instead
// of a single quadratic residue test.
package factorbase

import (
	"github.com/danielrcurtis/gnfs-sub002/bigint"
	"github.com/danielrcurtis/gnfs-sub002/cancel"
	"github.com/danielrcurtis/gnfs-sub002/gnfserr"
	"github.com/danielrcurtis/gnfs-sub002/polynomial"
	"github.com/danielrcurtis/gnfs-sub002/primes"
)

// Bounds is the (B_rat, B_alg, Q_min, Q_count, Q_max) tuple of spec
// section 3.
type Bounds struct {
	Rational  int64
	Algebraic int64
	QMin      int64
	QCount    int
	QMax      int64
}

// qCountForDegree implements spec section 3's Q_count-by-degree table.
func qCountForDegree(d int) int {
	switch {
	case d <= 3:
		return 10
	case d == 4:
		return 20
	case d == 5, d == 6:
		return 40
	case d == 7:
		return 80
	default:
		return 100
	}
}

// NewBounds derives the factor-base bounds from a rational bound and a
// polynomial degree, per spec section 3.
func NewBounds(bRat int64, degree int) Bounds {
	bAlg := 3 * bRat
	qMin := bAlg + 20
	qCount := qCountForDegree(degree)
	qMax := primes.NthPrimeUpperBound(indexForBound(qMin, qCount))
	return Bounds{
		Rational:  bRat,
		Algebraic: bAlg,
		QMin:      qMin,
		QCount:    qCount,
		QMax:      qMax,
	}
}

// indexForBound reproduces spec section 3's literal phrasing of Q_max
// as "the upper-bound estimate of the (Q_min + Q_count)-th prime" --
// i.e. NthPrimeUpperBound is invoked with n = Q_min + Q_count, treating
// the bound value itself as a prime index rather than converting Q_min
// to an index first. See DESIGN.md, Open Questions, for why this is
// replicated rather than "fixed" to index-of(Q_min)+Q_count.
func indexForBound(qMin int64, qCount int) int {
	return int(qMin) + qCount
}

// RationalPair is (p, m mod p).
type RationalPair struct {
	P *bigint.Int
	R *bigint.Int
}

// AlgebraicPair is (p, r) with f(r) == 0 (mod p).
type AlgebraicPair struct {
	P *bigint.Int
	R *bigint.Int
}

// QuadraticPair is (p, r) with f(r) == 0 (mod p), p in [Q_min, Q_max].
type QuadraticPair struct {
	P *bigint.Int
	R *bigint.Int
}

// BuildRational emits (p, m mod p) for every prime p <= B_rat.
func BuildRational(m *bigint.Int, bRat int64, probe primes.CacheProbe) []RationalPair {
	ps := primes.GetRange(2, bRat, probe)
	out := make([]RationalPair, 0, len(ps))
	for _, p := range ps {
		pb := bigint.NewInt(p)
		out = append(out, RationalPair{P: pb, R: m.Mod(pb)})
	}
	return out
}

// BuildAlgebraic emits (p, r) for every prime p <= B_alg and every root
// r in [0,p) of f mod p. Polls tok between primes (spec section 5,
// "between factor-base-building entries").
func BuildAlgebraic(f *polynomial.Polynomial, bAlg int64, probe primes.CacheProbe, tok *cancel.Token) ([]AlgebraicPair, error) {
	ps := primes.GetRange(2, bAlg, probe)
	var out []AlgebraicPair
	for _, p := range ps {
		if tok != nil && tok.Cancelled() {
			return out, gnfserr.New(gnfserr.ErrCancelled, "algebraic factor base build cancelled at p=%d", p)
		}
		pb := bigint.NewInt(p)
		for r := int64(0); r < p; r++ {
			rb := bigint.NewInt(r)
			if f.EvalIntMod(rb, pb).Sign() == 0 {
				out = append(out, AlgebraicPair{P: pb, R: rb})
			}
		}
	}
	return out, nil
}

// BuildQuadratic enumerates primes ascending from Q_min, collecting
// every root r of f mod p for each, emitting pairs in order, stopping
// once qCount pairs have been emitted (spec section 4.6).
func BuildQuadratic(f *polynomial.Polynomial, qMin int64, qCount int, probe primes.CacheProbe, tok *cancel.Token) ([]QuadraticPair, error) {
	out := make([]QuadraticPair, 0, qCount)
	it := primes.PrimesFrom(qMin, probe)
	for len(out) < qCount {
		if tok != nil && tok.Cancelled() {
			return out, gnfserr.New(gnfserr.ErrCancelled, "quadratic factor base build cancelled")
		}
		p, ok := it.Next()
		if !ok {
			break
		}
		pb := bigint.NewInt(p)
		for r := int64(0); r < p && len(out) < qCount; r++ {
			rb := bigint.NewInt(r)
			if f.EvalIntMod(rb, pb).Sign() == 0 {
				out = append(out, QuadraticPair{P: pb, R: rb})
			}
		}
	}
	return out, nil
}

// Collections bundles the three built factor bases for a job.
type Collections struct {
	Rational  []RationalPair
	Algebraic []AlgebraicPair
	Quadratic []QuadraticPair
}

// Build constructs all three collections for the given polynomial,
// base m and bounds.
func Build(f *polynomial.Polynomial, m *bigint.Int, b Bounds, probe primes.CacheProbe, tok *cancel.Token) (*Collections, error) {
	rat := BuildRational(m, b.Rational, probe)
	alg, err := BuildAlgebraic(f, b.Algebraic, probe, tok)
	if err != nil {
		return nil, err
	}
	quad, err := BuildQuadratic(f, b.QMin, b.QCount, probe, tok)
	if err != nil {
		return nil, err
	}
	return &Collections{Rational: rat, Algebraic: alg, Quadratic: quad}, nil
}
