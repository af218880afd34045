package primes

import "github.com/danielrcurtis/gnfs-sub002/bigint"

// witnesses is the fixed deterministic witness set of spec section 4.2,
// correct for every n < 3.3 * 10^24.
var witnesses = []int64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47}

// IsProbablePrime runs the deterministic Miller-Rabin test of spec
// section 4.2 against n using the fixed witness list.
func IsProbablePrime(n *bigint.Int) bool {
	if n.Cmp(bigint.TWO) == 0 || n.Cmp(bigint.THREE) == 0 {
		return true
	}
	if n.Cmp(bigint.TWO) < 0 || n.Bit(0) == 0 {
		return false
	}

	// n-1 = 2^s * d, d odd.
	nMinus1 := n.Sub(bigint.ONE)
	d := nMinus1
	s := 0
	for d.Bit(0) == 0 {
		d = d.Div(bigint.TWO)
		s++
	}

	for _, wv := range witnesses {
		a := bigint.NewInt(wv)
		if a.Cmp(n) >= 0 {
			continue // witness not applicable for tiny n, already handled above
		}
		if !passesWitness(n, nMinus1, d, s, a) {
			return false
		}
	}
	return true
}

// passesWitness reports whether witness a fails to prove n composite.
func passesWitness(n, nMinus1, d *bigint.Int, s int, a *bigint.Int) bool {
	x := a.ModPow(d, n)
	if x.Equals(bigint.ONE) || x.Equals(nMinus1) {
		return true
	}
	for i := 0; i < s-1; i++ {
		x = x.ModPow(bigint.TWO, n)
		if x.Equals(nMinus1) {
			return true
		}
		if x.Equals(bigint.ONE) {
			return false
		}
	}
	return false
}
