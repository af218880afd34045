package numbertheory

import "github.com/danielrcurtis/gnfs-sub002/bigint"

// GCDAll returns the greatest common divisor of a non-empty sequence of
// values, folding bigint.Int.GCD left to right.
func GCDAll(values []*bigint.Int) *bigint.Int {
	if len(values) == 0 {
		return bigint.ZERO
	}
	g := values[0].Abs()
	for _, v := range values[1:] {
		g = g.GCD(v)
	}
	return g
}

// LCMAll returns the least common multiple of a non-empty sequence of
// values, folding bigint.Int.LCM left to right.
func LCMAll(values []*bigint.Int) *bigint.Int {
	if len(values) == 0 {
		return bigint.ONE
	}
	l := values[0].Abs()
	for _, v := range values[1:] {
		l = l.LCM(v)
	}
	return l
}

// Coprime reports whether a and b share no common factor greater than 1.
func Coprime(a, b *bigint.Int) bool {
	return a.GCD(b).Equals(bigint.ONE)
}
