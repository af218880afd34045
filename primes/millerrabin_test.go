package primes

import (
	"testing"

	"github.com/danielrcurtis/gnfs-sub002/bigint"
)

func TestIsProbablePrimeSpotValues(t *testing.T) {
	cases := []struct {
		n    int64
		want bool
	}{
		{561, false},                // smallest Carmichael number
		{2305843009213693951, true}, // 2^61 - 1, a Mersenne prime
		{1000000007, true},
		{1000000009, true},
		{1000000008, false},
	}
	for _, c := range cases {
		if got := IsProbablePrime(bigint.NewInt(c.n)); got != c.want {
			t.Errorf("IsProbablePrime(%d) = %v, want %v", c.n, got, c.want)
		}
	}
}

func TestIsProbablePrimeRejectsEvenAndSmallFactorComposites(t *testing.T) {
	for n := int64(4); n <= 100; n += 2 {
		if IsProbablePrime(bigint.NewInt(n)) {
			t.Errorf("IsProbablePrime(%d) = true, want false (even > 2)", n)
		}
	}
	composites := []int64{9, 15, 21, 25, 33, 49, 51, 77, 91, 121, 9991}
	for _, n := range composites {
		if IsProbablePrime(bigint.NewInt(n)) {
			t.Errorf("IsProbablePrime(%d) = true, want false (has a small prime factor)", n)
		}
	}
}
