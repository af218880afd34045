package primes

import "math"

// NthPrimeUpperBound returns an upper bound for the n-th prime (1-indexed,
// p_1 = 2), using Dusart's bounds, as referenced by spec section 3 for
// Q_max = upper-bound estimate of the (Q_min + Q_count)-th prime.
func NthPrimeUpperBound(n int) int64 {
	switch {
	case n < 1:
		return 0
	case n == 1:
		return 2
	case n == 2:
		return 3
	case n == 3:
		return 5
	case n == 4:
		return 7
	case n == 5:
		return 11
	}
	fn := float64(n)
	ln := math.Log(fn)
	lnln := math.Log(ln)
	// Dusart (2010): p_n < n (ln n + ln ln n - 1 + (ln ln n - 2)/ln n) for n >= 688383;
	// Dusart (1999): p_n <= n (ln n + ln ln n - 0.9484) for n >= 39017;
	// Rosser: p_n < n (ln n + ln ln n) for n >= 6.
	var bound float64
	switch {
	case n >= 688383:
		bound = fn * (ln + lnln - 1 + (lnln-2)/ln)
	case n >= 39017:
		bound = fn * (ln + lnln - 0.9484)
	default:
		bound = fn * (ln + lnln)
	}
	return int64(math.Ceil(bound)) + 1
}
