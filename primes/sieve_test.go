package primes

import "testing"

// trialDivisionIsPrime is the spec section 8 reference oracle: primality
// by plain trial division, checked independently of the segmented sieve
// under test.
func trialDivisionIsPrime(n int64) bool {
	if n < 2 {
		return false
	}
	for d := int64(2); d*d <= n; d++ {
		if n%d == 0 {
			return false
		}
	}
	return true
}

func trialDivisionRange(lo, hi int64) []int64 {
	var out []int64
	for n := lo; n <= hi; n++ {
		if trialDivisionIsPrime(n) {
			out = append(out, n)
		}
	}
	return out
}

func TestGetRangeMatchesTrialDivision(t *testing.T) {
	ranges := [][2]int64{
		{2, 100},
		{2, 1000},
		{900, 1100},
		{999000, 1000000},
	}
	for _, r := range ranges {
		got := GetRange(r[0], r[1], nil)
		want := trialDivisionRange(r[0], r[1])
		if len(got) != len(want) {
			t.Fatalf("GetRange(%d,%d) returned %d primes, trial division found %d", r[0], r[1], len(got), len(want))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("GetRange(%d,%d)[%d] = %d, want %d", r[0], r[1], i, got[i], want[i])
			}
		}
	}
}

func TestGetRangeStrictlyAscendingNoDuplicates(t *testing.T) {
	got := GetRange(2, 200000, nil)
	for i := 1; i < len(got); i++ {
		if got[i] <= got[i-1] {
			t.Fatalf("GetRange not strictly ascending at index %d: %d then %d", i, got[i-1], got[i])
		}
	}
}

func TestPrimesFromMatchesGetRange(t *testing.T) {
	want := GetRange(50, 500, nil)
	it := PrimesFrom(50, nil)
	for i, w := range want {
		got, ok := it.Next()
		if !ok {
			t.Fatalf("PrimesFrom(50) exhausted early at index %d, want %d", i, w)
		}
		if got != w {
			t.Fatalf("PrimesFrom(50) element %d = %d, want %d", i, got, w)
		}
	}
}
