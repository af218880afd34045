package relation

import (
	"testing"

	"github.com/danielrcurtis/gnfs-sub002/bigint"
	"github.com/danielrcurtis/gnfs-sub002/polynomial"
)

func TestNewRelationSmallScenario(t *testing.T) {
	n := bigint.NewInt(1649)
	m := bigint.NewInt(7)
	f, err := polynomial.FromBaseM(n, m, 2)
	if err != nil {
		t.Fatalf("FromBaseM: %v", err)
	}
	ratPrimes := []int64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29}
	algPrimes := ratPrimes

	r, err := New(bigint.NewInt(1), bigint.NewInt(1), m, f, 2, ratPrimes, algPrimes)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	wantNorm := bigint.NewInt(1).Add(bigint.NewInt(1).Mul(m))
	if !r.RationalNorm.Equals(wantNorm) {
		t.Errorf("RationalNorm = %v, want %v", r.RationalNorm, wantNorm)
	}
}

func TestRelationRejectsNonCoprime(t *testing.T) {
	n := bigint.NewInt(1649)
	m := bigint.NewInt(7)
	f, err := polynomial.FromBaseM(n, m, 2)
	if err != nil {
		t.Fatalf("FromBaseM: %v", err)
	}
	_, err = New(bigint.NewInt(4), bigint.NewInt(2), m, f, 2, nil, nil)
	if err == nil {
		t.Fatal("expected error for gcd(4,2) != 1")
	}
}

func TestTrialDivideFullyReduces(t *testing.T) {
	q, fact, err := trialDivide([]int64{2, 3, 5, 7}, bigint.NewInt(60))
	if err != nil {
		t.Fatalf("trialDivide: %v", err)
	}
	if !q.Equals(bigint.ONE) {
		t.Errorf("quotient = %v, want 1", q)
	}
	want := map[int64]int{2: 2, 3: 1, 5: 1}
	for k, v := range want {
		if fact[k] != v {
			t.Errorf("fact[%d] = %d, want %d", k, fact[k], v)
		}
	}
}

func TestTrialDivideResidualAboveBase(t *testing.T) {
	// 221 = 13 * 17; base only contains small primes, so 13 and 17
	// both exceed sqrt-reachable bound and the residual is left.
	q, _, err := trialDivide([]int64{2, 3, 5}, bigint.NewInt(221))
	if err != nil {
		t.Fatalf("trialDivide: %v", err)
	}
	if q.Equals(bigint.ONE) {
		t.Errorf("expected residual quotient, got fully reduced")
	}
}

func TestContainerAppendAndSnapshot(t *testing.T) {
	c := NewContainer()
	r := &Relation{A: bigint.ONE, B: bigint.ONE}
	c.AppendSmooth(r)
	if got := c.SmoothCount(); got != 1 {
		t.Fatalf("SmoothCount = %d, want 1", got)
	}
	snap := c.Smooth()
	if len(snap) != 1 || snap[0] != r {
		t.Fatalf("Smooth() snapshot mismatch")
	}
}
