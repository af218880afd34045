package polynomial

import (
	"math/big"
	"testing"

	"github.com/danielrcurtis/gnfs-sub002/bigint"
)

func TestFromBaseMRoundTrip(t *testing.T) {
	n := bigint.NewInt(45113)
	m := bigint.NewInt(31)
	f, err := FromBaseM(n, m, 3)
	if err != nil {
		t.Fatalf("FromBaseM: %v", err)
	}
	want := []int64{8, 29, 15, 1}
	for i, w := range want {
		if got := f.Coefficient(i).Int64(); got != w {
			t.Errorf("coefficient[%d] = %d, want %d", i, got, w)
		}
	}
	if got := f.EvalInt(m); !got.Equals(n) {
		t.Errorf("f(m) = %v, want %v", got, n)
	}
}

func TestFromBaseMInvalidInput(t *testing.T) {
	cases := []struct {
		n, m *bigint.Int
		d    int
	}{
		{bigint.ONE, bigint.NewInt(31), 3},
		{bigint.NewInt(45113), bigint.ONE, 3},
		{bigint.NewInt(45113), bigint.NewInt(31), 1},
	}
	for _, c := range cases {
		if _, err := FromBaseM(c.n, c.m, c.d); err == nil {
			t.Errorf("FromBaseM(%v,%v,%d): expected error", c.n, c.m, c.d)
		}
	}
}

func TestEvalRatAsIntRejectsFraction(t *testing.T) {
	f, err := FromBaseM(bigint.NewInt(45113), bigint.NewInt(31), 3)
	if err != nil {
		t.Fatalf("FromBaseM: %v", err)
	}
	half := big.NewRat(1, 2)
	if _, err := f.EvalRatAsInt(half); err == nil {
		t.Fatalf("EvalRatAsInt(1/2): expected non-integral error")
	}
}

func TestDegreeForDigits(t *testing.T) {
	cases := []struct {
		digits, want int
	}{
		{50, 3}, {64, 3}, {65, 4}, {100, 4}, {124, 4},
		{125, 5}, {200, 5}, {224, 5}, {225, 6}, {250, 6},
		{314, 6}, {315, 7}, {400, 7},
	}
	for _, c := range cases {
		if got := DegreeForDigits(c.digits); got != c.want {
			t.Errorf("DegreeForDigits(%d) = %d, want %d", c.digits, got, c.want)
		}
	}
}

func TestSelectDegreeOverride(t *testing.T) {
	overrides := map[int]int{64: 3, 999: 9}
	if got := SelectDegree(50, overrides); got != 3 {
		t.Errorf("SelectDegree(50, overrides) = %d, want 3", got)
	}
	if got := SelectDegree(500, overrides); got != 9 {
		t.Errorf("SelectDegree(500, overrides) = %d, want 9", got)
	}
	if got := SelectDegree(500, nil); got != 7 {
		t.Errorf("SelectDegree(500, nil) = %d, want 7", got)
	}
}
