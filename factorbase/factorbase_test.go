package factorbase

import (
	"testing"

	"github.com/danielrcurtis/gnfs-sub002/bigint"
	"github.com/danielrcurtis/gnfs-sub002/polynomial"
)

func TestNewBoundsDerivation(t *testing.T) {
	b := NewBounds(29, 3)
	if b.Rational != 29 {
		t.Errorf("Rational = %d, want 29", b.Rational)
	}
	if b.Algebraic != 87 {
		t.Errorf("Algebraic = %d, want 87", b.Algebraic)
	}
	if b.QMin != 107 {
		t.Errorf("QMin = %d, want 107", b.QMin)
	}
	if b.QCount != 10 {
		t.Errorf("QCount = %d, want 10", b.QCount)
	}
	if b.QMax <= b.QMin {
		t.Errorf("QMax = %d, want > QMin = %d", b.QMax, b.QMin)
	}
}

func TestBuildRational(t *testing.T) {
	m := bigint.NewInt(7)
	pairs := BuildRational(m, 29, nil)
	if len(pairs) == 0 {
		t.Fatal("expected non-empty rational factor base")
	}
	for _, p := range pairs {
		want := m.Mod(p.P)
		if !p.R.Equals(want) {
			t.Errorf("pair(%v): r = %v, want %v", p.P, p.R, want)
		}
	}
}

func TestBuildAlgebraicRootsAreZeros(t *testing.T) {
	f, err := polynomial.FromBaseM(bigint.NewInt(45113), bigint.NewInt(31), 3)
	if err != nil {
		t.Fatalf("FromBaseM: %v", err)
	}
	pairs, err := BuildAlgebraic(f, 97, nil, nil)
	if err != nil {
		t.Fatalf("BuildAlgebraic: %v", err)
	}
	for _, p := range pairs {
		if f.EvalIntMod(p.R, p.P).Sign() != 0 {
			t.Errorf("f(%v) mod %v != 0", p.R, p.P)
		}
	}
}

func TestBuildQuadraticStopsAtCount(t *testing.T) {
	f, err := polynomial.FromBaseM(bigint.NewInt(45113), bigint.NewInt(31), 3)
	if err != nil {
		t.Fatalf("FromBaseM: %v", err)
	}
	pairs, err := BuildQuadratic(f, 107, 10, nil, nil)
	if err != nil {
		t.Fatalf("BuildQuadratic: %v", err)
	}
	if len(pairs) != 10 {
		t.Fatalf("len(pairs) = %d, want 10", len(pairs))
	}
	for _, p := range pairs {
		if p.P.Int64() < 107 {
			t.Errorf("quadratic prime %v < QMin 107", p.P)
		}
		if f.EvalIntMod(p.R, p.P).Sign() != 0 {
			t.Errorf("f(%v) mod %v != 0", p.R, p.P)
		}
	}
}
