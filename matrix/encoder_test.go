package matrix

import (
	"testing"

	"github.com/danielrcurtis/gnfs-sub002/bigint"
	"github.com/danielrcurtis/gnfs-sub002/factorbase"
	"github.com/danielrcurtis/gnfs-sub002/relation"
)

func TestEncodeFullSignBit(t *testing.T) {
	rat := []factorbase.RationalPair{{P: bigint.NewInt(2), R: bigint.ZERO}}
	enc := NewEncoder(rat, nil, nil)

	neg := &relation.Relation{
		A: bigint.NewInt(-3), B: bigint.ONE,
		RationalNorm:          bigint.NewInt(-4),
		RationalFactorization: map[int64]int{2: 2},
		AlgebraicFactorization: map[int64]int{},
	}
	vec, ratUsed, _, _ := enc.EncodeFull(neg)
	if !vec.Get(0) {
		t.Error("expected sign bit set for negative rational norm")
	}
	if ratUsed != 0 {
		t.Errorf("ratUsed = %d, want 0 (exponent of 2 is even)", ratUsed)
	}

	pos := &relation.Relation{
		A: bigint.NewInt(3), B: bigint.ONE,
		RationalNorm:           bigint.NewInt(4),
		RationalFactorization:  map[int64]int{2: 1},
		AlgebraicFactorization: map[int64]int{},
	}
	vec2, ratUsed2, _, _ := enc.EncodeFull(pos)
	if vec2.Get(0) {
		t.Error("expected sign bit clear for positive rational norm")
	}
	if ratUsed2 != 1 || !vec2.Get(1) {
		t.Errorf("expected bit 1 (prime 2, index 0) set for odd exponent")
	}
}
