package matrix

import "testing"

func TestBitsetSetGetXor(t *testing.T) {
	a := NewBitset(10)
	a.Set(0)
	a.Set(9)
	if !a.Get(0) || !a.Get(9) {
		t.Fatal("expected bits 0 and 9 set")
	}
	if a.Get(5) {
		t.Fatal("expected bit 5 clear")
	}

	b := NewBitset(10)
	b.Set(9)
	a.Xor(b)
	if a.Get(9) {
		t.Fatal("expected bit 9 cleared after xor with a set that also has bit 9")
	}
	if !a.Get(0) {
		t.Fatal("expected bit 0 to survive xor")
	}
}

func TestBitsetFirstSetAndLastUsed(t *testing.T) {
	b := NewBitset(130)
	b.Set(64)
	b.Set(100)
	if idx, ok := b.FirstSet(0); !ok || idx != 64 {
		t.Fatalf("FirstSet(0) = (%d,%v), want (64,true)", idx, ok)
	}
	if idx, ok := b.FirstSet(65); !ok || idx != 100 {
		t.Fatalf("FirstSet(65) = (%d,%v), want (100,true)", idx, ok)
	}
	if _, ok := b.FirstSet(101); ok {
		t.Fatal("expected no set bit at or after 101")
	}
	if got := b.LastUsed(); got != 100 {
		t.Fatalf("LastUsed() = %d, want 100", got)
	}
}

func TestBitsetSlice(t *testing.T) {
	b := NewBitset(20)
	b.Set(5)
	b.Set(15)
	s := b.Slice(10)
	if !s.Get(5) {
		t.Fatal("expected bit 5 preserved in slice")
	}
	if s.Get(15) {
		t.Fatal("slice should not expose bit 15")
	}
}
