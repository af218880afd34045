// Package matrix implements the GF(2) linear-algebra stage: encoding
// smooth relations as bit vectors over the combined factor base (spec
// section 4.8), Gauss-Jordan elimination with free-column tracking, and
// null-space solution extraction validated against the perfect-square
// congruence-of-squares test.
//
// No file in the teacher corpus performs GF(2) linear algebra; the
// explicit index-array/pivot-tracking style below is carried over from
// gospel/math/factorizer/sac's RelationImpl/SolverImpl bookkeeping
// conventions (explicit state structs, no generic matrix library), and
// the bit-vector itself is implemented directly on math/bits since no
// example repository in the retrieval pack supplies a GF(2) matrix
// library (see DESIGN.md).
package matrix

import "math/bits"

// Bitset is a fixed-length, word-packed vector of bits over GF(2).
type Bitset struct {
	n     int
	words []uint64
}

// NewBitset returns a zero-valued Bitset with n bits.
func NewBitset(n int) *Bitset {
	return &Bitset{n: n, words: make([]uint64, (n+63)/64)}
}

// Len returns the bit length of b.
func (b *Bitset) Len() int {
	return b.n
}

// Get returns the value of bit i.
func (b *Bitset) Get(i int) bool {
	return b.words[i>>6]&(uint64(1)<<uint(i&63)) != 0
}

// Set sets bit i to 1.
func (b *Bitset) Set(i int) {
	b.words[i>>6] |= uint64(1) << uint(i&63)
}

// Clear sets bit i to 0.
func (b *Bitset) Clear(i int) {
	b.words[i>>6] &^= uint64(1) << uint(i&63)
}

// Xor sets b := b XOR other. Both must have equal length.
func (b *Bitset) Xor(other *Bitset) {
	for i := range b.words {
		b.words[i] ^= other.words[i]
	}
}

// IsZero reports whether every bit of b is 0.
func (b *Bitset) IsZero() bool {
	for _, w := range b.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// FirstSet returns the index of the lowest set bit at or after from, or
// (-1, false) if none exists.
func (b *Bitset) FirstSet(from int) (int, bool) {
	if from >= b.n {
		return -1, false
	}
	wi := from >> 6
	// mask off bits below `from` in the first word
	w := b.words[wi] &^ (uint64(1)<<uint(from&63) - 1)
	for {
		if w != 0 {
			idx := wi*64 + bits.TrailingZeros64(w)
			if idx >= b.n {
				return -1, false
			}
			return idx, true
		}
		wi++
		if wi >= len(b.words) {
			return -1, false
		}
		w = b.words[wi]
	}
}

// LastUsed returns the index of the highest set bit, or -1 if b is
// zero.
func (b *Bitset) LastUsed() int {
	for wi := len(b.words) - 1; wi >= 0; wi-- {
		if b.words[wi] != 0 {
			return wi*64 + (63 - bits.LeadingZeros64(b.words[wi]))
		}
	}
	return -1
}

// Slice returns a new Bitset containing bits [0, n) of b, n <= b.Len().
func (b *Bitset) Slice(n int) *Bitset {
	out := NewBitset(n)
	copy(out.words, b.words[:(n+63)/64])
	if n%64 != 0 {
		out.words[len(out.words)-1] &= (uint64(1) << uint(n%64)) - 1
	}
	return out
}
