// Package primes implements the segmented prime sieve, a process-wide
// growing prime cache, the deterministic Miller-Rabin test, and the
// Dusart nth-prime upper-bound estimate (spec sections 4.1, 4.2, 3).
//
// The page layout is grounded on MichaelTJones/sieve's bit-packed odd-
// number table (other_examples); the restartable, self-extending base-
// primes feed is this package's own realization of spec section 4.1's
// "recursive instance of the same iterator".
package primes

import "math/bits"

// defaultPageBytes is the fallback page size when the host's cache-size
// probe is unavailable or returns zero, per spec section 4.1.
const defaultPageBytes = 384 * 1024

// CacheProbe returns the host's L1 data-cache size in bytes, or 0 if
// unknown (spec section 6, "CPU cache-size probe").
type CacheProbe func() int

func pageBytes(probe CacheProbe) int {
	if probe == nil {
		return defaultPageBytes
	}
	if b := probe(); b > 0 {
		return b
	}
	return defaultPageBytes
}

// Sieve is a lazy, restartable ascending sequence of primes starting at
// 2. Each call to Next advances the sequence by exactly one prime.
// A Sieve is not safe for concurrent use; callers that need concurrent
// access should go through Cache (cache.go), which serializes growth.
type Sieve struct {
	bufferBits int64      // odd candidates represented per page
	low        int64      // odd-index of the first candidate in the current page
	page       []uint64   // bit-packed composite flags for the current page
	pos        int64      // last-visited bit index within the current page, -1 before first
	gaveTwo    bool        // has 2 already been yielded?
	base       *baseFeed  // supplies primes for sieving pages beyond the first
}

// NewSieve returns a fresh sieve starting at 2, with page size derived
// from probe (or the spec's 384 KiB default).
func NewSieve(probe CacheProbe) *Sieve {
	pb := pageBytes(probe)
	return &Sieve{
		bufferBits: int64(pb) * 8,
		pos:        -1,
		base:       &baseFeed{probe: probe},
	}
}

// Next returns the next prime in ascending order, and true, or
// (0, false) if the sieve cannot make progress (never happens in
// practice; included for interface symmetry with other iterators).
func (s *Sieve) Next() (int64, bool) {
	if !s.gaveTwo {
		s.gaveTwo = true
		return 2, true
	}
	for {
		if s.page == nil {
			s.sievePage()
		}
		for s.pos+1 < s.bufferBits {
			s.pos++
			if !testBit(s.page, s.pos) {
				return 2*(s.low+s.pos) + 3, true
			}
		}
		s.low += s.bufferBits
		s.page = nil
		s.pos = -1
	}
}

// top returns the value represented by the last bit of the current page.
func (s *Sieve) top() int64 {
	return 2*(s.low+s.bufferBits-1) + 3
}

func (s *Sieve) sievePage() {
	words := (s.bufferBits + 63) / 64
	s.page = make([]uint64, words)
	top := s.top()

	if s.low == 0 {
		// First page: self-sieve with odd primes up to sqrt(top),
		// discovered in the page itself, exactly as
		// MichaelTJones/sieve.New does for a flat (unsegmented) table.
		limit := isqrt(top)
		for p := int64(3); p <= limit; p += 2 {
			idxP := (p - 3) / 2
			if idxP >= 0 && idxP < s.bufferBits && testBit(s.page, idxP) {
				continue // composite, already struck by a smaller prime
			}
			for idx := (p*p - 3) / 2; idx < s.bufferBits; idx += p {
				setBit(s.page, idx)
			}
		}
		return
	}

	// Later pages: sieve with every base prime up to sqrt(top), fed by
	// a recursive instance of the same iterator.
	limit := isqrt(top)
	for _, p := range s.base.ensure(limit) {
		if p == 2 || p > limit {
			continue
		}
		strikePage(s.page, s.low, s.bufferBits, p)
	}
}

// strikePage marks every multiple of the odd prime p within the page
// [low, low+bufferBits) of odd-index positions.
func strikePage(page []uint64, low, bufferBits, p int64) {
	inv2 := (p + 1) / 2 // modular inverse of 2 mod p, p odd
	r := (((-3 % p) + p) % p) * inv2 % p
	delta := (r - low%p + p) % p
	for idx := delta; idx < bufferBits; idx += p {
		setBit(page, idx)
	}
}

func testBit(page []uint64, idx int64) bool {
	return page[idx>>6]&(uint64(1)<<uint(idx&63)) != 0
}

func setBit(page []uint64, idx int64) {
	page[idx>>6] |= uint64(1) << uint(idx&63)
}

// isqrt returns the integer square root of n (floor).
func isqrt(n int64) int64 {
	if n < 2 {
		return n
	}
	r := int64(1) << uint((bits.Len64(uint64(n))+1)/2)
	for {
		nr := (r + n/r) / 2
		if nr >= r {
			return r
		}
		r = nr
	}
}

// baseFeed lazily supplies the base primes needed to sieve pages beyond
// the first, recursively driving a nested Sieve instance -- spec section
// 4.1's "base-primes list extended by a recursive instance of the same
// iterator".
type baseFeed struct {
	primes []int64
	src    *Sieve
	probe  CacheProbe
}

// ensure grows primes (if needed) until its last element is >= bound,
// and returns the accumulated slice.
func (b *baseFeed) ensure(bound int64) []int64 {
	for len(b.primes) == 0 || b.primes[len(b.primes)-1] < bound {
		if b.src == nil {
			b.src = NewSieve(b.probe)
		}
		p, ok := b.src.Next()
		if !ok {
			break
		}
		b.primes = append(b.primes, p)
	}
	return b.primes
}

// GetRange returns the primes in [lo, hi], inclusive, ascending.
func GetRange(lo, hi int64, probe CacheProbe) []int64 {
	if hi < lo {
		return nil
	}
	s := NewSieve(probe)
	var out []int64
	for {
		p, ok := s.Next()
		if !ok || p > hi {
			break
		}
		if p >= lo {
			out = append(out, p)
		}
	}
	return out
}

// PrimesTo returns every prime strictly less than m.
func PrimesTo(m int64, probe CacheProbe) []int64 {
	if m <= 2 {
		return nil
	}
	return GetRange(2, m-1, probe)
}

// PrimesFromIterator returns a lazy ascending sieve of primes >= v. The
// caller drives it with Next; values below v are discarded internally.
type PrimesFromIterator struct {
	s *Sieve
	v int64
}

// PrimesFrom returns a lazy iterator of primes >= v.
func PrimesFrom(v int64, probe CacheProbe) *PrimesFromIterator {
	return &PrimesFromIterator{s: NewSieve(probe), v: v}
}

// Next returns the next prime >= the iterator's starting value.
func (it *PrimesFromIterator) Next() (int64, bool) {
	for {
		p, ok := it.s.Next()
		if !ok {
			return 0, false
		}
		if p >= it.v {
			return p, true
		}
	}
}
