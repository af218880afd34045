// Deterministic entropy source for the matrix driver's relation-subset
// sampling (spec section 5, "Matrix results are deterministic given an
// identical input relation list and identical random seed for subset
// selection"; section 9 design note, "accept an injectable entropy
// source so tests are deterministic").
package matrix

import (
	"crypto/sha256"
	"encoding/binary"

	"golang.org/x/crypto/chacha20"
)

// EntropySource is a seedable, deterministic byte stream used to drive
// Fisher-Yates shuffling of candidate relations before matrix
// construction. The same seed always produces the same stream.
type EntropySource struct {
	cipher *chacha20.Cipher
}

// NewEntropySource derives a chacha20 key from seed via sha256 and
// returns a fresh keystream-backed entropy source. A zero nonce is safe
// here because every EntropySource uses a key unique to its seed.
func NewEntropySource(seed uint64) *EntropySource {
	var seedBytes [8]byte
	binary.LittleEndian.PutUint64(seedBytes[:], seed)
	key := sha256.Sum256(seedBytes[:])
	nonce := make([]byte, chacha20.NonceSize)
	c, err := chacha20.NewUnauthenticatedCipher(key[:], nonce)
	if err != nil {
		// key/nonce are fixed-size local values; this cannot fail.
		panic(err)
	}
	return &EntropySource{cipher: c}
}

// Uint32 returns the next 32 bits of keystream as an unsigned integer.
func (e *EntropySource) Uint32() uint32 {
	var buf [4]byte
	e.cipher.XORKeyStream(buf[:], buf[:])
	return binary.LittleEndian.Uint32(buf[:])
}

// Intn returns a uniformly-ish distributed integer in [0, n) for n > 0.
// Uses Lemire-style reduction, which is adequate for shuffling sampling
// order and not meant to be cryptographically uniform.
func (e *EntropySource) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(uint64(e.Uint32()) * uint64(n) >> 32)
}

// Shuffle performs a Fisher-Yates shuffle of indices [0, n) driven by e.
func (e *EntropySource) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := e.Intn(i + 1)
		swap(i, j)
	}
}
