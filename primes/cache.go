// Process-wide prime cache: monotonically growing, read-dominated, with
// exclusive access during growth (spec sections 4.1, 5, 9). Growth and
// snapshotting are guarded by a single mutex padded to a cache line with
// golang.org/x/sys/cpu, since readers may poll GetRange from several
// sieve workers concurrently while a grow is in flight.
package primes

import (
	"sync"

	"golang.org/x/sys/cpu"

	"github.com/danielrcurtis/gnfs-sub002/gnfserr"
)

// MaxBound is the largest value the cache is allowed to grow to,
// spec section 4.1 / 7 ("OverflowBound").
const MaxBound = (1 << 31) - 1

// Cache is a process-wide, monotonically growing snapshot of primes up
// to some maxV. Callers obtain immutable snapshots for iteration;
// growth regenerates the whole cache under lock.
type Cache struct {
	_     cpu.CacheLinePad
	mu    sync.RWMutex
	_     cpu.CacheLinePad
	maxV  int64
	data  []int64
	probe CacheProbe
}

// NewCache returns an empty cache. The cache-size probe is used for the
// sieve's page sizing on every (re)generation.
func NewCache(probe CacheProbe) *Cache {
	return &Cache{probe: probe}
}

// Snapshot returns the currently cached primes and the bound they cover.
// The returned slice must not be mutated; callers that need a private
// copy should copy it themselves.
func (c *Cache) Snapshot() (primes []int64, maxV int64) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.data, c.maxV
}

// Ensure grows the cache so that it covers at least [0, bound], if it
// does not already. Regeneration replaces the entire cached slice.
func (c *Cache) Ensure(bound int64) error {
	c.mu.RLock()
	covered := bound <= c.maxV
	c.mu.RUnlock()
	if covered {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if bound <= c.maxV {
		return nil // someone else grew it first
	}
	newMax := c.maxV + 100000
	if want := bound + 1000; want > newMax {
		newMax = want
	}
	if newMax > MaxBound {
		if c.maxV >= MaxBound {
			return gnfserr.New(gnfserr.ErrOverflowBound, "prime cache already at maximum bound %d", MaxBound)
		}
		newMax = MaxBound
	}
	if newMax < bound {
		return gnfserr.New(gnfserr.ErrOverflowBound, "requested bound %d exceeds maximum %d", bound, MaxBound)
	}

	data := PrimesTo(newMax+1, c.probe)
	c.data = data
	c.maxV = newMax
	return nil
}

// GetRange returns the primes in [lo, hi], growing the cache first if
// necessary.
func (c *Cache) GetRange(lo, hi int64) ([]int64, error) {
	if err := c.Ensure(hi); err != nil {
		return nil, err
	}
	data, _ := c.Snapshot()
	start := searchFirstGE(data, lo)
	end := searchFirstGE(data, hi+1)
	out := make([]int64, end-start)
	copy(out, data[start:end])
	return out, nil
}

func searchFirstGE(data []int64, v int64) int {
	lo, hi := 0, len(data)
	for lo < hi {
		mid := (lo + hi) / 2
		if data[mid] < v {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}
