package sieve

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/danielrcurtis/gnfs-sub002/bigint"
	"github.com/danielrcurtis/gnfs-sub002/cancel"
	"github.com/danielrcurtis/gnfs-sub002/gnfserr"
	"github.com/danielrcurtis/gnfs-sub002/numbertheory"
	"github.com/danielrcurtis/gnfs-sub002/relation"
)

// RunParallel drives the same outer/inner state machine as Run, but
// splits each b-pass's a-range across numWorkers goroutines via
// errgroup, realizing spec section 5's "the (a,b) inner loop MAY be
// parallelized across worker threads". Grounded on
// gospel/concurrent.Dispatcher's worker-supervision shape; the
// container's own mutex (relation.Container) serializes appends, so
// workers need no coordination beyond partitioning their a-range.
func (c *Coordinator) RunParallel(tok *cancel.Token, numWorkers int) error {
	if numWorkers < 2 {
		return c.Run(tok)
	}
	for {
		if tok != nil && tok.Cancelled() {
			return gnfserr.New(gnfserr.ErrCancelled, "parallel sieve cancelled before b=%d", c.Progress.B)
		}
		if c.Progress.SmoothCounter >= c.Progress.TargetSmoothCount {
			return nil
		}
		if c.Progress.B > c.Progress.MaxB {
			if c.AbsoluteMaxB > 0 && c.Progress.MaxB >= c.AbsoluteMaxB {
				return nil
			}
			c.Progress.GrowMaxB()
		}

		if err := c.sieveBParallel(tok, numWorkers); err != nil {
			return err
		}
		c.Progress.SmoothCounter = c.Container.SmoothCount()
		if c.Progress.SmoothCounter >= c.Progress.TargetSmoothCount {
			return nil
		}

		c.Progress.B++
		c.Progress.A = c.Progress.StartA
	}
}

// sieveBParallel partitions the current b-pass's a-magnitudes into
// numWorkers contiguous chunks and sieves each chunk concurrently.
// Relation discovery order is not preserved across workers (spec
// section 5 notes the parallel variant only guarantees the same set
// of relations is found, not the same visitation order), so the
// resumable Progress.A this leaves behind is an upper bound on the
// magnitudes already covered rather than an exact resume point.
func (c *Coordinator) sieveBParallel(tok *cancel.Token, numWorkers int) error {
	b := bigint.NewInt(c.Progress.B)
	total := c.Progress.ValueRange
	if total <= 0 {
		return nil
	}
	chunk := (total + int64(numWorkers) - 1) / int64(numWorkers)

	ctx, cancelCtx := context.WithCancel(context.Background())
	defer cancelCtx()
	g, ctx := errgroup.WithContext(ctx)

	var mu sync.Mutex
	var maxSeen int64

	for w := 0; w < numWorkers; w++ {
		lo := int64(w)*chunk + 1
		if lo > total {
			break
		}
		hi := lo + chunk - 1
		if hi > total {
			hi = total
		}

		g.Go(func() error {
			for mag := lo; mag <= hi; mag++ {
				select {
				case <-ctx.Done():
					return gnfserr.New(gnfserr.ErrCancelled, "sieve worker stopped at b=%d", c.Progress.B)
				default:
				}
				if tok != nil && tok.Cancelled() {
					return gnfserr.New(gnfserr.ErrCancelled, "sieve worker observed cancellation at b=%d", c.Progress.B)
				}
				for _, sign := range [2]int64{1, -1} {
					a := sign * mag
					ab := bigint.NewInt(a)
					if !numbertheory.Coprime(ab, b) {
						continue
					}
					r, err := relation.New(ab, b, c.M, c.F, c.Degree, c.RatPrimes, c.AlgPrimes)
					if err != nil {
						return err
					}
					if r.IsSmooth() {
						c.Container.AppendSmooth(r)
					} else {
						c.Container.AppendRough(r)
					}
				}
			}
			mu.Lock()
			if hi > maxSeen {
				maxSeen = hi
			}
			mu.Unlock()
			return nil
		})
	}

	err := g.Wait()
	if maxSeen > 0 {
		c.Progress.A = maxSeen
	}
	return err
}
