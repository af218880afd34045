package matrix

import (
	"github.com/danielrcurtis/gnfs-sub002/cancel"
	"github.com/danielrcurtis/gnfs-sub002/gnfserr"
	"github.com/danielrcurtis/gnfs-sub002/relation"
)

// RunDriver implements spec section 4.8's driver loop: while the
// candidate pool has at least requiredCount relations, sample
// requiredCount relations (bumped up by one if odd, "parity-adjusted to
// even") without replacement, build and eliminate a matrix, and walk
// free columns 1 through len(freeColumns)-1, reporting every subset that
// passes IsValidSolution to onSolution. onSolution returning true stops
// the driver after the current round; the cancellation token is polled
// between solution iterations and between rounds (spec section 5).
func RunDriver(smooth []*relation.Relation, enc *Encoder, requiredCount int, entropy *EntropySource, tok *cancel.Token, onSolution func([]*relation.Relation) bool) error {
	if requiredCount <= 0 {
		return gnfserr.New(gnfserr.ErrInternalInvariant, "matrix driver requires a positive relation count, got %d", requiredCount)
	}
	sampleSize := requiredCount
	if sampleSize%2 != 0 {
		sampleSize++
	}

	for len(smooth) >= requiredCount {
		if tok != nil && tok.Cancelled() {
			return gnfserr.New(gnfserr.ErrCancelled, "matrix driver cancelled before round")
		}

		n := sampleSize
		if n > len(smooth) {
			n = len(smooth)
		}
		sample := sampleWithoutReplacement(smooth, n, entropy)

		m, err := BuildMatrix(sample, enc)
		if err != nil {
			return err
		}
		m.Eliminate()

		stop := false
		free := m.FreeColumns()
		for k := 1; k <= len(free)-1; k++ {
			if tok != nil && tok.Cancelled() {
				return gnfserr.New(gnfserr.ErrCancelled, "matrix driver cancelled between solution iterations")
			}
			rels, err := m.GetSolution(k)
			if err != nil {
				return err
			}
			if IsValidSolution(rels) && onSolution != nil {
				if onSolution(rels) {
					stop = true
				}
			}
		}
		if stop {
			return nil
		}
	}
	return nil
}

// sampleWithoutReplacement returns n distinct relations drawn from pool
// using entropy's Fisher-Yates shuffle over a working copy, so the
// original slice (and its order) is left untouched.
func sampleWithoutReplacement(pool []*relation.Relation, n int, entropy *EntropySource) []*relation.Relation {
	work := make([]*relation.Relation, len(pool))
	copy(work, pool)
	entropy.Shuffle(len(work), func(i, j int) { work[i], work[j] = work[j], work[i] })
	if n > len(work) {
		n = len(work)
	}
	return work[:n]
}
