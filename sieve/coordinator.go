package sieve

import (
	"github.com/danielrcurtis/gnfs-sub002/bigint"
	"github.com/danielrcurtis/gnfs-sub002/cancel"
	"github.com/danielrcurtis/gnfs-sub002/gnfserr"
	"github.com/danielrcurtis/gnfs-sub002/numbertheory"
	"github.com/danielrcurtis/gnfs-sub002/polynomial"
	"github.com/danielrcurtis/gnfs-sub002/relation"
)

// Coordinator drives the sieve state machine of spec section 4.7 over
// a fixed polynomial, base and factor-base prime lists.
type Coordinator struct {
	M      *bigint.Int
	F      *polynomial.Polynomial
	Degree int

	RatPrimes []int64
	AlgPrimes []int64

	Container *relation.Container
	Progress  Progress

	// AbsoluteMaxB, if positive, is a hard ceiling on MaxB growth. Spec
	// section 4.7 says MaxB grows by +100 whenever B would exceed it,
	// while section 4.7's termination list also names "B > MaxB" as an
	// exit condition; those only coexist if growth is itself bounded.
	// AbsoluteMaxB resolves that tension as a configurable safety valve
	// (see DESIGN.md, Open Questions).
	AbsoluteMaxB int64
}

// NewCoordinator returns a coordinator ready to run from a fresh or
// resumed Progress.
func NewCoordinator(m *bigint.Int, f *polynomial.Polynomial, degree int, ratPrimes, algPrimes []int64, container *relation.Container, progress Progress) *Coordinator {
	return &Coordinator{
		M: m, F: f, Degree: degree,
		RatPrimes: ratPrimes, AlgPrimes: algPrimes,
		Container: container, Progress: progress,
	}
}

// Run drives the outer (b) and inner (a) loops until smoothCounter
// reaches the target, B exceeds the (possibly grown) MaxB ceiling, or
// the token is cancelled (spec section 4.7, "Termination").
func (c *Coordinator) Run(tok *cancel.Token) error {
	for {
		if tok != nil && tok.Cancelled() {
			return gnfserr.New(gnfserr.ErrCancelled, "sieve cancelled before b=%d", c.Progress.B)
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

		if err := c.sieveB(tok); err != nil {
			return err
		}
		if c.Progress.SmoothCounter >= c.Progress.TargetSmoothCount {
			return nil
		}

		c.Progress.B++
		c.Progress.A = c.Progress.StartA
	}
}

// sieveB runs the inner a-loop for the current b, resuming from
// Progress.A (spec section 4.7's "the loop records the last-visited a
// as A so sieving can resume").
func (c *Coordinator) sieveB(tok *cancel.Token) error {
	b := bigint.NewInt(c.Progress.B)
	seq := ResumeASequence(c.Progress.A, c.Progress.ValueRange)
	for {
		if tok != nil && tok.Cancelled() {
			return gnfserr.New(gnfserr.ErrCancelled, "sieve cancelled at (a=%d,b=%d)", c.Progress.A, c.Progress.B)
		}
		a, ok := seq.Next()
		if !ok {
			return nil
		}
		c.Progress.A = a

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
			c.Progress.SmoothCounter++
			if c.Progress.SmoothCounter >= c.Progress.TargetSmoothCount {
				return nil
			}
		} else {
			c.Container.AppendRough(r)
		}
	}
}
