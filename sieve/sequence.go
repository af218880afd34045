// Package sieve implements the relation-sieving coordinator: the
// state machine that enumerates (a,b) pairs, drives trial division via
// the relation package, appends smooth relations, and advances B/MaxB
// (spec sections 4.7, 5).
//
// Grounded on gospel/math/factorizer/{qs,sac}.Siever for the
// interval/state-machine shape (an owned sub-range, a Run loop, a
// callback on acceptance) and on gospel/concurrent.Dispatcher for the
// optional worker-pool parallelization of the (a,b) inner loop.
package sieve

// ASequence is the restartable, interleaved-sign a-enumeration of spec
// section 4.7: +1, -1, +2, -2, ... up to a magnitude of valueRange. It
// is an explicit, restartable iterator (spec section 9 design note)
// rather than a coroutine: its entire state is (magnitude, parity) and
// can be reconstructed from the last value it emitted.
type ASequence struct {
	valueRange int64
	magnitude  int64 // next magnitude to emit
	negNext    bool  // emit the negative of magnitude next?
}

// NewASequence returns a fresh sequence starting at +1.
func NewASequence(valueRange int64) *ASequence {
	return &ASequence{valueRange: valueRange, magnitude: 1}
}

// ResumeASequence reconstructs a sequence that will continue immediately
// after lastA, the last value emitted before a suspension (spec section
// 5, "the loop records the last-visited a so sieving can resume").
func ResumeASequence(lastA, valueRange int64) *ASequence {
	if lastA == 0 {
		return NewASequence(valueRange)
	}
	if lastA > 0 {
		return &ASequence{valueRange: valueRange, magnitude: lastA, negNext: true}
	}
	return &ASequence{valueRange: valueRange, magnitude: -lastA + 1, negNext: false}
}

// Next returns the next a value in the interleaved sequence, or
// (0, false) once the magnitude exceeds valueRange.
func (s *ASequence) Next() (int64, bool) {
	if s.magnitude > s.valueRange {
		return 0, false
	}
	if !s.negNext {
		a := s.magnitude
		s.negNext = true
		return a, true
	}
	a := -s.magnitude
	s.negNext = false
	s.magnitude++
	return a, true
}
