package sieve

// Progress is the persisted sieve-coordinator state of spec section 3:
// (A, B, MaxB, ValueRange, targetSmoothCount, smoothCounter).
type Progress struct {
	A          int64 // last-visited a value, for resuming the inner loop
	StartA     int64 // the a value each fresh b pass begins from
	B          int64
	MaxB       int64
	ValueRange int64

	TargetSmoothCount int
	SmoothCounter     int
}

// NewProgress returns the initial progress state: B starts at 3 (spec
// section 4.7), A/StartA at 0 (the sequence's natural starting point).
func NewProgress(maxB, valueRange int64, targetSmoothCount int) Progress {
	return Progress{
		B:                 3,
		MaxB:              maxB,
		ValueRange:        valueRange,
		TargetSmoothCount: targetSmoothCount,
	}
}

// TargetSmoothCount computes spec section 4.7's
// max(configuredTarget, indexOf(B_rat)+indexOf(B_alg)+|QFB|+3), using
// the size of each factor-base collection as the "index of the bound
// within the primes sequence".
func TargetSmoothCount(configured, ratCount, algCount, qfbCount int) int {
	floor := ratCount + algCount + qfbCount + 3
	if configured > floor {
		return configured
	}
	return floor
}

// IncreaseTarget implements the "increase hook" of spec section 4.7:
// adds delta to the target smooth-relation count. Persisting the new
// value is the caller's responsibility (via the persistence adapter).
func (p *Progress) IncreaseTarget(delta int) {
	p.TargetSmoothCount += delta
}

// GrowMaxB implements the "+100 each advance" growth rule of spec
// section 4.7.
func (p *Progress) GrowMaxB() {
	p.MaxB += 100
}

// GrowValueRange implements design note 9 (Open Question 4): +200 when
// the configured value range proves insufficient. A tuning knob, not a
// correctness requirement.
func (p *Progress) GrowValueRange() {
	p.ValueRange += 200
}
