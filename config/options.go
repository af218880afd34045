// Package config collects the configuration surface the core exposes to
// its host, per spec section 6.
package config

import "github.com/danielrcurtis/gnfs-sub002/bigint"

// DefaultLogFileName is the default log file path when a host does not
// override it. The core never opens this file itself -- log formatting
// and file handling are a host concern -- but the name is carried as
// configuration so a host's log sink can default to it.
const DefaultLogFileName = "Output.log.txt"

// Options collects the numeric and behavioral inputs a host supplies
// when creating a factorization job.
type Options struct {
	// LogFileName is the path a host's log sink should write to by
	// default.
	LogFileName string

	// N is the composite integer to factor.
	N *bigint.Int
	// Degree is the polynomial degree d. Zero selects the degree from
	// N's digit count per spec section 3, or per DegreeThresholds when
	// that map is set.
	Degree int
	// PolynomialBase is the base m with f(m) = N.
	PolynomialBase *bigint.Int
	// PrimeBound is the rational factor base bound B_rat.
	PrimeBound int64
	// RelationQuantity is the configured target smooth-relation count
	// (the "configuredTarget" of spec section 4.7).
	RelationQuantity int
	// RelationValueRange is the initial |a| search half-width.
	RelationValueRange int64

	// EnableRoughPairing is the switch for the experimental rough-relation
	// multiplication heuristic of spec section 4.7 / 6.1
	// (relation.PairRoughRelations). It defaults to off. No package in
	// the core reads it, and the core never calls PairRoughRelations, so
	// setting it has no effect on a job.
	EnableRoughPairing bool

	// DegreeThresholds overrides the digit-count -> degree table of
	// spec section 3, per design note 9, Open Question 3. A nil map
	// uses the spec defaults.
	DegreeThresholds map[int]int

	// OverwriteExisting allows createJob to reuse an existing job
	// directory instead of failing with ErrAlreadyExists.
	OverwriteExisting bool
}

// WithDefaults returns a copy of o with zero-valued fields replaced by
// the spec's defaults.
func (o Options) WithDefaults() Options {
	if o.LogFileName == "" {
		o.LogFileName = DefaultLogFileName
	}
	if o.RelationValueRange == 0 {
		o.RelationValueRange = 100000
	}
	return o
}
