// Package persistence defines the host-facing storage contract of spec
// section 6 and an in-memory reference implementation. Concrete on-disk
// layout and encoding are a host concern and stay out of scope; this
// package only fixes the Go interface the core drives and a test double
// that satisfies it.
package persistence

import (
	"github.com/danielrcurtis/gnfs-sub002/bigint"
	"github.com/danielrcurtis/gnfs-sub002/factorbase"
	"github.com/danielrcurtis/gnfs-sub002/relation"
	"github.com/danielrcurtis/gnfs-sub002/sieve"
)

// JobState is the opaque orchestrator snapshot persisted by SaveAll and
// reconstituted by LoadAll: N, the polynomial, the factor bases and the
// sieve progress tuple, per spec section 3.
type JobState struct {
	JobID  string
	N      *bigint.Int
	M      *bigint.Int
	Degree int

	Bounds       factorbase.Bounds
	Collections  *factorbase.Collections
	Progress     sieve.Progress
	FreeCount    int
	Factorization *Factorization
}

// Factorization records a verified p*q = N split, once setFactorization
// accepts one.
type Factorization struct {
	P *bigint.Int
	Q *bigint.Int
}

// Adapter is the persistence contract of spec section 6: one directory
// per job, one file per logical artifact, all opaque to the core beyond
// this interface.
type Adapter interface {
	// Exists reports whether a job directory already exists for jobID.
	Exists(jobID string) bool
	// SaveAll persists the orchestrator, sieve progress and factor-pair
	// collections.
	SaveAll(state *JobState) error
	// AppendSmooth atomically appends one smooth relation to the job's
	// relation store.
	AppendSmooth(jobID string, r *relation.Relation) error
	// AppendRough atomically appends one rough relation.
	AppendRough(jobID string, r *relation.Relation) error
	// LoadAll reconstructs the persisted state for jobID.
	LoadAll(jobID string) (*JobState, error)
	// LoadSmoothRelations returns every persisted smooth relation for
	// jobID.
	LoadSmoothRelations(jobID string) ([]*relation.Relation, error)
	// SaveFreeSolution atomically writes one null-space solution,
	// numbered from 1.
	SaveFreeSolution(jobID string, solutionIndex int, rels []*relation.Relation) error
}
