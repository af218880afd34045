// Package orchestrator owns a factorization job end to end: N, the
// selection polynomial, the three factor-base collections, the sieve
// coordinator and its progress, and the accepted free-relation
// solutions, and exposes the four host-facing operations of spec
// section 6.
//
// Grounded on gospel/math/factorizer/sac.Director, the component that
// owns a set of sievers and solvers and gates transitions on their
// results; this package adapts that shape from a pool of parallel
// instances racing to find one factorization to a single staged
// pipeline (setup -> sieve -> matrix) owned by one job.
package orchestrator

import (
	"github.com/danielrcurtis/gnfs-sub002/bigint"
	"github.com/danielrcurtis/gnfs-sub002/cancel"
	"github.com/danielrcurtis/gnfs-sub002/config"
	"github.com/danielrcurtis/gnfs-sub002/factorbase"
	"github.com/danielrcurtis/gnfs-sub002/gnfserr"
	"github.com/danielrcurtis/gnfs-sub002/gnfslog"
	"github.com/danielrcurtis/gnfs-sub002/matrix"
	"github.com/danielrcurtis/gnfs-sub002/persistence"
	"github.com/danielrcurtis/gnfs-sub002/polynomial"
	"github.com/danielrcurtis/gnfs-sub002/primes"
	"github.com/danielrcurtis/gnfs-sub002/relation"
	"github.com/danielrcurtis/gnfs-sub002/sieve"
)

// Job is one in-flight (or resumed) factorization.
type Job struct {
	ID     string
	Opts   config.Options
	Adapter persistence.Adapter
	Probe  primes.CacheProbe

	N      *bigint.Int
	M      *bigint.Int
	F      *polynomial.Polynomial
	Degree int
	Bounds factorbase.Bounds

	Collections *factorbase.Collections
	Container   *relation.Container
	Progress    sieve.Progress

	encoder *matrix.Encoder
	entropy *matrix.EntropySource

	Factorization *persistence.Factorization
}

// CreateJob initializes a fresh job state from opts, per spec section
// 6's createJob(N, m, d, B_rat, targetSmoothCount, valueRange). Fails
// with ErrAlreadyExists if the adapter reports a job for N already
// exists, unless opts.OverwriteExisting is set.
func CreateJob(opts config.Options, adapter persistence.Adapter, probe primes.CacheProbe, tok *cancel.Token) (*Job, error) {
	opts = opts.WithDefaults()
	jobID := opts.N.String()

	if adapter.Exists(jobID) && !opts.OverwriteExisting {
		return nil, gnfserr.New(gnfserr.ErrAlreadyExists, "job %q already exists", jobID)
	}

	degree := opts.Degree
	if degree == 0 {
		degree = polynomial.SelectDegree(polynomial.DigitsOf(opts.N), opts.DegreeThresholds)
	}
	f, err := polynomial.FromBaseM(opts.N, opts.PolynomialBase, degree)
	if err != nil {
		return nil, err
	}

	bounds := factorbase.NewBounds(opts.PrimeBound, degree)
	collections, err := factorbase.Build(f, opts.PolynomialBase, bounds, probe, tok)
	if err != nil {
		return nil, err
	}

	target := sieve.TargetSmoothCount(opts.RelationQuantity, len(collections.Rational), len(collections.Algebraic), len(collections.Quadratic))
	progress := sieve.NewProgress(opts.PrimeBound, opts.RelationValueRange, target)

	job := &Job{
		ID: jobID, Opts: opts, Adapter: adapter, Probe: probe,
		N: opts.N, M: opts.PolynomialBase, F: f, Degree: degree, Bounds: bounds,
		Collections: collections, Container: relation.NewContainer(), Progress: progress,
	}

	if err := job.persist(); err != nil {
		return nil, err
	}
	gnfslog.Printf(gnfslog.INFO, "created job %s: degree=%d B_rat=%d B_alg=%d target=%d", jobID, degree, bounds.Rational, bounds.Algebraic, target)
	return job, nil
}

// LoadJob reconstructs a job from the adapter's persisted state.
func LoadJob(jobID string, adapter persistence.Adapter, probe primes.CacheProbe) (*Job, error) {
	state, err := adapter.LoadAll(jobID)
	if err != nil {
		return nil, err
	}
	smooth, err := adapter.LoadSmoothRelations(jobID)
	if err != nil {
		return nil, err
	}
	f, err := polynomial.FromBaseM(state.N, state.M, state.Degree)
	if err != nil {
		return nil, err
	}
	container := relation.NewContainer()
	for _, r := range smooth {
		container.AppendSmooth(r)
	}
	return &Job{
		ID: jobID, Adapter: adapter, Probe: probe,
		N: state.N, M: state.M, F: f, Degree: state.Degree, Bounds: state.Bounds,
		Collections: state.Collections, Container: container, Progress: state.Progress,
		Factorization: state.Factorization,
	}, nil
}

func (j *Job) ratPrimes() []int64 {
	out := make([]int64, len(j.Collections.Rational))
	for i, p := range j.Collections.Rational {
		out[i] = p.P.Int64()
	}
	return out
}

func (j *Job) algPrimes() []int64 {
	out := make([]int64, len(j.Collections.Algebraic))
	for i, p := range j.Collections.Algebraic {
		out[i] = p.P.Int64()
	}
	return out
}

// GenerateRelations advances the sieve coordinator from the job's
// current progress, then persists every smooth relation discovered in
// this call once the coordinator returns, including when it stopped on
// cancellation (spec section 6, "generateRelations(token): advances
// sieving").
func (j *Job) GenerateRelations(tok *cancel.Token) error {
	before := j.Container.SmoothCount()
	coord := sieve.NewCoordinator(j.M, j.F, j.Degree, j.ratPrimes(), j.algPrimes(), j.Container, j.Progress)

	err := coord.Run(tok)
	j.Progress = coord.Progress

	for _, r := range j.Container.Smooth()[before:] {
		if perr := j.Adapter.AppendSmooth(j.ID, r); perr != nil {
			return perr
		}
	}
	if serr := j.persist(); serr != nil {
		return serr
	}
	gnfslog.Printf(gnfslog.INFO, "job %s: %d smooth relations (target %d)", j.ID, j.Container.SmoothCount(), j.Progress.TargetSmoothCount)
	return err
}

// SolveMatrix runs the matrix stage against the job's current smooth
// relations, appending every accepted null-space solution to
// freeRelations and persisting it (spec section 6, "solveMatrix(token):
// runs the matrix stage, appending to freeRelations"). It stops at the
// first accepted solution in a sampling round, or at cancellation, or
// once the candidate pool is too small to sample from.
func (j *Job) SolveMatrix(tok *cancel.Token) error {
	if j.encoder == nil {
		j.encoder = matrix.NewEncoder(j.Collections.Rational, j.Collections.Algebraic, j.Collections.Quadratic)
	}
	if j.entropy == nil {
		j.entropy = matrix.NewEntropySource(uint64(j.N.Int64()))
	}

	found := false
	err := matrix.RunDriver(j.Container.Smooth(), j.encoder, j.Progress.TargetSmoothCount, j.entropy, tok, func(rels []*relation.Relation) bool {
		j.Container.AppendFree(rels)
		idx := len(j.Container.Free())
		if perr := j.Adapter.SaveFreeSolution(j.ID, idx, rels); perr != nil {
			gnfslog.Printf(gnfslog.ERROR, "job %s: failed to persist free solution %d: %v", j.ID, idx, perr)
		}
		found = true
		return true
	})
	if err != nil {
		return err
	}
	if found {
		gnfslog.Printf(gnfslog.INFO, "job %s: accepted free-relation solution %d", j.ID, len(j.Container.Free()))
	}
	return j.persist()
}

// SetFactorization records a verified factorization iff p*q = N (spec
// section 6, "setFactorization(p, q)").
func (j *Job) SetFactorization(p, q *bigint.Int) error {
	if !p.Mul(q).Equals(j.N) {
		return gnfserr.New(gnfserr.ErrInvalidInput, "p*q = %v != N = %v", p.Mul(q), j.N)
	}
	j.Factorization = &persistence.Factorization{P: p, Q: q}
	gnfslog.Printf(gnfslog.INFO, "job %s: factorization recorded: %v * %v", j.ID, p, q)
	return j.persist()
}

func (j *Job) persist() error {
	return j.Adapter.SaveAll(&persistence.JobState{
		JobID: j.ID, N: j.N, M: j.M, Degree: j.Degree,
		Bounds: j.Bounds, Collections: j.Collections, Progress: j.Progress,
		FreeCount:     len(j.Container.Free()),
		Factorization: j.Factorization,
	})
}
