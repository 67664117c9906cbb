// Package graphplan defines tunable options and error definitions for
// planning-graph construction and heuristic queries.
package graphplan

import (
	"errors"
	"fmt"
)

// Sentinel errors for graph construction and heuristic queries.
var (
	// ErrNilProblem is returned if a nil problem pointer is passed.
	ErrNilProblem = errors.New("graphplan: problem is nil")

	// ErrStateLength is returned when the initial state vector does not
	// align with the problem's state map.
	ErrStateLength = errors.New("graphplan: state vector length does not match fluent count")

	// ErrGoalUnreachable is returned by level-cost queries for a literal the
	// fully leveled graph never produces.
	ErrGoalUnreachable = errors.New("graphplan: goal literal unreachable in leveled graph")

	// ErrNoSetLevel is returned by SetLevel when the graph levels out before
	// any layer holds all goal literals pairwise mutex-free.
	ErrNoSetLevel = errors.New("graphplan: no mutex-free goal level exists")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("graphplan: invalid option supplied")
)

// Option configures graph construction via functional arguments. An invalid
// Option is recorded internally and surfaced as ErrOptionViolation by New.
type Option func(*Options)

// Options holds the configuration of a planning graph.
type Options struct {
	// Serialize marks every pair of distinct non-persistence actions in a
	// layer as mutex, modelling formalisms where only one real action may
	// execute per level. Leave it on when the graph feeds heuristics;
	// disable it for regression-search uses.
	Serialize bool

	// IgnoreMutexes skips the dynamic mutex tests (competing needs and
	// inconsistent support — the ones that consult parent-layer mutexes).
	// The static tests (serialization, inconsistent effects, interference,
	// negation) are always applied.
	IgnoreMutexes bool

	// ParallelThreshold is the pair count at or above which a layer's mutex
	// table is filled by parallel workers. 0 disables parallelism.
	ParallelThreshold int

	// internal error recorded during option parsing
	err error
}

// DefaultParallelThreshold is the pair count at which mutex computation
// fans out across workers unless overridden.
const DefaultParallelThreshold = 1 << 12

// DefaultOptions returns Options with sane defaults:
//   - Serialize on (heuristic use)
//   - mutex computation in full
//   - parallel fill beyond DefaultParallelThreshold pairs.
func DefaultOptions() Options {
	return Options{
		Serialize:         true,
		IgnoreMutexes:     false,
		ParallelThreshold: DefaultParallelThreshold,
		err:               nil,
	}
}

// WithSerialize toggles the serialization mutex rule.
func WithSerialize(on bool) Option {
	return func(o *Options) { o.Serialize = on }
}

// WithIgnoreMutexes toggles skipping of the dynamic mutex tests.
func WithIgnoreMutexes(on bool) Option {
	return func(o *Options) { o.IgnoreMutexes = on }
}

// WithParallelThreshold sets the pair count at which mutex tables are
// filled in parallel.
//
//	n > 0: fan out at n pairs
//	n == 0: never fan out
//	n < 0: invalid option → ErrOptionViolation
func WithParallelThreshold(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: ParallelThreshold cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.ParallelThreshold = n
	}
}
