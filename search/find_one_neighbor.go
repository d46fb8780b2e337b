package search

import (
	"github.com/katalvlaran/localsearch/assignment"
	"github.com/katalvlaran/localsearch/combinator"
	"github.com/katalvlaran/localsearch/cpsolver"
	"github.com/katalvlaran/localsearch/solutionpool"
)

// defaultSyncFrequency is config §6's sync_frequency default: the number
// of MakeNextNeighbor iterations between pool.SyncNeeded checks.
const defaultSyncFrequency = 16

// Option configures a FindOneNeighbor at construction, in application
// order, following the teacher pack's functional-option convention.
type Option func(*config)

type config struct {
	syncFrequency int
	filters       []Filter
	global        GlobalFilter
	limit         SearchLimit
	sub           cpsolver.SubDecisionBuilder
}

// WithSyncFrequency overrides the default sync_frequency (16). Returns
// ErrSyncFrequencyNonPositive from NewFindOneNeighbor if n <= 0.
func WithSyncFrequency(n int) Option {
	return func(c *config) { c.syncFrequency = n }
}

// WithFilters installs the local acceptance filters, consulted in order
// every iteration.
func WithFilters(filters ...Filter) Option {
	return func(c *config) { c.filters = append(c.filters, filters...) }
}

// WithGlobalFilter installs the parent search's AcceptDelta hook,
// consulted after every local filter accepts. Defaults to
// AlwaysAcceptGlobalFilter.
func WithGlobalFilter(g GlobalFilter) Option {
	return func(c *config) { c.global = g }
}

// WithSearchLimit installs the cooperative cancellation hook, checked
// once per iteration. Defaults to NoLimit.
func WithSearchLimit(l SearchLimit) Option {
	return func(c *config) { c.limit = l }
}

// WithSubDecisionBuilder installs the nested solve's sub-decision
// builder, run after a delta has been applied to the restored reference.
// Defaults to nil (commit the delta as-is).
func WithSubDecisionBuilder(sub cpsolver.SubDecisionBuilder) Option {
	return func(c *config) { c.sub = sub }
}

// nestedSolveState mirrors the original's NestedSolveDecision 3-state
// machine: a nested solve is DECISION_PENDING until it either produces a
// committed assignment (DECISION_FOUND) or is rejected/errors
// (DECISION_FAILED).
type nestedSolveState int

const (
	decisionPending nestedSolveState = iota
	decisionFailed
	decisionFound
)

// FindOneNeighbor is the per-exploration loop of spec.md §4.7: it owns
// the reference assignment, drives one Operator through successive
// candidates, gates each candidate through local Filters and a
// GlobalFilter, and commits accepted candidates through a
// cpsolver.NestedSolver.
type FindOneNeighbor struct {
	operator combinator.Operator
	pool     solutionpool.Pool
	nested   cpsolver.NestedSolver
	cfg      config

	reference  *assignment.Assignment
	delta      *assignment.Assignment
	deltadelta *assignment.Assignment
	result     *assignment.Assignment

	started       bool
	neighborFound bool
	iteration     int64
	inUse         bool
}

// NewFindOneNeighbor builds a FindOneNeighbor over operator, starting
// its exploration from start (see Reset to restart from elsewhere
// later), and committing accepted deltas through nested. Returns
// ErrNilOperator, ErrNilPool, ErrNilNestedSolver, or
// ErrSyncFrequencyNonPositive for structural misuse.
func NewFindOneNeighbor(operator combinator.Operator, pool solutionpool.Pool, nested cpsolver.NestedSolver, start *assignment.Assignment, opts ...Option) (*FindOneNeighbor, error) {
	if operator == nil {
		return nil, ErrNilOperator
	}
	if pool == nil {
		return nil, ErrNilPool
	}
	if nested == nil {
		return nil, ErrNilNestedSolver
	}
	cfg := config{
		syncFrequency: defaultSyncFrequency,
		global:        AlwaysAcceptGlobalFilter{},
		limit:         NoLimit{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.syncFrequency <= 0 {
		return nil, ErrSyncFrequencyNonPositive
	}
	f := &FindOneNeighbor{
		operator:   operator,
		pool:       pool,
		nested:     nested,
		cfg:        cfg,
		reference:  assignment.NewAssignment(),
		delta:      assignment.NewAssignment(),
		deltadelta: assignment.NewAssignment(),
		result:     assignment.NewAssignment(),
	}
	f.reference.Copy(start)
	return f, nil
}

// Reset drops all exploration state, forcing the next Next call to treat
// start as a fresh starting assignment rather than resuming the previous
// exploration.
func (f *FindOneNeighbor) Reset(start *assignment.Assignment) {
	f.reference.Copy(start)
	f.started = false
	f.neighborFound = false
	f.iteration = 0
}

// Reference returns the current reference assignment: the starting
// point of the exploration still in progress, or the most recently
// committed candidate.
func (f *FindOneNeighbor) Reference() *assignment.Assignment { return f.reference }

// Next drives the exploration loop until it either commits an accepted
// neighbor (returning true, with Reference() updated) or the operator is
// fully exhausted with nothing accepted since the last restart
// (returning false — the decision builder's local-optimum branch).
// Returns an error only when the operator's Start fails; an error from
// the nested solve counts as an ordinary rejection, and a reentrant call
// panics with ErrReentrantNext.
func (f *FindOneNeighbor) Next() (bool, error) {
	if f.inUse {
		panic(ErrReentrantNext)
	}
	f.inUse = true
	defer func() { f.inUse = false }()

	if !f.started {
		// first entry since the last Reset: seed the pool from whatever
		// starting assignment Reset installed.
		f.pool.Initialize(f.reference)
		f.synchronizeFilters()
		if err := f.operator.Start(f.reference); err != nil {
			return false, err
		}
		f.started = true
	}

	for {
		if f.cfg.limit.Check() {
			return false, nil
		}
		f.iteration++
		if f.iteration%int64(f.cfg.syncFrequency) == 0 && f.pool.SyncNeeded(f.reference) {
			f.pool.GetNextSolution(f.reference)
			f.synchronizeFilters()
			if err := f.operator.Start(f.reference); err != nil {
				return false, err
			}
		}

		f.delta.Clear()
		f.deltadelta.Clear()
		if !f.operator.MakeNextNeighbor(f.delta, f.deltadelta) {
			if f.neighborFound {
				f.pool.RegisterNewSolution(f.reference)
				f.pool.GetNextSolution(f.reference)
				f.synchronizeFilters()
				if err := f.operator.Start(f.reference); err != nil {
					return false, err
				}
				f.neighborFound = false
				continue
			}
			f.started = false
			return false, nil
		}

		if !f.acceptLocally() {
			continue
		}
		if !f.cfg.global.AcceptDelta(f.delta, f.deltadelta) {
			continue
		}

		switch f.commit() {
		case decisionFound:
			f.neighborFound = true
			return true, nil
		case decisionFailed:
			continue
		}
	}
}

// acceptLocally runs every configured Filter. Incremental filters are
// always called, even after an earlier filter has already rejected, so
// their caches stay coherent with the reference they will next
// Synchronize against; non-incremental filters are short-circuited once
// any filter has rejected.
func (f *FindOneNeighbor) acceptLocally() bool {
	accepted := true
	for _, filt := range f.cfg.filters {
		if !accepted && !filt.IsIncremental() {
			continue
		}
		if !filt.Accept(f.delta, f.deltadelta) {
			accepted = false
		}
	}
	return accepted
}

func (f *FindOneNeighbor) commit() nestedSolveState {
	ok, err := f.nested.Solve(f.reference, f.delta, f.cfg.sub, f.result)
	if err != nil || !ok {
		return decisionFailed
	}
	f.reference.Copy(f.result)
	return decisionFound
}

func (f *FindOneNeighbor) synchronizeFilters() {
	for _, filt := range f.cfg.filters {
		filt.Synchronize(f.reference)
	}
}
