package search

import (
	"github.com/katalvlaran/localsearch/assignment"
	"github.com/katalvlaran/localsearch/combinator"
	"github.com/katalvlaran/localsearch/cpsolver"
	"github.com/katalvlaran/localsearch/solutionpool"
)

// DecisionBuilder is the first-solution collaborator LocalSearch composes
// with FindOneNeighbor: Next produces (or refines) a into a feasible
// assignment and reports whether it succeeded. A first-solution builder
// that has already produced its solution and has nothing further to
// contribute reports false with a nil error.
type DecisionBuilder interface {
	Next(a *assignment.Assignment) (bool, error)
}

// PhaseParameters bundles the collaborators a LocalSearch decision
// builder needs, mirroring the original's LocalSearchPhaseParameters
// value object (see SPEC_FULL.md "SUPPLEMENTED FEATURES"): a pool to
// seed and register solutions with, the operator to explore
// neighborhoods with, an optional sub-decision-builder run inside every
// nested solve, a SearchLimit, and the local Filters to gate candidates
// with.
type PhaseParameters struct {
	Pool               solutionpool.Pool
	Operator           combinator.Operator
	NestedSolver       cpsolver.NestedSolver
	SubDecisionBuilder cpsolver.SubDecisionBuilder
	Limit              SearchLimit
	Filters            []Filter
	GlobalFilter       GlobalFilter
	SyncFrequency      int
}

func (p PhaseParameters) options() []Option {
	opts := []Option{WithFilters(p.Filters...)}
	if p.SubDecisionBuilder != nil {
		opts = append(opts, WithSubDecisionBuilder(p.SubDecisionBuilder))
	}
	if p.Limit != nil {
		opts = append(opts, WithSearchLimit(p.Limit))
	}
	if p.GlobalFilter != nil {
		opts = append(opts, WithGlobalFilter(p.GlobalFilter))
	}
	if p.SyncFrequency > 0 {
		opts = append(opts, WithSyncFrequency(p.SyncFrequency))
	}
	return opts
}
