package search

import "github.com/katalvlaran/localsearch/assignment"

// defaultBalancedTreeDepth is config §6's balanced_tree_depth. LocalSearch
// counts accepted neighbors in a depth counter that wraps to 0 at this
// value; the counter has no other effect, and no decision-tree balancing
// is performed.
const defaultBalancedTreeDepth = 32

// LocalSearch is the decision builder of spec.md §4.7: it first defers to
// firstSolution to produce a feasible starting assignment, then drives a
// FindOneNeighbor loop, reporting every accepted neighbor as a successful
// decision and surfacing a local optimum (Next returning false, nil)
// once FindOneNeighbor can no longer accept one.
type LocalSearch struct {
	firstSolution     DecisionBuilder
	finder            *FindOneNeighbor
	balancedTreeDepth int

	foundFirst bool
	depth      int
	inUse      bool

	// LocalOptimumCount counts how many times Next has surfaced a local
	// optimum since construction; a surrounding meta-heuristic (e.g. a
	// restart or perturbation strategy) can read this to decide whether
	// to give up.
	LocalOptimumCount int
}

// LocalSearchOption configures a LocalSearch at construction.
type LocalSearchOption func(*LocalSearch)

// WithBalancedTreeDepth overrides the default balanced_tree_depth (32).
func WithBalancedTreeDepth(depth int) LocalSearchOption {
	return func(l *LocalSearch) { l.balancedTreeDepth = depth }
}

// NewLocalSearch builds a LocalSearch over firstSolution and a
// FindOneNeighbor constructed from params, starting the exploration from
// start once the first solution has been produced.
func NewLocalSearch(firstSolution DecisionBuilder, params PhaseParameters, start *assignment.Assignment, opts ...LocalSearchOption) (*LocalSearch, error) {
	finder, err := NewFindOneNeighbor(params.Operator, params.Pool, params.NestedSolver, start, params.options()...)
	if err != nil {
		return nil, err
	}
	l := &LocalSearch{
		firstSolution:     firstSolution,
		finder:            finder,
		balancedTreeDepth: defaultBalancedTreeDepth,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// Next produces the next decision: while no first solution has been
// found yet, it defers entirely to firstSolution; afterward, every call
// drives one FindOneNeighbor.Next, copying the committed candidate into
// a on success. A (false, nil) result is the local-optimum signal; the
// caller (a surrounding meta-heuristic, or the enclosing solver's own
// backtracking) decides what to do next — this decision builder does
// not retry on its own.
func (l *LocalSearch) Next(a *assignment.Assignment) (bool, error) {
	if l.inUse {
		panic(ErrReentrantNext)
	}
	l.inUse = true
	defer func() { l.inUse = false }()

	if !l.foundFirst {
		ok, err := l.firstSolution.Next(a)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
		l.foundFirst = true
		l.finder.Reset(a)
		return true, nil
	}

	ok, err := l.finder.Next()
	if err != nil {
		return false, err
	}
	if !ok {
		l.LocalOptimumCount++
		return false, nil
	}
	a.Copy(l.finder.Reference())
	l.depth++
	if l.depth >= l.balancedTreeDepth {
		l.depth = 0
	}
	return true, nil
}
