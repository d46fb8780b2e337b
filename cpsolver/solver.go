package cpsolver

import "github.com/katalvlaran/localsearch/assignment"

// SubDecisionBuilder is the sub-solve collaborator a nested solve may run
// once a delta has been applied to a restored reference — the stand-in
// for the original Solver's ability to Compose a local-search decision
// with an arbitrary nested decision builder before SolveAndCommit. Next
// refines result in place and reports whether a feasible refinement was
// found; a false report fails the whole nested solve.
type SubDecisionBuilder interface {
	Next(result *assignment.Assignment) bool
}

// NestedSolver is the minimal CP-solver collaborator FindOneNeighbor
// needs: given the current reference assignment and a filter-accepted
// delta, restore the reference, apply the delta atomically, optionally
// let sub refine the result, and report whether the nested solve
// committed. A true result means result now holds the new reference
// assignment the outer search should continue from.
type NestedSolver interface {
	Solve(reference, delta *assignment.Assignment, sub SubDecisionBuilder, result *assignment.Assignment) (bool, error)
}

// DefaultNestedSolver is the reference NestedSolver: it applies delta
// directly with no constraint propagation of its own, so it only ever
// fails when sub rejects the result. Real deployments replace this with
// an adapter over an actual CP solver's MakeRestoreAssignment /
// MakeStoreAssignment / SolveAndCommit nested API (spec.md §6); nothing
// else in this module depends on which one is wired in.
type DefaultNestedSolver struct{}

// NewDefaultNestedSolver builds a DefaultNestedSolver.
func NewDefaultNestedSolver() *DefaultNestedSolver { return &DefaultNestedSolver{} }

// Solve restores reference into result, applies delta onto it, and, if
// sub is non-nil, gives it a chance to refine result further. Returns
// ErrNilReference/ErrNilDelta on missing arguments; otherwise always
// succeeds unless sub rejects the refined result.
func (s *DefaultNestedSolver) Solve(reference, delta *assignment.Assignment, sub SubDecisionBuilder, result *assignment.Assignment) (bool, error) {
	if reference == nil {
		return false, ErrNilReference
	}
	if delta == nil {
		return false, ErrNilDelta
	}
	result.Copy(reference)
	assignment.Apply(result, delta)
	if sub != nil {
		return sub.Next(result), nil
	}
	return true, nil
}
