package search

import "github.com/katalvlaran/localsearch/assignment"

// Filter is the local-acceptance collaborator FindOneNeighbor consults
// before ever reaching the nested solve: filter.VariableDomainFilter and
// filter.ObjectiveFilter (and its Binary/Ternary variants) both satisfy
// it, as does any custom filter that tracks its own incremental state.
type Filter interface {
	// Synchronize resets any cached state against a, the new reference
	// assignment.
	Synchronize(a *assignment.Assignment)
	// Accept reports whether delta (or, when usable, the smaller
	// deltadelta) is locally acceptable.
	Accept(delta, deltadelta *assignment.Assignment) bool
	// IsIncremental reports whether this filter carries state across
	// Accept calls and so must be called every iteration — even once an
	// earlier filter in the stack has already rejected the candidate —
	// to keep that state coherent with the next Synchronize.
	IsIncremental() bool
}

// GlobalFilter is the parent search's own acceptance hook — spec.md
// §4.7's "call the parent search's AcceptDelta (global filters)" step.
// It is consulted after every local Filter has accepted a candidate.
type GlobalFilter interface {
	AcceptDelta(delta, deltadelta *assignment.Assignment) bool
}

// AlwaysAcceptGlobalFilter is the GlobalFilter used when the parent
// search imposes no extra acceptance criteria of its own.
type AlwaysAcceptGlobalFilter struct{}

// AcceptDelta always reports true.
func (AlwaysAcceptGlobalFilter) AcceptDelta(*assignment.Assignment, *assignment.Assignment) bool {
	return true
}

// SearchLimit is the cooperative cancellation hook spec.md §5 describes:
// checked once per FindOneNeighbor iteration, a true result stops
// exploration. Next then returns (false, nil), the same result as a local
// optimum, and LocalSearch counts it in LocalOptimumCount; the two cases
// are not told apart.
type SearchLimit interface {
	Check() bool
}

// NoLimit is the SearchLimit used when a search has no external deadline
// or call budget; Check always reports false.
type NoLimit struct{}

// Check always reports false.
func (NoLimit) Check() bool { return false }
