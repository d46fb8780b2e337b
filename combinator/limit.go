package combinator

import "github.com/katalvlaran/localsearch/assignment"

// NeighborhoodLimit wraps an operator with a hard cap on the number of
// MakeNextNeighbor calls per exploration, after which it reports
// exhaustion regardless of what the wrapped operator would have done.
// Pairs naturally with operators that have no termination guarantee of
// their own, such as lsops.RandomLNS.
type NeighborhoodLimit struct {
	op    Operator
	limit int64
	calls int64
}

// NewNeighborhoodLimit wraps op, capping it at limit calls per
// exploration.
func NewNeighborhoodLimit(op Operator, limit int64) (*NeighborhoodLimit, error) {
	if limit <= 0 {
		return nil, ErrLimitNonPositive
	}
	return &NeighborhoodLimit{op: op, limit: limit}, nil
}

// Start resets the call counter and starts the wrapped operator.
func (n *NeighborhoodLimit) Start(a *assignment.Assignment) error {
	n.calls = 0
	return n.op.Start(a)
}

// MakeNextNeighbor delegates to the wrapped operator until limit calls
// have been made this exploration, then always reports exhaustion.
func (n *NeighborhoodLimit) MakeNextNeighbor(delta, deltadelta *assignment.Assignment) bool {
	n.calls++
	if n.calls > n.limit {
		return false
	}
	return n.op.MakeNextNeighbor(delta, deltadelta)
}
