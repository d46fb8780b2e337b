package lsops

import (
	"github.com/katalvlaran/localsearch/assignment"
	"github.com/katalvlaran/localsearch/pathop"
)

// Exchange swaps the successors of BaseNode(0) and BaseNode(1) via two
// MoveChain calls, special-casing adjacency.
type Exchange struct {
	*pathop.Base
}

// NewExchange builds an Exchange operator.
func NewExchange(nextVars, pathVars []assignment.Var, isEnd []bool) (*Exchange, error) {
	base, err := pathop.NewBase(nextVars, pathVars, isEnd, 2, false)
	if err != nil {
		return nil, err
	}
	op := &Exchange{Base: base}
	base.SetSelf(base)
	base.SetNeighbor(op)
	return op, nil
}

// MakeNeighbor swaps node0 = Next(BaseNode(0)) and node1 = Next(BaseNode(1)).
// The switch is exhaustive over {adjacent forward, adjacent backward,
// disjoint}, so there is no trailing default-false case to write.
func (o *Exchange) MakeNeighbor() bool {
	prevNode0 := o.BaseNode(0)
	if o.IsPathEnd(prevNode0) {
		return false
	}
	node0 := o.Next(prevNode0)
	prevNode1 := o.BaseNode(1)
	if o.IsPathEnd(prevNode1) {
		return false
	}
	node1 := o.Next(prevNode1)

	switch {
	case node0 == prevNode1:
		return o.MoveChain(prevNode1, node1, prevNode0)
	case node1 == prevNode0:
		return o.MoveChain(prevNode0, node0, prevNode1)
	default:
		return o.MoveChain(prevNode0, node0, prevNode1) &&
			o.MoveChain(node0, o.Next(node0), prevNode0)
	}
}
