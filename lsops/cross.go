package lsops

import (
	"github.com/katalvlaran/localsearch/assignment"
	"github.com/katalvlaran/localsearch/pathop"
)

// Cross exchanges the starting chains of two distinct paths, up to
// BaseNode(0) and BaseNode(1) respectively.
type Cross struct {
	*pathop.Base
}

// NewCross builds a Cross operator.
func NewCross(nextVars, pathVars []assignment.Var, isEnd []bool) (*Cross, error) {
	base, err := pathop.NewBase(nextVars, pathVars, isEnd, 2, false)
	if err != nil {
		return nil, err
	}
	op := &Cross{Base: base}
	base.SetSelf(base)
	base.SetNeighbor(op)
	return op, nil
}

// MakeNeighbor swaps the prefixes [start0, node0] and [start1, node1].
func (o *Cross) MakeNeighbor() bool {
	node0 := o.BaseNode(0)
	start0 := o.StartNode(0)
	node1 := o.BaseNode(1)
	start1 := o.StartNode(1)
	if start0 == start1 {
		return false
	}
	switch {
	case !o.IsPathEnd(node0) && !o.IsPathEnd(node1):
		return o.MoveChain(start0, node0, start1) && o.MoveChain(node0, node1, start0)
	case !o.IsPathEnd(node0):
		return o.MoveChain(start0, node0, start1)
	case !o.IsPathEnd(node1):
		return o.MoveChain(start1, node1, start0)
	default:
		return false
	}
}
