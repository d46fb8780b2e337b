package lsops

import (
	"github.com/katalvlaran/localsearch/assignment"
	"github.com/katalvlaran/localsearch/pathop"
)

// Relocate moves the fixed-length chain starting right after BaseNode(0)
// to right after BaseNode(1). Using chain lengths 1, 2 and
// 3 together is the classic Or-opt neighborhood; see NewOrOpt.
type Relocate struct {
	*pathop.Base

	chainLength int
	singlePath  bool
}

// NewRelocate builds a Relocate operator moving chains of chainLength
// nodes. When singlePath is true, BaseNode(1) is constrained to the same
// path as BaseNode(0).
func NewRelocate(nextVars, pathVars []assignment.Var, isEnd []bool, chainLength int, singlePath bool) (*Relocate, error) {
	if chainLength <= 0 {
		return nil, ErrChainLengthNonPositive
	}
	base, err := pathop.NewBase(nextVars, pathVars, isEnd, 2, false)
	if err != nil {
		return nil, err
	}
	op := &Relocate{Base: base, chainLength: chainLength, singlePath: singlePath}
	base.SetSelf(base)
	base.SetNeighbor(op)
	return op, nil
}

// OnSamePathAsPreviousBase constrains base 1 to base 0's path only in
// single-path mode.
func (o *Relocate) OnSamePathAsPreviousBase(int) bool { return o.singlePath }

// MakeNeighbor implements the chain relocation.
func (o *Relocate) MakeNeighbor() bool {
	beforeChain := o.BaseNode(0)
	chainEnd := beforeChain
	for i := 0; i < o.chainLength; i++ {
		if o.IsPathEnd(chainEnd) {
			return false
		}
		chainEnd = o.Next(chainEnd)
	}
	destination := o.BaseNode(1)
	return o.MoveChain(beforeChain, chainEnd, destination)
}
