package lsops

import (
	"github.com/katalvlaran/localsearch/assignment"
	"github.com/katalvlaran/localsearch/pathop"
)

// inactiveBase is the shared cursor-over-inactive-nodes machinery behind
// MakeActive and its siblings SwapActive and ExtendedSwapActive. For
// each currently inactive node in turn, it exhausts the embedded
// path-operator enumeration before moving to the next candidate.
type inactiveBase struct {
	*pathop.Base
	inactiveNode int
}

// OnNodeInitialization places the cursor on the first inactive node, or
// past the end if there are none.
func (b *inactiveBase) OnNodeInitialization() {
	n := b.NumberOfNexts()
	for i := 0; i < n; i++ {
		if b.IsInactive(i) {
			b.inactiveNode = i
			return
		}
	}
	b.inactiveNode = n
}

// GetInactiveNode returns the node currently offered as a MakeActive
// candidate.
func (b *inactiveBase) GetInactiveNode() int { return b.inactiveNode }

// MakeOneNeighbor shadows pathop.Base's default: for the current
// inactive node, drive the inherited path-operator enumeration
// (b.Base.MakeOneNeighbor, unshadowed) to exhaustion before moving on.
func (b *inactiveBase) MakeOneNeighbor() bool {
	n := b.NumberOfNexts()
	for b.inactiveNode < n {
		if !b.IsInactive(b.inactiveNode) || !b.Base.MakeOneNeighbor() {
			b.ResetPosition()
			b.inactiveNode++
			continue
		}
		return true
	}
	return false
}

// MakeActiveOperator inserts an inactive node into a path, immediately
// after the enumerated base node.
type MakeActiveOperator struct {
	inactiveBase
}

// NewMakeActiveOperator builds a MakeActiveOperator.
func NewMakeActiveOperator(nextVars, pathVars []assignment.Var, isEnd []bool) (*MakeActiveOperator, error) {
	base, err := pathop.NewBase(nextVars, pathVars, isEnd, 1, false)
	if err != nil {
		return nil, err
	}
	op := &MakeActiveOperator{inactiveBase{Base: base}}
	base.SetSelf(op)
	base.SetNeighbor(op)
	return op, nil
}

func (o *MakeActiveOperator) MakeNeighbor() bool {
	return o.MakeActive(o.GetInactiveNode(), o.BaseNode(0))
}

// MakeInactiveOperator deactivates the node right after BaseNode(0).
type MakeInactiveOperator struct {
	*pathop.Base
}

// NewMakeInactiveOperator builds a MakeInactiveOperator.
func NewMakeInactiveOperator(nextVars, pathVars []assignment.Var, isEnd []bool) (*MakeInactiveOperator, error) {
	base, err := pathop.NewBase(nextVars, pathVars, isEnd, 1, false)
	if err != nil {
		return nil, err
	}
	op := &MakeInactiveOperator{Base: base}
	base.SetSelf(base)
	base.SetNeighbor(op)
	return op, nil
}

func (o *MakeInactiveOperator) MakeNeighbor() bool {
	base := o.BaseNode(0)
	if o.IsPathEnd(base) {
		return false
	}
	return o.MakeChainInactive(base, o.Next(base))
}

// SwapActiveOperator deactivates the node right after BaseNode(0) and
// activates the current inactive candidate in its place.
type SwapActiveOperator struct {
	inactiveBase
}

// NewSwapActiveOperator builds a SwapActiveOperator.
func NewSwapActiveOperator(nextVars, pathVars []assignment.Var, isEnd []bool) (*SwapActiveOperator, error) {
	base, err := pathop.NewBase(nextVars, pathVars, isEnd, 1, false)
	if err != nil {
		return nil, err
	}
	op := &SwapActiveOperator{inactiveBase{Base: base}}
	base.SetSelf(op)
	base.SetNeighbor(op)
	return op, nil
}

func (o *SwapActiveOperator) MakeNeighbor() bool {
	base := o.BaseNode(0)
	if o.IsPathEnd(base) {
		return false
	}
	return o.MakeChainInactive(base, o.Next(base)) && o.MakeActive(o.GetInactiveNode(), base)
}

// ExtendedSwapActiveOperator is SwapActiveOperator but tries inserting
// the inactive node at every position, not just the vacated one: a
// second base node enumerates the insertion point independently.
type ExtendedSwapActiveOperator struct {
	inactiveBase
}

// NewExtendedSwapActiveOperator builds an ExtendedSwapActiveOperator.
func NewExtendedSwapActiveOperator(nextVars, pathVars []assignment.Var, isEnd []bool) (*ExtendedSwapActiveOperator, error) {
	base, err := pathop.NewBase(nextVars, pathVars, isEnd, 2, false)
	if err != nil {
		return nil, err
	}
	op := &ExtendedSwapActiveOperator{inactiveBase{Base: base}}
	base.SetSelf(op)
	base.SetNeighbor(op)
	return op, nil
}

func (o *ExtendedSwapActiveOperator) MakeNeighbor() bool {
	base0 := o.BaseNode(0)
	if o.IsPathEnd(base0) {
		return false
	}
	base1 := o.BaseNode(1)
	if o.IsPathEnd(base1) {
		return false
	}
	if o.Next(base0) == base1 {
		return false
	}
	return o.MakeChainInactive(base0, o.Next(base0)) && o.MakeActive(o.GetInactiveNode(), base1)
}
