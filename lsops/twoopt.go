package lsops

import (
	"github.com/katalvlaran/localsearch/assignment"
	"github.com/katalvlaran/localsearch/pathop"
)

// TwoOpt reverses the sub-chain between BaseNode(0) and BaseNode(1) on
// the first call for a new outer cursor, then slides the reversed
// boundary one step at a time for as long as the outer cursor stays put.
// It is incremental: after a slide, deltadelta carries only the next[]
// entries that the slide changed.
type TwoOpt struct {
	*pathop.Base

	lastBase int
	last     int
}

// NewTwoOpt builds a 2-opt operator over a single path's next[]
// variables (and, when pathVars is non-nil, its path[] variables).
func NewTwoOpt(nextVars, pathVars []assignment.Var, isEnd []bool) (*TwoOpt, error) {
	base, err := pathop.NewBase(nextVars, pathVars, isEnd, 2, true)
	if err != nil {
		return nil, err
	}
	op := &TwoOpt{Base: base, last: -1, lastBase: -1}
	base.SetSelf(base)
	base.SetNeighbor(op)
	return op, nil
}

// OnSamePathAsPreviousBase always requires base 1 to stay on base 0's path.
func (o *TwoOpt) OnSamePathAsPreviousBase(int) bool { return true }

// OnNodeInitialization resets the sliding cursor on every Start.
func (o *TwoOpt) OnNodeInitialization() { o.last = -1 }

// MakeNeighbor implements the reverse-then-slide behavior.
func (o *TwoOpt) MakeNeighbor() bool {
	if o.lastBase != o.BaseNode(0) || o.last == -1 {
		o.RevertChanges(false)
		if o.IsPathEnd(o.BaseNode(0)) {
			o.last = -1
			return false
		}
		o.lastBase = o.BaseNode(0)
		o.last = o.Next(o.BaseNode(0))
		var chainLast int
		if o.ReverseChain(o.BaseNode(0), o.BaseNode(1), &chainLast) {
			return true
		}
		o.last = -1
		return false
	}
	toMove := o.Next(o.last)
	return o.MoveChain(o.last, toMove, o.BaseNode(0))
}
