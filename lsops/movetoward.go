package lsops

import (
	"github.com/katalvlaran/localsearch/assignment"
	"github.com/katalvlaran/localsearch/lsoperator"
)

// MoveTowardTarget cyclically scans variables and, for each whose
// OldValue differs from its target, emits a single-variable reassignment
// to that target.
//
// The cursor is deliberately not reset across Start. Restarting at
// index 0 after every accepted move would, for targets only reachable
// on every other index, reexamine O(n) already-checked variables per
// move — O(n^2) total instead of O(n) over the whole search. Resuming
// where the scan left off keeps it linear.
type MoveTowardTarget struct {
	*lsoperator.VarOperator

	target []int64

	cursor       int
	checkedSince int
}

// NewMoveTowardTarget builds a MoveTowardTarget operator. target must
// have the same length as vars.
func NewMoveTowardTarget(vars []assignment.Var, target []int64) (*MoveTowardTarget, error) {
	if len(target) != len(vars) {
		return nil, ErrTargetLengthMismatch
	}
	base, err := lsoperator.NewVarOperator(vars, false)
	if err != nil {
		return nil, err
	}
	op := &MoveTowardTarget{
		VarOperator: base,
		target:      append([]int64(nil), target...),
		cursor:      base.Size() - 1,
	}
	base.SetSelf(op)
	return op, nil
}

// OnStart resets the per-exploration scan counter but not the cursor
// itself; see the type doc for why.
func (o *MoveTowardTarget) OnStart() { o.checkedSince = 0 }

// MakeOneNeighbor advances the cursor until it finds a variable whose
// reference value differs from its target, or every variable has been
// checked this exploration.
func (o *MoveTowardTarget) MakeOneNeighbor() bool {
	size := o.Size()
	for o.checkedSince < size {
		o.checkedSince++
		o.cursor = (o.cursor + 1) % size
		targetValue := o.target[o.cursor]
		if o.OldValue(o.cursor) != targetValue {
			o.SetValue(o.cursor, targetValue)
			return true
		}
	}
	return false
}
