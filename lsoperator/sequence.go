package lsoperator

import (
	"fmt"

	"github.com/katalvlaran/localsearch/assignment"
)

// SequenceOperator is the sequence-variable analogue of VarOperator:
// forward and backward integer lists replace the scalar value, and
// backward is always cleared on revert rather than restored from old.
type SequenceOperator struct {
	vars  []*assignment.SequenceVar
	index map[*assignment.SequenceVar]int

	forward    [][]int
	oldForward [][]int
	backward   [][]int
	activated  []bool
	wasActive  []bool

	hasChanged      []bool
	hasDeltaChanged []bool
	changes         []int
	cleared         bool

	incremental bool
	self        NeighborMaker
}

// NewSequenceOperator builds a SequenceOperator tracking vars in order.
func NewSequenceOperator(vars []*assignment.SequenceVar, incremental bool) (*SequenceOperator, error) {
	if len(vars) == 0 {
		return nil, ErrNoVars
	}
	index := make(map[*assignment.SequenceVar]int, len(vars))
	for i, v := range vars {
		index[v] = i
	}
	n := len(vars)
	return &SequenceOperator{
		vars:            vars,
		index:           index,
		forward:         make([][]int, n),
		oldForward:      make([][]int, n),
		backward:        make([][]int, n),
		activated:       make([]bool, n),
		wasActive:       make([]bool, n),
		hasChanged:      make([]bool, n),
		hasDeltaChanged: make([]bool, n),
		incremental:     incremental,
	}, nil
}

func (b *SequenceOperator) SetSelf(self NeighborMaker) { b.self = self }
func (b *SequenceOperator) Size() int                  { return len(b.vars) }
func (b *SequenceOperator) Var(i int) *assignment.SequenceVar { return b.vars[i] }
func (b *SequenceOperator) IsIncremental() bool        { return b.incremental }
func (b *SequenceOperator) Forward(i int) []int        { return b.forward[i] }
func (b *SequenceOperator) OldForward(i int) []int     { return b.oldForward[i] }
func (b *SequenceOperator) Backward(i int) []int       { return b.backward[i] }
func (b *SequenceOperator) Activated(i int) bool       { return b.activated[i] }
func (b *SequenceOperator) Cleared() bool              { return b.cleared }

// Start resynchronizes forward/activated from a. Backward starts empty.
func (b *SequenceOperator) Start(a *assignment.Assignment) error {
	sc := a.SequenceContainer()
	for i, v := range b.vars {
		elem, ok := sc.Element(v)
		if !ok {
			return fmt.Errorf("lsoperator: Start sequence var %q: %w", v.Name(), ErrVarNotInAssignment)
		}
		b.forward[i] = append([]int(nil), elem.Forward...)
		b.oldForward[i] = append([]int(nil), elem.Forward...)
		b.backward[i] = nil
		b.activated[i] = elem.Activated
		b.wasActive[i] = elem.Activated
	}
	b.changes = b.changes[:0]
	for i := range b.hasChanged {
		b.hasChanged[i] = false
		b.hasDeltaChanged[i] = false
	}
	b.cleared = true
	if hook, ok := b.self.(StartHook); ok {
		hook.OnStart()
	}
	return nil
}

func (b *SequenceOperator) markChanged(i int) {
	if !b.hasChanged[i] {
		b.hasChanged[i] = true
		b.changes = append(b.changes, i)
	}
	b.hasDeltaChanged[i] = true
}

// SetForward records index i as changed and sets its forward sequence.
func (b *SequenceOperator) SetForward(i int, seq []int) {
	b.markChanged(i)
	b.forward[i] = seq
}

// SetBackward records index i as changed and sets its backward sequence
// (the partial reversed sequence a path operator is still constructing).
func (b *SequenceOperator) SetBackward(i int, seq []int) {
	b.markChanged(i)
	b.backward[i] = seq
}

func (b *SequenceOperator) Activate(i int) {
	b.markChanged(i)
	b.activated[i] = true
}

func (b *SequenceOperator) Deactivate(i int) {
	b.markChanged(i)
	b.activated[i] = false
}

// RevertChanges mirrors VarOperator.RevertChanges; backward is always
// dropped regardless of incremental mode.
func (b *SequenceOperator) RevertChanges(incremental bool) {
	for _, i := range b.changes {
		b.hasDeltaChanged[i] = false
		b.backward[i] = nil
	}
	if incremental && b.incremental {
		b.cleared = false
		return
	}
	for _, i := range b.changes {
		b.forward[i] = append([]int(nil), b.oldForward[i]...)
		b.activated[i] = b.wasActive[i]
		b.hasChanged[i] = false
	}
	b.changes = b.changes[:0]
	b.cleared = true
}

// ApplyChanges emits both forward and backward per changed index.
func (b *SequenceOperator) ApplyChanges(delta, deltadelta *assignment.Assignment) {
	reportDeltaDelta := b.incremental && !b.cleared
	for _, i := range b.changes {
		v := b.vars[i]
		if !b.activated[i] {
			delta.FastAddSequence(v).Deactivate()
			if reportDeltaDelta && b.hasDeltaChanged[i] {
				deltadelta.FastAddSequence(v).Deactivate()
			}
			continue
		}
		delta.FastAddSequence(v).SetForwardSequence(b.forward[i]).SetBackwardSequence(b.backward[i])
		if reportDeltaDelta && b.hasDeltaChanged[i] {
			deltadelta.FastAddSequence(v).SetForwardSequence(b.forward[i]).SetBackwardSequence(b.backward[i])
		}
	}
}

// MakeNextNeighbor mirrors VarOperator.MakeNextNeighbor.
func (b *SequenceOperator) MakeNextNeighbor(delta, deltadelta *assignment.Assignment) bool {
	b.RevertChanges(true)
	if !b.self.MakeOneNeighbor() {
		return false
	}
	b.ApplyChanges(delta, deltadelta)
	return true
}

// IndexOf returns the operator-local index for v, or -1 if untracked.
func (b *SequenceOperator) IndexOf(v *assignment.SequenceVar) int {
	i, ok := b.index[v]
	if !ok {
		return -1
	}
	return i
}
