package lsoperator

import (
	"fmt"

	"github.com/katalvlaran/localsearch/assignment"
)

// NeighborMaker is the operator-specific half of the contract: mutate the
// base's state via SetValue/Activate/Deactivate and report whether a
// candidate was produced. Concrete operators implement this and register
// themselves with SetSelf so VarOperator.MakeNextNeighbor can call back
// into them — the same "self" indirection pathop.Base uses to let path
// operators override MakeNeighbor while reusing the base's enumeration.
type NeighborMaker interface {
	MakeOneNeighbor() bool
}

// StartHook is implemented by operators that need to react to Start
// beyond the base's value/activation resynchronization (e.g. path
// operators rebuilding next[] and path-start lists).
type StartHook interface {
	OnStart()
}

// VarOperator is the scalar variable-state operator base. It owns
// value/old_value/activated/was_activated arrays indexed in parallel
// with Vars, plus the changes list and the cleared/incremental
// bookkeeping ApplyChanges and RevertChanges need.
type VarOperator struct {
	vars  []assignment.Var
	index map[assignment.Var]int

	value        []int64
	oldValue     []int64
	activated    []bool
	wasActivated []bool

	hasChanged      []bool
	hasDeltaChanged []bool
	changes         []int
	cleared         bool

	incremental bool
	self        NeighborMaker
}

// NewVarOperator builds a VarOperator tracking vars in order. incremental
// declares whether the operator reports deltadeltas: when true, a
// RevertChanges(true) call leaves state untouched instead of restoring
// it, so ApplyChanges can report only what changed since the last
// emission.
func NewVarOperator(vars []assignment.Var, incremental bool) (*VarOperator, error) {
	if len(vars) == 0 {
		return nil, ErrNoVars
	}
	index := make(map[assignment.Var]int, len(vars))
	for i, v := range vars {
		index[v] = i
	}
	n := len(vars)
	return &VarOperator{
		vars:         vars,
		index:        index,
		value:        make([]int64, n),
		oldValue:     make([]int64, n),
		activated:    make([]bool, n),
		wasActivated: make([]bool, n),

		hasChanged:      make([]bool, n),
		hasDeltaChanged: make([]bool, n),
		incremental:     incremental,
	}, nil
}

// SetSelf registers the NeighborMaker used by MakeNextNeighbor. Concrete
// operators call this once, right after constructing their embedded
// VarOperator, passing themselves.
func (b *VarOperator) SetSelf(self NeighborMaker) { b.self = self }

// Size returns the number of tracked variables.
func (b *VarOperator) Size() int { return len(b.vars) }

// Var returns the i'th tracked variable.
func (b *VarOperator) Var(i int) assignment.Var { return b.vars[i] }

// IsIncremental reports whether this operator reports deltadeltas.
func (b *VarOperator) IsIncremental() bool { return b.incremental }

// Value returns the current value at index i.
func (b *VarOperator) Value(i int) int64 { return b.value[i] }

// OldValue returns the reference (start-of-exploration) value at index i.
func (b *VarOperator) OldValue(i int) int64 { return b.oldValue[i] }

// Activated reports whether index i is currently active.
func (b *VarOperator) Activated(i int) bool { return b.activated[i] }

// WasActivated reports whether index i was active at the reference
// assignment.
func (b *VarOperator) WasActivated(i int) bool { return b.wasActivated[i] }

// Cleared reports whether the last RevertChanges was a full (non
// incremental) revert.
func (b *VarOperator) Cleared() bool { return b.cleared }

// Start resynchronizes value/old_value/activated/was_activated from a,
// then calls OnStart if self implements StartHook.
func (b *VarOperator) Start(a *assignment.Assignment) error {
	for i, v := range b.vars {
		elem, ok := a.Element(v)
		if !ok {
			return fmt.Errorf("lsoperator: Start var %q: %w", v.Name(), ErrVarNotInAssignment)
		}
		b.value[i] = elem.Value
		b.oldValue[i] = elem.Value
		b.activated[i] = elem.Activated
		b.wasActivated[i] = elem.Activated
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

// SetValue records index i as changed (if not already) and sets its
// current value.
func (b *VarOperator) SetValue(i int, v int64) {
	b.markChanged(i)
	b.value[i] = v
}

// Activate records index i as changed and marks it active.
func (b *VarOperator) Activate(i int) {
	b.markChanged(i)
	b.activated[i] = true
}

// Deactivate records index i as changed and marks it inactive.
func (b *VarOperator) Deactivate(i int) {
	b.markChanged(i)
	b.activated[i] = false
}

func (b *VarOperator) markChanged(i int) {
	if !b.hasChanged[i] {
		b.hasChanged[i] = true
		b.changes = append(b.changes, i)
	}
	b.hasDeltaChanged[i] = true
}

// RevertChanges always clears has_delta_changed. If incremental is
// requested and the operator itself declares IsIncremental, it leaves
// value/activated untouched (the caller builds a deltadelta from
// whatever changes accumulate next); otherwise it restores
// value/activated from old_value/was_activated and clears the change
// list.
func (b *VarOperator) RevertChanges(incremental bool) {
	for _, i := range b.changes {
		b.hasDeltaChanged[i] = false
	}
	if incremental && b.incremental {
		b.cleared = false
		return
	}
	for _, i := range b.changes {
		b.value[i] = b.oldValue[i]
		b.activated[i] = b.wasActivated[i]
		b.hasChanged[i] = false
	}
	b.changes = b.changes[:0]
	b.cleared = true
}

// ApplyChanges appends one element per changed index to delta, and —
// when incremental and the prior revert was not a full revert — the
// same element to deltadelta.
func (b *VarOperator) ApplyChanges(delta, deltadelta *assignment.Assignment) {
	reportDeltaDelta := b.incremental && !b.cleared
	for _, i := range b.changes {
		v := b.vars[i]
		if !b.activated[i] {
			delta.FastAdd(v).Deactivate()
			if reportDeltaDelta && b.hasDeltaChanged[i] {
				deltadelta.FastAdd(v).Deactivate()
			}
			continue
		}
		delta.FastAdd(v).SetValue(b.value[i])
		if reportDeltaDelta && b.hasDeltaChanged[i] {
			deltadelta.FastAdd(v).SetValue(b.value[i])
		}
	}
}

// MakeNextNeighbor reverts incrementally, asks self for one neighbor,
// applies changes, and returns as soon as self.MakeOneNeighbor reports a
// candidate, or false once self reports exhaustion. Rejecting a
// candidate on its merits is a filter-layer concern, not this method's.
func (b *VarOperator) MakeNextNeighbor(delta, deltadelta *assignment.Assignment) bool {
	for {
		b.RevertChanges(true)
		if !b.self.MakeOneNeighbor() {
			return false
		}
		b.ApplyChanges(delta, deltadelta)
		return true
	}
}

// IndexOf returns the operator-local index for v, or -1 if v is not
// tracked.
func (b *VarOperator) IndexOf(v assignment.Var) int {
	i, ok := b.index[v]
	if !ok {
		return -1
	}
	return i
}
