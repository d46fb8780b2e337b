package lsoperator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/localsearch/assignment"
	"github.com/katalvlaran/localsearch/lsoperator"
)

type reverseOnce struct {
	base *lsoperator.SequenceOperator
	done bool
}

func (o *reverseOnce) MakeOneNeighbor() bool {
	if o.done {
		return false
	}
	o.done = true
	fw := o.base.Forward(0)
	rev := make([]int, len(fw))
	for i, x := range fw {
		rev[len(fw)-1-i] = x
	}
	o.base.SetForward(0, rev)
	o.base.SetBackward(0, fw)
	return true
}

func TestSequenceOperator_StartAndNeighbor(t *testing.T) {
	sv := assignment.NewSequenceVar("route", 3)
	base, err := lsoperator.NewSequenceOperator([]*assignment.SequenceVar{sv}, false)
	require.NoError(t, err)
	op := &reverseOnce{base: base}
	base.SetSelf(op)

	a := assignment.NewAssignment()
	a.FastAddSequence(sv).SetForwardSequence([]int{0, 1, 2})
	require.NoError(t, base.Start(a))
	assert.Equal(t, []int{0, 1, 2}, base.Forward(0))

	delta := assignment.NewAssignment()
	deltadelta := assignment.NewAssignment()
	require.True(t, base.MakeNextNeighbor(delta, deltadelta))

	require.Equal(t, 1, delta.SequenceContainer().Size())
	e, ok := delta.SequenceContainer().Element(sv)
	require.True(t, ok)
	assert.Equal(t, []int{2, 1, 0}, e.Forward)
	assert.Equal(t, []int{0, 1, 2}, e.Backward)
}

func TestSequenceOperator_RevertClearsBackward(t *testing.T) {
	sv := assignment.NewSequenceVar("route", 3)
	base, err := lsoperator.NewSequenceOperator([]*assignment.SequenceVar{sv}, false)
	require.NoError(t, err)
	base.SetSelf(&reverseOnce{base: base})

	a := assignment.NewAssignment()
	a.FastAddSequence(sv).SetForwardSequence([]int{0, 1, 2})
	require.NoError(t, base.Start(a))

	base.SetForward(0, []int{2, 0, 1})
	base.SetBackward(0, []int{9})
	base.RevertChanges(false)

	assert.Equal(t, []int{0, 1, 2}, base.Forward(0))
	assert.Nil(t, base.Backward(0))
}
