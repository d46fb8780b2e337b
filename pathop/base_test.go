package pathop_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/localsearch/assignment"
	"github.com/katalvlaran/localsearch/pathop"
)

// noopNeighbor always reports no neighbor; it's enough to exercise Base's
// enumeration and chain primitives without a concrete operator on top.
type noopNeighbor struct{}

func (noopNeighbor) MakeNeighbor() bool { return false }

// buildPath builds a single path 0→1→2→3→4 (next[4]=4, a fixed end) as a
// next-variable Base with arity base-node cursors.
func buildPath(t *testing.T, arity int) (*pathop.Base, *assignment.Assignment) {
	t.Helper()
	next := []int64{1, 2, 3, 4, 4}
	vars := make([]assignment.Var, len(next))
	a := assignment.NewAssignment()
	for i := range next {
		v, err := assignment.NewIntVar("n", 0, int64(len(next)-1))
		require.NoError(t, err)
		vars[i] = v
		a.FastAdd(v).SetValue(next[i])
	}
	isEnd := []bool{false, false, false, false, true}
	base, err := pathop.NewBase(vars, nil, isEnd, arity, false)
	require.NoError(t, err)
	base.SetNeighbor(noopNeighbor{})
	base.SetSelf(base)
	return base, a
}

func TestBase_StartComputesPathStartsAndInactives(t *testing.T) {
	base, a := buildPath(t, 1)
	require.NoError(t, base.Start(a))

	assert.Equal(t, []int{0}, base.PathStarts())
	for i := 0; i < 5; i++ {
		assert.False(t, base.IsInactive(i), "node %d should not be inactive", i)
	}
	assert.True(t, base.IsPathEnd(4))
	assert.False(t, base.IsPathEnd(0))
}

func TestBase_InactiveNodeDetected(t *testing.T) {
	// Node 5 is a standalone inactive node: next[5] = 5, not a path end.
	next := []int64{1, 2, 3, 4, 4, 5} // path 0..4, plus node 5 inactive (self-loop)
	vars := make([]assignment.Var, len(next))
	a := assignment.NewAssignment()
	for i := range next {
		v, err := assignment.NewIntVar("n", 0, int64(len(next)-1))
		require.NoError(t, err)
		vars[i] = v
		a.FastAdd(v).SetValue(next[i])
	}
	isEnd := []bool{false, false, false, false, true, false}
	base, err := pathop.NewBase(vars, nil, isEnd, 1, false)
	require.NoError(t, err)
	base.SetNeighbor(noopNeighbor{})
	base.SetSelf(base)
	require.NoError(t, base.Start(a))

	assert.True(t, base.IsInactive(5))
	assert.Contains(t, base.Inactives(), 5)
	assert.False(t, base.IsInactive(4), "fixed path end must not be reported inactive")
}

func TestBase_MoveChainSplicesForward(t *testing.T) {
	base, a := buildPath(t, 2)
	require.NoError(t, base.Start(a))

	// move chain (2] i.e. just node 2 (before_chain=1, chain_end=2) after node 3.
	ok := base.MoveChain(1, 2, 3)
	require.True(t, ok)
	assert.Equal(t, 3, base.Next(1))
	assert.Equal(t, 4, base.Next(2))
	assert.Equal(t, 2, base.Next(3))
}

func TestBase_MoveChainRejectsPathEndDestination(t *testing.T) {
	base, a := buildPath(t, 2)
	require.NoError(t, base.Start(a))
	ok := base.MoveChain(0, 1, 4)
	assert.False(t, ok)
}

func TestBase_ReverseChain(t *testing.T) {
	base, a := buildPath(t, 2)
	require.NoError(t, base.Start(a))

	var last int
	ok := base.ReverseChain(0, 3, &last)
	require.True(t, ok)
	assert.Equal(t, 2, last)
	// after reversing (0,3) exclusive: 0 -> 2 -> 1 -> 3
	assert.Equal(t, 2, base.Next(0))
	assert.Equal(t, 1, base.Next(2))
	assert.Equal(t, 3, base.Next(1))
}

func TestBase_MakeChainInactiveThenMakeActive(t *testing.T) {
	base, a := buildPath(t, 2)
	require.NoError(t, base.Start(a))

	ok := base.MakeChainInactive(1, 2)
	require.True(t, ok)
	assert.Equal(t, 2, base.Next(2)) // self-loop
	assert.Equal(t, 3, base.Next(1))

	ok = base.MakeActive(2, 1)
	require.True(t, ok)
	assert.Equal(t, 2, base.Next(1))
	assert.Equal(t, 3, base.Next(2))
}

func TestBase_CheckChainValidityRejectsPathEndBeforeChainEnd(t *testing.T) {
	base, a := buildPath(t, 2)
	require.NoError(t, base.Start(a))
	// chain_end=0 is unreachable forward from before_chain=2 without
	// passing the fixed end at node 4 first.
	assert.False(t, base.CheckChainValidity(2, 0, -1))
}

func TestBase_IncrementPositionEventuallyExhausts(t *testing.T) {
	base, a := buildPath(t, 1)
	require.NoError(t, base.Start(a))

	seen := 0
	for base.MakeOneNeighbor() {
		seen++
		require.Less(t, seen, 100, "enumeration should terminate")
	}
	// noopNeighbor never succeeds, so MakeOneNeighbor must return false.
	assert.Equal(t, 0, seen)
}
