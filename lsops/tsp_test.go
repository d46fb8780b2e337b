package lsops_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/localsearch/assignment"
	"github.com/katalvlaran/localsearch/lsops"
)

// buildTSPPath builds a single next[]-array path 0->1->...->(n-1), with
// n-1 a fixed path end, as an assignment ready for a path operator's Start.
func buildTSPPath(t *testing.T, n int) ([]assignment.Var, []bool, *assignment.Assignment) {
	t.Helper()
	next := make([]int64, n)
	for i := 0; i < n-1; i++ {
		next[i] = int64(i + 1)
	}
	next[n-1] = int64(n - 1)

	vars := make([]assignment.Var, n)
	a := assignment.NewAssignment()
	for i := range next {
		v, err := assignment.NewIntVar("n", 0, int64(n-1))
		require.NoError(t, err)
		vars[i] = v
		a.FastAdd(v).SetValue(next[i])
	}
	isEnd := make([]bool, n)
	isEnd[n-1] = true

	return vars, isEnd, a
}

func TestNewTSPOpt_RejectsNonPositiveChainLength(t *testing.T) {
	vars, isEnd, _ := buildTSPPath(t, 5)
	_, err := lsops.NewTSPOpt(vars, nil, isEnd, func(int64, int64, int64) int64 { return 0 }, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, lsops.ErrChainLengthNonPositive)
}

func TestTSPOpt_ReordersChainToCheaperPermutation(t *testing.T) {
	vars, isEnd, a := buildTSPPath(t, 6) // 0->1->2->3->4->5(end)

	costs := map[[2]int64]int64{
		{0, 1}: 1, {0, 2}: 5,
		{1, 2}: 100, {2, 1}: 1,
		{1, 3}: 1, {2, 3}: 50,
	}
	evaluator := func(from, to, _ int64) int64 {
		if c, ok := costs[[2]int64{from, to}]; ok {
			return c
		}
		return 1000
	}

	op, err := lsops.NewTSPOpt(vars, nil, isEnd, evaluator, 3)
	require.NoError(t, err)
	require.NoError(t, op.Start(a))

	require.True(t, op.MakeOneNeighbor())
	assert.Equal(t, 2, op.Next(0))
	assert.Equal(t, 1, op.Next(2))
	assert.Equal(t, 3, op.Next(1))
}

func TestNewTSPLns_RejectsNonPositiveTspSize(t *testing.T) {
	vars, isEnd, _ := buildTSPPath(t, 5)
	_, err := lsops.NewTSPLns(vars, nil, isEnd, func(int64, int64, int64) int64 { return 0 }, 0, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, lsops.ErrChainLengthNonPositive)
}

func TestTSPLns_MakeNeighborRejectsWhenPathNotLongerThanTspSize(t *testing.T) {
	// 4 movable nodes (0..3) plus the fixed end: exactly tspSize of them,
	// so the "nodes.size() <= tsp_size_" guard rejects deterministically
	// regardless of the random break selection.
	vars, isEnd, a := buildTSPPath(t, 5)

	op, err := lsops.NewTSPLns(vars, nil, isEnd, func(int64, int64, int64) int64 { return 1 }, 4, 42)
	require.NoError(t, err)
	require.NoError(t, op.Start(a))

	assert.False(t, op.MakeNeighbor())
}
