package filter_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/localsearch/assignment"
	"github.com/katalvlaran/localsearch/filter"
)

func identityEvaluator(_ int, value int64) int64 { return value }

func TestBinaryObjectiveFilter_AcceptsWithinUpperBound(t *testing.T) {
	x0, err := assignment.NewIntVar("x0", 0, 100)
	require.NoError(t, err)
	x1, err := assignment.NewIntVar("x1", 0, 100)
	require.NoError(t, err)
	objective, err := assignment.NewIntVar("objective", 0, 10)
	require.NoError(t, err)
	vars := []assignment.Var{x0, x1}

	f := filter.NewBinaryObjectiveFilter(vars, identityEvaluator, objective, filter.LE, filter.NewSumOperation())

	a := assignment.NewAssignment()
	a.FastAdd(x0).SetValue(2)
	a.FastAdd(x1).SetValue(3)
	f.Synchronize(a)

	delta := assignment.NewAssignment()
	delta.FastAdd(x0).SetValue(4)
	assert.True(t, f.Accept(delta, assignment.NewAssignment()))
}

func TestBinaryObjectiveFilter_RejectsAboveUpperBound(t *testing.T) {
	x0, err := assignment.NewIntVar("x0", 0, 100)
	require.NoError(t, err)
	objective, err := assignment.NewIntVar("objective", 0, 5)
	require.NoError(t, err)
	vars := []assignment.Var{x0}

	f := filter.NewBinaryObjectiveFilter(vars, identityEvaluator, objective, filter.LE, filter.NewSumOperation())

	a := assignment.NewAssignment()
	a.FastAdd(x0).SetValue(1)
	f.Synchronize(a)

	delta := assignment.NewAssignment()
	delta.FastAdd(x0).SetValue(6)
	assert.False(t, f.Accept(delta, assignment.NewAssignment()))
}

func TestBinaryObjectiveFilter_DeactivatedElementUsesBoundVarMin(t *testing.T) {
	x0, err := assignment.NewIntVar("x0", 7, 7)
	require.NoError(t, err)
	objective, err := assignment.NewIntVar("objective", 0, 10)
	require.NoError(t, err)
	vars := []assignment.Var{x0}

	f := filter.NewBinaryObjectiveFilter(vars, identityEvaluator, objective, filter.LE, filter.NewSumOperation())

	a := assignment.NewAssignment()
	a.FastAdd(x0).SetValue(7)
	f.Synchronize(a)

	delta := assignment.NewAssignment()
	delta.FastAdd(x0).Deactivate()
	assert.True(t, f.Accept(delta, assignment.NewAssignment()))
}

func TestBinaryObjectiveFilter_SuccessiveFullEvaluationsUseFreshCache(t *testing.T) {
	x0, err := assignment.NewIntVar("x0", 0, 100)
	require.NoError(t, err)
	x1, err := assignment.NewIntVar("x1", 0, 100)
	require.NoError(t, err)
	objective, err := assignment.NewIntVar("objective", 0, 10)
	require.NoError(t, err)
	vars := []assignment.Var{x0, x1}

	f := filter.NewBinaryObjectiveFilter(vars, identityEvaluator, objective, filter.LE, filter.NewSumOperation())

	a := assignment.NewAssignment()
	a.FastAdd(x0).SetValue(1)
	a.FastAdd(x1).SetValue(2)
	f.Synchronize(a)

	// Each call evaluates its delta as a standalone hypothesis against the
	// last Synchronize baseline (x0=1, x1=2), not cumulatively across calls.
	delta1 := assignment.NewAssignment()
	delta1.FastAdd(x0).SetValue(3)
	require.True(t, f.Accept(delta1, assignment.NewAssignment()))

	delta2 := assignment.NewAssignment()
	delta2.FastAdd(x1).SetValue(12)
	assert.False(t, f.Accept(delta2, assignment.NewAssignment()))
}

func TestBinaryObjectiveFilter_GEBoundRejectsBelowLowerBound(t *testing.T) {
	x0, err := assignment.NewIntVar("x0", 0, 100)
	require.NoError(t, err)
	objective, err := assignment.NewIntVar("objective", 5, 100)
	require.NoError(t, err)
	vars := []assignment.Var{x0}

	f := filter.NewBinaryObjectiveFilter(vars, identityEvaluator, objective, filter.GE, filter.NewSumOperation())

	a := assignment.NewAssignment()
	a.FastAdd(x0).SetValue(10)
	f.Synchronize(a)

	delta := assignment.NewAssignment()
	delta.FastAdd(x0).SetValue(2)
	assert.False(t, f.Accept(delta, assignment.NewAssignment()))
}

func TestBinaryObjectiveFilter_ChainedDeltaDeltasStayCorrect(t *testing.T) {
	// Mirrors TwoOpt's first-call-then-slide pattern (lsops/twoopt.go):
	// one outer cursor emits two consecutive non-empty deltadeltas
	// touching the same index, each relative to the previous emission
	// rather than to the Synchronize-time reference. The bound is set
	// so that the correct running value (5) passes but the previously
	// buggy value (3 - 1 + 5 = 7, from replaying the second deltadelta
	// against the stale reference-point cache) would not.
	x0, err := assignment.NewIntVar("x0", 0, 100)
	require.NoError(t, err)
	objective, err := assignment.NewIntVar("objective", 0, 5)
	require.NoError(t, err)
	vars := []assignment.Var{x0}

	f := filter.NewBinaryObjectiveFilter(vars, identityEvaluator, objective, filter.LE, filter.NewSumOperation())

	a := assignment.NewAssignment()
	a.FastAdd(x0).SetValue(1)
	f.Synchronize(a)

	delta1 := assignment.NewAssignment()
	delta1.FastAdd(x0).SetValue(3)
	deltadelta1 := assignment.NewAssignment()
	deltadelta1.FastAdd(x0).SetValue(3)
	require.True(t, f.Accept(delta1, deltadelta1))

	delta2 := assignment.NewAssignment()
	delta2.FastAdd(x0).SetValue(5)
	deltadelta2 := assignment.NewAssignment()
	deltadelta2.FastAdd(x0).SetValue(5)
	assert.True(t, f.Accept(delta2, deltadelta2))
}
