package lsops_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/localsearch/assignment"
	"github.com/katalvlaran/localsearch/lsops"
)

func buildScalarVars(t *testing.T, values ...int64) ([]assignment.Var, *assignment.Assignment) {
	t.Helper()
	vars := make([]assignment.Var, len(values))
	a := assignment.NewAssignment()
	for i, v := range values {
		iv, err := assignment.NewIntVar("x", -100, 100)
		require.NoError(t, err)
		vars[i] = iv
		a.FastAdd(iv).SetValue(v)
	}
	return vars, a
}

func TestIncrement_EmitsOneIncrementedValuePerVariable(t *testing.T) {
	vars, a := buildScalarVars(t, 1, 2, 3)
	op, err := lsops.NewIncrement(vars)
	require.NoError(t, err)
	require.NoError(t, op.Start(a))

	require.True(t, op.MakeOneNeighbor())
	assert.Equal(t, int64(2), op.Value(0))

	require.True(t, op.MakeOneNeighbor())
	assert.Equal(t, int64(3), op.Value(1))

	require.True(t, op.MakeOneNeighbor())
	assert.Equal(t, int64(4), op.Value(2))

	assert.False(t, op.MakeOneNeighbor())
}

func TestDecrement_EmitsOneDecrementedValuePerVariable(t *testing.T) {
	vars, a := buildScalarVars(t, 1, 2, 3)
	op, err := lsops.NewDecrement(vars)
	require.NoError(t, err)
	require.NoError(t, op.Start(a))

	require.True(t, op.MakeOneNeighbor())
	assert.Equal(t, int64(0), op.Value(0))

	require.True(t, op.MakeOneNeighbor())
	assert.Equal(t, int64(1), op.Value(1))

	require.True(t, op.MakeOneNeighbor())
	assert.Equal(t, int64(2), op.Value(2))

	assert.False(t, op.MakeOneNeighbor())
}
