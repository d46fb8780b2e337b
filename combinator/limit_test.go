package combinator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/localsearch/assignment"
	"github.com/katalvlaran/localsearch/combinator"
)

func TestNeighborhoodLimit_RejectsNonPositiveLimit(t *testing.T) {
	_, err := combinator.NewNeighborhoodLimit(&scriptedOperator{}, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, combinator.ErrLimitNonPositive)
}

func TestNeighborhoodLimit_StopsAfterLimitCalls(t *testing.T) {
	inner := &scriptedOperator{results: []bool{true, true, true, true}}
	op, err := combinator.NewNeighborhoodLimit(inner, 2)
	require.NoError(t, err)
	require.NoError(t, op.Start(assignment.NewAssignment()))

	delta, deltadelta := assignment.NewAssignment(), assignment.NewAssignment()
	assert.True(t, op.MakeNextNeighbor(delta, deltadelta))
	assert.True(t, op.MakeNextNeighbor(delta, deltadelta))
	assert.False(t, op.MakeNextNeighbor(delta, deltadelta))
	assert.Equal(t, 2, inner.call)
}

func TestNeighborhoodLimit_StartResetsCounter(t *testing.T) {
	inner := &scriptedOperator{results: []bool{true, true}}
	op, err := combinator.NewNeighborhoodLimit(inner, 1)
	require.NoError(t, err)
	require.NoError(t, op.Start(assignment.NewAssignment()))

	delta, deltadelta := assignment.NewAssignment(), assignment.NewAssignment()
	assert.True(t, op.MakeNextNeighbor(delta, deltadelta))
	assert.False(t, op.MakeNextNeighbor(delta, deltadelta))

	require.NoError(t, op.Start(assignment.NewAssignment()))
	assert.True(t, op.MakeNextNeighbor(delta, deltadelta))
	assert.Equal(t, 1, inner.startCalls-1)
}
