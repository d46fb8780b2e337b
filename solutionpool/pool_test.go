package solutionpool_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/localsearch/assignment"
	"github.com/katalvlaran/localsearch/solutionpool"
)

func TestDefaultPool_InitializeThenGetNextSolutionRoundTrips(t *testing.T) {
	v, err := assignment.NewIntVar("x", 0, 10)
	require.NoError(t, err)

	start := assignment.NewAssignment()
	start.FastAdd(v).SetValue(3)

	p := solutionpool.NewDefaultPool()
	p.Initialize(start)

	out := assignment.NewAssignment()
	p.GetNextSolution(out)

	e, ok := out.Element(v)
	require.True(t, ok)
	assert.Equal(t, int64(3), e.Value)
}

func TestDefaultPool_RegisterNewSolutionReplacesReference(t *testing.T) {
	v, err := assignment.NewIntVar("x", 0, 10)
	require.NoError(t, err)

	start := assignment.NewAssignment()
	start.FastAdd(v).SetValue(1)

	p := solutionpool.NewDefaultPool()
	p.Initialize(start)

	better := assignment.NewAssignment()
	better.FastAdd(v).SetValue(9)
	p.RegisterNewSolution(better)

	out := assignment.NewAssignment()
	p.GetNextSolution(out)
	e, ok := out.Element(v)
	require.True(t, ok)
	assert.Equal(t, int64(9), e.Value)
}

func TestDefaultPool_SyncNeededAlwaysFalse(t *testing.T) {
	p := solutionpool.NewDefaultPool()
	p.Initialize(assignment.NewAssignment())
	assert.False(t, p.SyncNeeded(assignment.NewAssignment()))
}
