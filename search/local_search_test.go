package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/localsearch/assignment"
	"github.com/katalvlaran/localsearch/cpsolver"
	"github.com/katalvlaran/localsearch/filter"
	"github.com/katalvlaran/localsearch/lsops"
	"github.com/katalvlaran/localsearch/search"
	"github.com/katalvlaran/localsearch/solutionpool"
)

// fixedFirstSolution reports one fixed starting assignment, then
// reports it has nothing further to contribute.
type fixedFirstSolution struct {
	v     assignment.Var
	value int64
	done  bool
}

func (f *fixedFirstSolution) Next(a *assignment.Assignment) (bool, error) {
	if f.done {
		return false, nil
	}
	f.done = true
	a.Clear()
	a.FastAdd(f.v).SetValue(f.value)
	return true, nil
}

func TestLocalSearch_FirstSolutionThenNeighborsThenLocalOptimum(t *testing.T) {
	v, err := assignment.NewIntVar("v", 0, 1)
	require.NoError(t, err)

	op, err := lsops.NewIncrement([]assignment.Var{v})
	require.NoError(t, err)

	params := search.PhaseParameters{
		Pool:         solutionpool.NewDefaultPool(),
		Operator:     op,
		NestedSolver: cpsolver.NewDefaultNestedSolver(),
		Filters:      []search.Filter{filter.NewVariableDomainFilter()},
	}

	first := &fixedFirstSolution{v: v, value: 0}
	start := assignment.NewAssignment()
	ls, err := search.NewLocalSearch(first, params, start)
	require.NoError(t, err)

	a := assignment.NewAssignment()

	ok, err := ls.Next(a)
	require.NoError(t, err)
	require.True(t, ok)
	e, _ := a.Element(v)
	assert.Equal(t, int64(0), e.Value)

	ok, err = ls.Next(a)
	require.NoError(t, err)
	require.True(t, ok)
	e, _ = a.Element(v)
	assert.Equal(t, int64(1), e.Value)

	ok, err = ls.Next(a)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, 1, ls.LocalOptimumCount)
}

func TestLocalSearch_FirstSolutionFailureSurfacesImmediately(t *testing.T) {
	v, err := assignment.NewIntVar("v", 0, 5)
	require.NoError(t, err)
	op, err := lsops.NewIncrement([]assignment.Var{v})
	require.NoError(t, err)

	params := search.PhaseParameters{
		Pool:         solutionpool.NewDefaultPool(),
		Operator:     op,
		NestedSolver: cpsolver.NewDefaultNestedSolver(),
		Filters:      []search.Filter{filter.NewVariableDomainFilter()},
	}

	first := &fixedFirstSolution{v: v, value: 0, done: true} // already exhausted
	start := assignment.NewAssignment()
	ls, err := search.NewLocalSearch(first, params, start)
	require.NoError(t, err)

	a := assignment.NewAssignment()
	ok, err := ls.Next(a)
	require.NoError(t, err)
	assert.False(t, ok)
}
