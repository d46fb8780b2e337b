package combinator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/localsearch/assignment"
	"github.com/katalvlaran/localsearch/combinator"
)

// scriptedOperator reports true exactly len(results) times, in order,
// then false forever; it records how many times Start and
// MakeNextNeighbor were called.
type scriptedOperator struct {
	results    []bool
	call       int
	startCalls int
}

func (o *scriptedOperator) Start(*assignment.Assignment) error {
	o.startCalls++
	return nil
}

func (o *scriptedOperator) MakeNextNeighbor(delta, deltadelta *assignment.Assignment) bool {
	if o.call >= len(o.results) {
		return false
	}
	r := o.results[o.call]
	o.call++
	return r
}

func TestCompoundOperator_TriesChildrenInRankOrderAndWrapsOnce(t *testing.T) {
	a := &scriptedOperator{results: []bool{false}}
	b := &scriptedOperator{results: []bool{false}}
	c := &scriptedOperator{results: []bool{true}}

	op := combinator.NewCompoundOperator([]combinator.Operator{a, b, c}, combinator.RestartEvaluator)
	require.NoError(t, op.Start(assignment.NewAssignment()))

	delta, deltadelta := assignment.NewAssignment(), assignment.NewAssignment()
	assert.True(t, op.MakeNextNeighbor(delta, deltadelta))
	assert.Equal(t, 1, a.call)
	assert.Equal(t, 1, b.call)
	assert.Equal(t, 1, c.call)
}

func TestCompoundOperator_AllChildrenExhaustedReturnsFalse(t *testing.T) {
	a := &scriptedOperator{results: []bool{false}}
	b := &scriptedOperator{results: []bool{false}}

	op := combinator.NewCompoundOperator([]combinator.Operator{a, b}, combinator.RestartEvaluator)
	require.NoError(t, op.Start(assignment.NewAssignment()))

	delta, deltadelta := assignment.NewAssignment(), assignment.NewAssignment()
	assert.False(t, op.MakeNextNeighbor(delta, deltadelta))
}

func TestCompoundOperator_NoRestartEvaluatorResumesAtActiveChild(t *testing.T) {
	a := &scriptedOperator{results: []bool{true, false}}
	b := &scriptedOperator{results: []bool{true}}

	op := combinator.NewCompoundOperator([]combinator.Operator{a, b}, combinator.NoRestartEvaluator)
	require.NoError(t, op.Start(assignment.NewAssignment()))

	delta, deltadelta := assignment.NewAssignment(), assignment.NewAssignment()
	require.True(t, op.MakeNextNeighbor(delta, deltadelta))
	assert.Equal(t, 1, a.call)
	assert.Equal(t, 0, b.call)

	// a is still ranked first (no restart reorders around the active
	// child, and Start was not called again), so the second call tries
	// a again before falling through to b.
	require.True(t, op.MakeNextNeighbor(delta, deltadelta))
	assert.Equal(t, 2, a.call)
	assert.Equal(t, 1, b.call)
}

func TestCompoundOperator_DropsNilOperators(t *testing.T) {
	a := &scriptedOperator{results: []bool{true}}
	op := combinator.NewCompoundOperator([]combinator.Operator{nil, a, nil}, combinator.RestartEvaluator)
	require.NoError(t, op.Start(assignment.NewAssignment()))

	delta, deltadelta := assignment.NewAssignment(), assignment.NewAssignment()
	assert.True(t, op.MakeNextNeighbor(delta, deltadelta))
}

func TestCompoundOperator_EmptyAfterFilteringNeverSucceeds(t *testing.T) {
	op := combinator.NewCompoundOperator([]combinator.Operator{nil, nil}, combinator.RestartEvaluator)
	require.NoError(t, op.Start(assignment.NewAssignment()))

	delta, deltadelta := assignment.NewAssignment(), assignment.NewAssignment()
	assert.False(t, op.MakeNextNeighbor(delta, deltadelta))
}
