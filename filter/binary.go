package filter

import "github.com/katalvlaran/localsearch/assignment"

// BinaryEvaluator computes the objective contribution of the variable at
// index i taking value v.
type BinaryEvaluator func(index int, value int64) int64

// BinaryObjectiveFilter is an ObjectiveFilter whose per-variable
// contribution depends only on that variable's own value.
type BinaryObjectiveFilter struct {
	*ObjectiveFilter
	evaluator BinaryEvaluator
}

// NewBinaryObjectiveFilter builds a BinaryObjectiveFilter over vars,
// scoring each variable's value with evaluator and folding the results
// through op, accepting candidates whose result satisfies bound against
// objective's window.
func NewBinaryObjectiveFilter(vars []assignment.Var, evaluator BinaryEvaluator, objective assignment.Var, bound Bound, op Operation) *BinaryObjectiveFilter {
	f := &BinaryObjectiveFilter{evaluator: evaluator}
	f.ObjectiveFilter = newObjectiveFilter(vars, objective, bound, op, f)
	return f
}

func (f *BinaryObjectiveFilter) synchronizedElementValue(index int) int64 {
	return f.evaluator(index, f.valueAt(index))
}

func (f *BinaryObjectiveFilter) evaluateElementValue(container *assignment.IntContainer, index, containerIndex int) (int64, int, bool) {
	e := container.ElementAt(containerIndex)
	if e.Activated {
		return f.evaluator(index, e.Value), containerIndex, true
	}
	if e.Var.Bound() {
		return f.evaluator(index, e.Var.Min()), containerIndex, true
	}
	return 0, containerIndex, false
}
