package filter

import "github.com/katalvlaran/localsearch/assignment"

// TernaryEvaluator computes the objective contribution of the variable
// at index i taking value v, paired with its secondary variable taking
// secondaryValue — e.g. a (node, next-node) arc cost.
type TernaryEvaluator func(index int, value, secondaryValue int64) int64

// TernaryObjectiveFilter is an ObjectiveFilter whose per-variable
// contribution depends on a primary variable's value and a fixed
// secondary variable's value, paired by position.
type TernaryObjectiveFilter struct {
	*ObjectiveFilter
	secondaryOffset int
	evaluator       TernaryEvaluator
}

// NewTernaryObjectiveFilter builds a TernaryObjectiveFilter pairing each
// vars[i] with secondaryVars[i]. Returns ErrSecondaryLengthMismatch if
// the two slices differ in length.
func NewTernaryObjectiveFilter(vars, secondaryVars []assignment.Var, evaluator TernaryEvaluator, objective assignment.Var, bound Bound, op Operation) (*TernaryObjectiveFilter, error) {
	if len(vars) != len(secondaryVars) {
		return nil, ErrSecondaryLengthMismatch
	}
	f := &TernaryObjectiveFilter{secondaryOffset: len(vars), evaluator: evaluator}
	f.ObjectiveFilter = newObjectiveFilter(vars, objective, bound, op, f)
	f.addVars(secondaryVars)
	return f, nil
}

func (f *TernaryObjectiveFilter) synchronizedElementValue(index int) int64 {
	return f.evaluator(index, f.valueAt(index), f.valueAt(index+f.secondaryOffset))
}

func (f *TernaryObjectiveFilter) evaluateElementValue(container *assignment.IntContainer, index, containerIndex int) (int64, int, bool) {
	e := container.ElementAt(containerIndex)
	secondaryVar := f.varAt(index + f.secondaryOffset)
	if e.Activated {
		value := e.Value
		hint := containerIndex + 1
		if hint < container.Size() && container.ElementAt(hint).Var == secondaryVar {
			return f.evaluator(index, value, container.ElementAt(hint).Value), hint, true
		}
		secondaryElem, ok := container.Element(secondaryVar)
		if !ok {
			return 0, containerIndex, false
		}
		return f.evaluator(index, value, secondaryElem.Value), containerIndex, true
	}
	if e.Var.Bound() && secondaryVar.Bound() {
		return f.evaluator(index, e.Var.Min(), secondaryVar.Min()), containerIndex, true
	}
	return 0, containerIndex, false
}
