package lsops

import (
	"github.com/katalvlaran/localsearch/assignment"
	"github.com/katalvlaran/localsearch/combinator"
)

// NewOrOpt builds the classic Or-opt neighborhood: relocating chains of
// 1, 2 and 3 nodes, each constrained to land on the chain's own path,
// concatenated into a single operator.
func NewOrOpt(nextVars, pathVars []assignment.Var, isEnd []bool) (*combinator.CompoundOperator, error) {
	ops := make([]combinator.Operator, 0, 3)
	for chainLength := 1; chainLength <= 3; chainLength++ {
		r, err := NewRelocate(nextVars, pathVars, isEnd, chainLength, true)
		if err != nil {
			return nil, err
		}
		ops = append(ops, r)
	}
	return combinator.NewCompoundOperator(ops, combinator.RestartEvaluator), nil
}

// NewLinKernighanCompound concatenates a plain chained-2opt LinKernighan
// with a 3opt-first variant, so every exploration first tries for the
// deeper 3-opt improvement before falling back to the cheaper search.
func NewLinKernighanCompound(nextVars, pathVars []assignment.Var, isEnd []bool, evaluator ArcCostEvaluator, neighborCount int) (*combinator.CompoundOperator, error) {
	topt, err := NewLinKernighan(nextVars, pathVars, isEnd, evaluator, neighborCount, true)
	if err != nil {
		return nil, err
	}
	plain, err := NewLinKernighan(nextVars, pathVars, isEnd, evaluator, neighborCount, false)
	if err != nil {
		return nil, err
	}
	return combinator.NewCompoundOperator([]combinator.Operator{topt, plain}, combinator.RestartEvaluator), nil
}
