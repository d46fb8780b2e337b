package combinator

import (
	"sort"

	"github.com/katalvlaran/localsearch/assignment"
)

// EvaluatorFunc ranks operatorIndex relative to the currently active
// operator (activeIndex), among size candidates; CompoundOperator sorts
// its children into ascending rank order before each exploration.
type EvaluatorFunc func(size, activeIndex, operatorIndex int) int64

// RestartEvaluator ranks every operator by its original position,
// ignoring activeIndex — CompoundOperator built with it resumes every
// exploration from its first child.
func RestartEvaluator(size, activeIndex, operatorIndex int) int64 {
	return int64(operatorIndex)
}

// NoRestartEvaluator ranks operators so the previously active one sorts
// first, letting the cycle resume where the last exploration left off.
func NoRestartEvaluator(size, activeIndex, operatorIndex int) int64 {
	if operatorIndex < activeIndex {
		return int64(size - activeIndex + operatorIndex)
	}
	return int64(operatorIndex - activeIndex)
}

// CompoundOperator concatenates a sequence of child operators into one:
// each exploration tries children in rank order, wrapping once, and
// returns the first candidate any child produces.
type CompoundOperator struct {
	operators []Operator
	evaluator EvaluatorFunc

	order   []int
	active  int
	started bool
}

// NewCompoundOperator builds a CompoundOperator over operators, dropping
// any nil entries, ranking children with evaluator before every Start.
func NewCompoundOperator(operators []Operator, evaluator EvaluatorFunc) *CompoundOperator {
	filtered := make([]Operator, 0, len(operators))
	for _, op := range operators {
		if op != nil {
			filtered = append(filtered, op)
		}
	}
	order := make([]int, len(filtered))
	for i := range order {
		order[i] = i
	}
	return &CompoundOperator{operators: filtered, evaluator: evaluator, order: order}
}

// Start starts every child, then re-sorts the try order by evaluator.
func (c *CompoundOperator) Start(a *assignment.Assignment) error {
	size := len(c.operators)
	if size == 0 {
		return nil
	}
	for _, op := range c.operators {
		if err := op.Start(a); err != nil {
			return err
		}
	}
	if !c.started {
		for i := range c.order {
			c.order[i] = i
		}
	}
	c.started = true
	active := c.order[c.active]
	sort.SliceStable(c.order, func(i, j int) bool {
		return c.evaluator(size, active, c.order[i]) < c.evaluator(size, active, c.order[j])
	})
	c.active = 0
	return nil
}

// MakeNextNeighbor tries each child once, starting at the currently
// active rank and wrapping around; a success leaves the active rank
// unchanged so the next call resumes there.
func (c *CompoundOperator) MakeNextNeighbor(delta, deltadelta *assignment.Assignment) bool {
	size := len(c.operators)
	if size == 0 {
		return false
	}
	start := c.active
	for {
		if c.operators[c.order[c.active]].MakeNextNeighbor(delta, deltadelta) {
			return true
		}
		c.active = (c.active + 1) % size
		if c.active == start {
			return false
		}
	}
}
