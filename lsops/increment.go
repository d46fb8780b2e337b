package lsops

import (
	"github.com/katalvlaran/localsearch/assignment"
	"github.com/katalvlaran/localsearch/lsoperator"
)

// changeValue is the shared cursor for Increment and Decrement: scan
// variables once in order, emitting one modified value per variable,
// per turn.
type changeValue struct {
	*lsoperator.VarOperator
	index int
	modify func(value int64) int64
}

func newChangeValue(vars []assignment.Var, modify func(int64) int64) (*changeValue, error) {
	base, err := lsoperator.NewVarOperator(vars, false)
	if err != nil {
		return nil, err
	}
	return &changeValue{VarOperator: base, modify: modify}, nil
}

func (c *changeValue) OnStart() { c.index = 0 }

func (c *changeValue) MakeOneNeighbor() bool {
	size := c.Size()
	if c.index >= size {
		return false
	}
	c.SetValue(c.index, c.modify(c.Value(c.index)))
	c.index++
	return true
}

// Increment emits value+1 for each variable in turn.
type Increment struct{ *changeValue }

// NewIncrement builds an Increment operator.
func NewIncrement(vars []assignment.Var) (*Increment, error) {
	cv, err := newChangeValue(vars, func(v int64) int64 { return v + 1 })
	if err != nil {
		return nil, err
	}
	op := &Increment{cv}
	cv.SetSelf(op)
	return op, nil
}

// Decrement emits value-1 for each variable in turn.
type Decrement struct{ *changeValue }

// NewDecrement builds a Decrement operator.
func NewDecrement(vars []assignment.Var) (*Decrement, error) {
	cv, err := newChangeValue(vars, func(v int64) int64 { return v - 1 })
	if err != nil {
		return nil, err
	}
	op := &Decrement{cv}
	cv.SetSelf(op)
	return op, nil
}
