package combinator

import (
	"math/rand"

	"github.com/katalvlaran/localsearch/assignment"
)

// RandomCompoundOperator concatenates children in a freshly shuffled
// order on every exploration, rather than CompoundOperator's fixed rank
// order.
type RandomCompoundOperator struct {
	operators []Operator
	rng       *rand.Rand
}

// NewRandomCompoundOperator builds a RandomCompoundOperator over
// operators, dropping any nil entries, shuffling with a per-operator rng
// seeded explicitly by the caller.
func NewRandomCompoundOperator(operators []Operator, seed int64) *RandomCompoundOperator {
	filtered := make([]Operator, 0, len(operators))
	for _, op := range operators {
		if op != nil {
			filtered = append(filtered, op)
		}
	}
	return &RandomCompoundOperator{operators: filtered, rng: rand.New(rand.NewSource(seed))}
}

// Start starts every child.
func (c *RandomCompoundOperator) Start(a *assignment.Assignment) error {
	for _, op := range c.operators {
		if err := op.Start(a); err != nil {
			return err
		}
	}
	return nil
}

// MakeNextNeighbor tries every child exactly once, in a fresh random
// order, returning the first candidate any child produces.
func (c *RandomCompoundOperator) MakeNextNeighbor(delta, deltadelta *assignment.Assignment) bool {
	size := len(c.operators)
	if size == 0 {
		return false
	}
	order := c.rng.Perm(size)
	for _, i := range order {
		if c.operators[i].MakeNextNeighbor(delta, deltadelta) {
			return true
		}
	}
	return false
}
