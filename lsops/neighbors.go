package lsops

import (
	"sort"

	"github.com/katalvlaran/localsearch/pathop"
)

// nearestNeighborTable caches, for each next[] index, the size cheapest
// destinations within that index's own variable domain according to
// evaluator — the candidate set LinKernighan's InFromOut searches over.
//
// The domain of each variable is usually small enough that a plain sort
// finds the cheapest size entries just as well as a hand-rolled
// quickselect partition would, at the cost of an extra log factor; this
// port takes that trade for the simpler code.
type nearestNeighborTable struct {
	base      *pathop.Base
	evaluator ArcCostEvaluator
	size      int
	neighbors [][]int
}

func newNearestNeighborTable(base *pathop.Base, evaluator ArcCostEvaluator, size int) *nearestNeighborTable {
	return &nearestNeighborTable{base: base, evaluator: evaluator, size: size}
}

// Initialize computes every row's neighbor list once; later calls are
// no-ops, matching the one-shot cache the original builds.
func (n *nearestNeighborTable) Initialize() {
	if n.neighbors != nil {
		return
	}
	n.neighbors = make([][]int, n.base.NumberOfNexts())
	for i := range n.neighbors {
		n.neighbors[i] = n.computeNearest(i)
	}
}

func (n *nearestNeighborTable) computeNearest(row int) []int {
	path := int64(n.base.Path(row))
	v := n.base.Var(row)
	varMin := v.Min()
	varSize := int(v.Max() - varMin + 1)

	type candidate struct {
		node int
		cost int64
	}
	candidates := make([]candidate, varSize)
	for i := 0; i < varSize; i++ {
		node := int(varMin) + i
		candidates[i] = candidate{node: node, cost: n.evaluator(int64(row), int64(node), path)}
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].cost < candidates[j].cost })

	take := n.size
	if take > varSize {
		take = varSize
	}
	result := make([]int, take)
	for i := 0; i < take; i++ {
		result[i] = candidates[i].node
	}
	sort.Ints(result)

	return result
}

// Neighbors returns the cached candidate list for index.
func (n *nearestNeighborTable) Neighbors(index int) []int { return n.neighbors[index] }
