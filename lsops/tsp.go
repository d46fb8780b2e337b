package lsops

import (
	"math/rand"

	"github.com/katalvlaran/localsearch/assignment"
	"github.com/katalvlaran/localsearch/hamiltonian"
	"github.com/katalvlaran/localsearch/pathop"
)

// ArcCostEvaluator scores the arc from fromNode to toNode on the given
// path; TSPOpt, TSPLns and LinKernighan all take one to price the moves
// they consider.
type ArcCostEvaluator func(fromNode, toNode, path int64) int64

// TSPOpt re-solves a short chain of the path exactly: it lifts
// chainLength+1 consecutive nodes starting at BaseNode(0), solves the
// minimum Hamiltonian path over the interior nodes (every node but the
// last, which stays fixed as the chain's exit point), and rewrites
// next[] to match.
//
// Unlike the inner nodes, the chain's exit arc is appended directly
// rather than folded into the cost matrix as a virtual column: the
// exit node's position never moves, so there is nothing gained by
// routing it through the Hamiltonian solver.
type TSPOpt struct {
	*pathop.Base

	evaluator   ArcCostEvaluator
	chainLength int
	solver      *hamiltonian.Solver
}

// NewTSPOpt builds a TSPOpt operator over chains of chainLength+1 nodes.
func NewTSPOpt(nextVars, pathVars []assignment.Var, isEnd []bool, evaluator ArcCostEvaluator, chainLength int) (*TSPOpt, error) {
	if chainLength <= 0 {
		return nil, ErrChainLengthNonPositive
	}
	base, err := pathop.NewBase(nextVars, pathVars, isEnd, 1, false)
	if err != nil {
		return nil, err
	}
	op := &TSPOpt{Base: base, evaluator: evaluator, chainLength: chainLength, solver: hamiltonian.NewSolver()}
	base.SetSelf(base)
	base.SetNeighbor(op)
	return op, nil
}

// MakeNeighbor implements the chain-local Hamiltonian-path re-solve.
func (o *TSPOpt) MakeNeighbor() bool {
	nodes := make([]int64, 0, o.chainLength+1)
	chainEnd := int64(o.BaseNode(0))
	for i := 0; i <= o.chainLength; i++ {
		nodes = append(nodes, chainEnd)
		if o.IsPathEnd(int(chainEnd)) {
			break
		}
		chainEnd = int64(o.Next(int(chainEnd)))
	}
	if len(nodes) <= 3 {
		return false
	}
	chainPath := int64(o.Path(int(nodes[0])))
	size := len(nodes) - 1

	cost := make([][]int64, size)
	for i := 0; i < size; i++ {
		cost[i] = make([]int64, size)
		for j := 0; j < size; j++ {
			cost[i][j] = o.evaluator(nodes[i], nodes[j], chainPath)
		}
	}
	if err := o.solver.ChangeCostMatrix(cost); err != nil {
		return false
	}
	path, _, err := o.solver.TravelingSalesmanPath()
	if err != nil {
		return false
	}

	for i := 0; i < size-1; i++ {
		o.SetNext(int(nodes[path[i]]), int(nodes[path[i+1]]), int(chainPath))
	}
	o.SetNext(int(nodes[path[size-1]]), int(nodes[size]), int(chainPath))

	return true
}

// TSPLns randomly partitions the whole path containing BaseNode(0) into
// tspSize contiguous segments (breaking at tspSize randomly-chosen
// nodes, always including BaseNode(0) itself), solves a Hamiltonian
// path over the segments treated as meta-nodes, and reconnects them in
// the solved order. It never reports exhaustion on its own: callers
// wrap it in combinator.NeighborhoodLimit, exactly like RandomLNS.
type TSPLns struct {
	*pathop.Base

	evaluator ArcCostEvaluator
	tspSize   int
	rng       *rand.Rand
	solver    *hamiltonian.Solver
}

// NewTSPLns builds a TSPLns operator over meta-nodes formed from
// tspSize segments, using its own seeded random source.
func NewTSPLns(nextVars, pathVars []assignment.Var, isEnd []bool, evaluator ArcCostEvaluator, tspSize int, seed int64) (*TSPLns, error) {
	if tspSize <= 0 {
		return nil, ErrChainLengthNonPositive
	}
	base, err := pathop.NewBase(nextVars, pathVars, isEnd, 1, false)
	if err != nil {
		return nil, err
	}
	op := &TSPLns{
		Base:      base,
		evaluator: evaluator,
		tspSize:   tspSize,
		rng:       rand.New(rand.NewSource(seed)),
		solver:    hamiltonian.NewSolver(),
	}
	base.SetSelf(base)
	base.SetNeighbor(op)
	return op, nil
}

// MakeOneNeighbor loops MakeNeighbor attempts until one succeeds; this
// operator's neighborhood has no natural end, so it never reports
// exhaustion the way the default pathop.Base drive loop would.
func (o *TSPLns) MakeOneNeighbor() bool {
	for {
		if o.Base.MakeOneNeighbor() {
			return true
		}
	}
}

// MakeNeighbor implements the meta-node partition-and-resolve.
func (o *TSPLns) MakeNeighbor() bool {
	baseNode := o.BaseNode(0)
	if o.IsPathEnd(baseNode) {
		return false
	}

	var nodes []int
	for node := o.StartNode(0); !o.IsPathEnd(node); node = o.Next(node) {
		nodes = append(nodes, node)
	}
	if len(nodes) <= o.tspSize {
		return false
	}

	breakSet := map[int]struct{}{baseNode: {}}
	for len(breakSet) < o.tspSize {
		candidate := nodes[o.rng.Intn(len(nodes))]
		breakSet[candidate] = struct{}{}
	}

	var breaks []int
	metaCosts := make([]int64, 0, o.tspSize)
	var running int64
	node := o.StartNode(0)
	nodePath := int64(o.Path(node))
	for !o.IsPathEnd(node) {
		next := o.Next(node)
		if _, isBreak := breakSet[node]; isBreak {
			breaks = append(breaks, node)
			metaCosts = append(metaCosts, running)
			running = 0
		} else {
			running += o.evaluator(int64(node), int64(next), nodePath)
		}
		node = next
	}
	metaCosts[0] += running

	cost := make([][]int64, o.tspSize)
	for i := 0; i < o.tspSize; i++ {
		cost[i] = make([]int64, o.tspSize)
		cost[i][0] = metaCosts[i] + o.evaluator(int64(breaks[i]), int64(o.Next(breaks[o.tspSize-1])), nodePath)
		for j := 1; j < o.tspSize; j++ {
			cost[i][j] = metaCosts[i] + o.evaluator(int64(breaks[i]), int64(o.Next(breaks[j-1])), nodePath)
		}
		cost[i][i] = 0
	}
	if err := o.solver.ChangeCostMatrix(cost); err != nil {
		return false
	}
	path, _, err := o.solver.TravelingSalesmanPath()
	if err != nil {
		return false
	}

	noChange := true
	for i, p := range path {
		if p != i {
			noChange = false
			break
		}
	}
	if noChange {
		return false
	}

	for i := 0; i < o.tspSize-1; i++ {
		o.SetNext(breaks[path[i]], o.OldNext(breaks[path[i+1]-1]), int(nodePath))
	}
	o.SetNext(breaks[path[o.tspSize-1]], o.OldNext(breaks[o.tspSize-1]), int(nodePath))

	return true
}
