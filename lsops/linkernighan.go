package lsops

import (
	"math"

	"github.com/katalvlaran/localsearch/assignment"
	"github.com/katalvlaran/localsearch/pathop"
)

// DefaultLinKernighanNeighbors is the candidate-list size LinKernighan
// uses when a caller has no specific preference.
const DefaultLinKernighanNeighbors = 6

// LinKernighan repeatedly closes a 2-opt (or, with topt enabled, an
// initial 3-opt) move chosen from each node's cached nearest-neighbor
// candidates, accumulating gain across the chain, and accepts the first
// point at which closing the chain back into the tour shows a net
// positive gain.
type LinKernighan struct {
	*pathop.Base

	evaluator ArcCostEvaluator
	neighbors *nearestNeighborTable
	marked    map[int]struct{}
	topt      bool
}

// NewLinKernighan builds a LinKernighan operator. neighborCount bounds
// how many nearest candidates are considered per node; topt requests
// trying one 3-opt move before falling back to chained 2-opt moves.
func NewLinKernighan(nextVars, pathVars []assignment.Var, isEnd []bool, evaluator ArcCostEvaluator, neighborCount int, topt bool) (*LinKernighan, error) {
	base, err := pathop.NewBase(nextVars, pathVars, isEnd, 1, true)
	if err != nil {
		return nil, err
	}
	op := &LinKernighan{
		Base:      base,
		evaluator: evaluator,
		neighbors: newNearestNeighborTable(base, evaluator, neighborCount),
		topt:      topt,
	}
	base.SetSelf(base)
	base.SetNeighbor(op)
	return op, nil
}

// OnNodeInitialization builds the nearest-neighbor cache once per path
// operator lifetime.
func (o *LinKernighan) OnNodeInitialization() { o.neighbors.Initialize() }

// Neighbors returns the cached nearest-candidate list for next[index],
// sorted by node id. It is only meaningful after Start has run at least
// once.
func (o *LinKernighan) Neighbors(index int) []int { return o.neighbors.Neighbors(index) }

// MakeNeighbor implements the chained-2opt (optionally 3opt-first) move.
func (o *LinKernighan) MakeNeighbor() bool {
	o.marked = make(map[int]struct{})
	node := o.BaseNode(0)
	if o.IsPathEnd(node) {
		return false
	}
	path := o.Path(node)
	base := node
	next := o.Next(node)
	if o.IsPathEnd(next) {
		return false
	}
	var out int
	var gain int64
	o.marked[node] = struct{}{}

	if o.topt {
		if !o.inFromOut(node, next, &out, &gain) {
			return false
		}
		o.marked[next] = struct{}{}
		o.marked[out] = struct{}{}
		node1 := out
		if o.IsPathEnd(node1) {
			return false
		}
		next1 := o.Next(node1)
		if o.IsPathEnd(next1) {
			return false
		}
		if !o.inFromOut(node1, next1, &out, &gain) {
			return false
		}
		o.marked[next1] = struct{}{}
		o.marked[out] = struct{}{}
		if !o.MoveChain(out, node1, node) {
			return false
		}
		nextOut := o.Next(out)
		inCost := o.evaluator(int64(node), int64(nextOut), int64(path))
		outCost := o.evaluator(int64(out), int64(nextOut), int64(path))
		if gain-inCost+outCost > 0 {
			return true
		}
		node = out
		if o.IsPathEnd(node) {
			return false
		}
		next = nextOut
		if o.IsPathEnd(next) {
			return false
		}
	}

	for o.inFromOut(node, next, &out, &gain) {
		o.marked[next] = struct{}{}
		o.marked[out] = struct{}{}
		var chainLast int
		if !o.ReverseChain(node, out, &chainLast) {
			return false
		}
		inCost := o.evaluator(int64(base), int64(chainLast), int64(path))
		outCost := o.evaluator(int64(chainLast), int64(out), int64(path))
		if gain-inCost+outCost > 0 {
			return true
		}
		node = chainLast
		if o.IsPathEnd(node) {
			return false
		}
		next = out
		if o.IsPathEnd(next) {
			return false
		}
	}

	return false
}

// inFromOut looks for the neighbor of inJ that maximizes the chain gain
// accumulated in *gain so far, skipping marked nodes and inJ's current
// successor. It writes the chosen node to *out and the new accumulated
// gain to *gain, returning false if no neighbor improves the chain.
func (o *LinKernighan) inFromOut(inI, inJ int, out *int, gain *int64) bool {
	nexts := o.neighbors.Neighbors(inJ)
	bestGain := int64(math.MinInt64)
	path := int64(o.Path(inI))
	outCost := o.evaluator(int64(inI), int64(inJ), path)
	currentGain := *gain + outCost
	successorOfJ := o.Next(inJ)
	_, jMarked := o.marked[inJ]

	for _, next := range nexts {
		if next == inJ || next == successorOfJ || jMarked {
			continue
		}
		if _, nextMarked := o.marked[next]; nextMarked {
			continue
		}
		inCost := o.evaluator(int64(inJ), int64(next), path)
		newGain := currentGain - inCost
		if newGain > 0 && bestGain < newGain {
			*out = next
			bestGain = newGain
		}
	}
	*gain = bestGain

	return bestGain > math.MinInt64
}
