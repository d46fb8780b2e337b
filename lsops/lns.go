package lsops

import (
	"math/rand"

	"github.com/katalvlaran/localsearch/assignment"
	"github.com/katalvlaran/localsearch/lsoperator"
	"github.com/katalvlaran/localsearch/pathop"
)

// SimpleLNS deactivates a sliding window of k consecutive variables
// (modulo Size), advancing the window start by one on every neighbor.
type SimpleLNS struct {
	*lsoperator.VarOperator

	k     int
	index int
}

// NewSimpleLNS builds a SimpleLNS operator over vars, freeing k
// consecutive variables (wrapping) per neighbor.
func NewSimpleLNS(vars []assignment.Var, k int) (*SimpleLNS, error) {
	if k <= 0 {
		return nil, ErrChainLengthNonPositive
	}
	base, err := lsoperator.NewVarOperator(vars, false)
	if err != nil {
		return nil, err
	}
	op := &SimpleLNS{VarOperator: base, k: k}
	base.SetSelf(op)
	return op, nil
}

// OnStart resets the sliding window to the beginning.
func (o *SimpleLNS) OnStart() { o.index = 0 }

// MakeOneNeighbor deactivates [index, index+k) mod Size and advances
// index by one; reports exhaustion once index reaches Size.
func (o *SimpleLNS) MakeOneNeighbor() bool {
	size := o.Size()
	if o.index >= size {
		return false
	}
	for i := o.index; i < o.index+o.k; i++ {
		o.Deactivate(i % size)
	}
	o.index++
	return true
}

// RandomLNS deactivates k uniformly-random indices (with replacement)
// per neighbor, forever — it is explicitly unbounded, grouped with
// TSP-LNS and Lin-Kernighan as operators with no termination guarantee
// of their own; callers wrap it in combinator.NeighborhoodLimit.
type RandomLNS struct {
	*lsoperator.VarOperator

	k   int
	rng *rand.Rand
}

// NewRandomLNS builds a RandomLNS operator with its own seeded random
// source, independent of every other operator's.
func NewRandomLNS(vars []assignment.Var, k int, seed int64) (*RandomLNS, error) {
	if k <= 0 {
		return nil, ErrChainLengthNonPositive
	}
	base, err := lsoperator.NewVarOperator(vars, false)
	if err != nil {
		return nil, err
	}
	op := &RandomLNS{VarOperator: base, k: k, rng: rand.New(rand.NewSource(seed))}
	base.SetSelf(op)
	return op, nil
}

// MakeOneNeighbor always succeeds: it deactivates k random indices.
func (o *RandomLNS) MakeOneNeighbor() bool {
	size := o.Size()
	for i := 0; i < o.k; i++ {
		o.Deactivate(o.rng.Intn(size))
	}
	return true
}

// PathLNS deactivates number_of_chunks chains of chunk_size consecutive
// nodes, one starting at each base node, and optionally re-emits every
// currently-inactive node as deactivated to force its reinsertion to be
// reconsidered.
type PathLNS struct {
	*pathop.Base

	chunkSize        int
	unactiveFragments bool
}

// NewPathLNS builds a PathLNS operator with numberOfChunks base nodes.
func NewPathLNS(nextVars, pathVars []assignment.Var, isEnd []bool, numberOfChunks, chunkSize int, unactiveFragments bool) (*PathLNS, error) {
	if numberOfChunks <= 0 {
		return nil, ErrChunkCountNonPositive
	}
	if chunkSize <= 0 {
		return nil, ErrChainLengthNonPositive
	}
	base, err := pathop.NewBase(nextVars, pathVars, isEnd, numberOfChunks, false)
	if err != nil {
		return nil, err
	}
	op := &PathLNS{Base: base, chunkSize: chunkSize, unactiveFragments: unactiveFragments}
	base.SetSelf(base)
	base.SetNeighbor(op)
	return op, nil
}

// MakeNeighbor deactivates a chunk starting at each base node, plus every
// inactive node when unactiveFragments is set, and always succeeds.
func (o *PathLNS) MakeNeighbor() bool {
	for i := 0; i < o.Arity(); i++ {
		o.deactivateChain(o.BaseNode(i))
	}
	o.deactivateInactives()
	return true
}

func (o *PathLNS) deactivateChain(node int) {
	current := node
	for i := 0; i < o.chunkSize && !o.IsPathEnd(current); i++ {
		o.DeactivateNode(current)
		current = o.Next(current)
	}
}

func (o *PathLNS) deactivateInactives() {
	if !o.unactiveFragments {
		return
	}
	for _, i := range o.Inactives() {
		o.DeactivateNode(i)
	}
}
