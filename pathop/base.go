package pathop

import (
	"fmt"

	"github.com/katalvlaran/localsearch/assignment"
	"github.com/katalvlaran/localsearch/lsoperator"
)

// Neighbor is the path-operator-specific half of the contract: produce
// one candidate given the current base-node cursor, mutating state via
// the inherited SetNext/MoveChain/etc. primitives.
type Neighbor interface {
	MakeNeighbor() bool
}

// SamePathPolicy lets a concrete operator require base i to land on the
// same path as base i-1. Operators that don't need this simply don't
// implement it; Base treats an unimplemented policy as "no constraint".
type SamePathPolicy interface {
	OnSamePathAsPreviousBase(i int) bool
}

// RestartPolicy overrides where a restarted base node is replanted.
// Default is the start of the base's current path.
type RestartPolicy interface {
	GetBaseNodeRestartPosition(i int) int
}

// Base is the path-operator base: it embeds a *lsoperator.VarOperator
// over the next[] variables (and, when path variables are tracked, the
// path[] variables appended after them), and layers the chain/enumeration
// primitives on top.
type Base struct {
	*lsoperator.VarOperator

	numberOfNexts  int
	ignorePathVars bool
	isEnd          []bool // size numberOfNexts; fixed path-end markers

	pathStarts []int
	inactive   []bool // size numberOfNexts
	inactives  []int  // ordered list form of inactive, rebuilt each OnStart

	baseNodes []int
	endNodes  []int
	basePaths []int

	justStarted bool
	firstStart  bool

	neighbor Neighbor
}

// NewBase builds a path operator base. nextVars has length numberOfNexts;
// when pathVars is non-nil it must have the same length and is appended
// after nextVars as tracked variables. isEnd marks, per next-index, the
// fixed path-end nodes. arity is the number of base-node cursors (B).
// incremental declares this operator's IsIncremental() capability (true
// only for TwoOpt and LinKernighan among the operators in package lsops);
// MakeOneNeighbor always calls RevertChanges(true), so operators that
// pass incremental=false get a full revert before every MakeNeighbor
// attempt.
func NewBase(nextVars []assignment.Var, pathVars []assignment.Var, isEnd []bool, arity int, incremental bool) (*Base, error) {
	if arity <= 0 {
		return nil, ErrArityNonPositive
	}
	numberOfNexts := len(nextVars)
	if len(isEnd) != numberOfNexts {
		return nil, fmt.Errorf("pathop: isEnd length %d != number_of_nexts %d: %w", len(isEnd), numberOfNexts, ErrNumberOfNextsMismatch)
	}
	vars := nextVars
	ignorePathVars := pathVars == nil
	if !ignorePathVars {
		if len(pathVars) != numberOfNexts {
			return nil, fmt.Errorf("pathop: path var length %d != number_of_nexts %d: %w", len(pathVars), numberOfNexts, ErrNumberOfNextsMismatch)
		}
		vars = append(append([]assignment.Var(nil), nextVars...), pathVars...)
	}
	vo, err := lsoperator.NewVarOperator(vars, incremental)
	if err != nil {
		return nil, err
	}
	b := &Base{
		VarOperator:    vo,
		numberOfNexts:  numberOfNexts,
		ignorePathVars: ignorePathVars,
		isEnd:          append([]bool(nil), isEnd...),
		baseNodes:      make([]int, arity),
		endNodes:       make([]int, arity),
		basePaths:      make([]int, arity),
		firstStart:     true,
	}
	return b, nil
}

// SetNeighbor registers the operator-specific Neighbor implementation.
// Concrete operators call this once after constructing their embedded
// Base, together with SetSelf (passing the Base, or the operator itself
// when it supplies its own MakeOneNeighbor, as the inactive-node
// operators in package lsops do) so VarOperator drives MakeOneNeighbor.
func (b *Base) SetNeighbor(n Neighbor) { b.neighbor = n }

// NumberOfNexts returns the number of next[] slots (N).
func (b *Base) NumberOfNexts() int { return b.numberOfNexts }

// Arity returns the number of base-node cursors (B).
func (b *Base) Arity() int { return len(b.baseNodes) }

// Next returns the current next[i].
func (b *Base) Next(i int) int { return int(b.Value(i)) }

// OldNext returns the reference next[i].
func (b *Base) OldNext(i int) int { return int(b.OldValue(i)) }

// Path returns the current path[i], or i's own path-start-free default
// (0) when path variables are not tracked.
func (b *Base) Path(i int) int {
	if b.ignorePathVars {
		return 0
	}
	return int(b.Value(b.numberOfNexts + i))
}

// IsPathEnd reports whether i is a fixed path-end node.
func (b *Base) IsPathEnd(i int) bool { return b.isEnd[i] }

// IsInactive reports whether i is currently excluded from every path
// (next[i] = i and i is not a path end).
func (b *Base) IsInactive(i int) bool { return b.Next(i) == i && !b.IsPathEnd(i) }

// Inactives returns the ordered list of inactive node indices,
// snapshotted at the last Start — used by lsops.PathLNS.
func (b *Base) Inactives() []int { return b.inactives }

// PathStarts returns the nodes with no predecessor, recomputed at Start.
func (b *Base) PathStarts() []int { return b.pathStarts }

// BaseNode returns the current cursor position of base i.
func (b *Base) BaseNode(i int) int { return b.baseNodes[i] }

// EndNode returns the snapshotted cursor position of base i taken at
// Start, used by CheckEnds to detect a full cycle without progress.
func (b *Base) EndNode(i int) int { return b.endNodes[i] }

// BasePath returns the path index currently assigned to base i.
func (b *Base) BasePath(i int) int { return b.basePaths[i] }

// StartNode returns the start of the path currently assigned to base i.
func (b *Base) StartNode(i int) int { return b.pathStarts[b.basePaths[i]] }

// SetNext sets next[i] = j and, if path variables are tracked, path[i] = path.
func (b *Base) SetNext(i, j, path int) {
	b.SetValue(i, int64(j))
	if !b.ignorePathVars {
		b.SetValue(b.numberOfNexts+i, int64(path))
	}
}

// CheckChainValidity walks Next from before_chain until chain_end,
// bounded by numberOfNexts; rejects before_chain == chain_end,
// before_chain == exclude, a path end encountered early, or exclude
// found on the chain.
func (b *Base) CheckChainValidity(beforeChain, chainEnd, exclude int) bool {
	if beforeChain == chainEnd || beforeChain == exclude {
		return false
	}
	current := beforeChain
	size := 0
	for current != chainEnd {
		if b.IsPathEnd(current) || size > b.numberOfNexts {
			return false
		}
		current = b.Next(current)
		if current == exclude {
			return false
		}
		size++
	}
	return true
}

// MoveChain splices the chain (before_chain, ..., chain_end] after
// destination.
func (b *Base) MoveChain(beforeChain, chainEnd, destination int) bool {
	if !b.CheckChainValidity(beforeChain, chainEnd, destination) ||
		b.IsPathEnd(chainEnd) || b.IsPathEnd(destination) {
		return false
	}
	destPath := b.Path(destination)
	afterChain := b.Next(chainEnd)
	b.SetNext(chainEnd, b.Next(destination), destPath)
	if !b.ignorePathVars {
		current := destination
		next := b.Next(beforeChain)
		for current != chainEnd {
			b.SetNext(current, next, destPath)
			current = next
			next = b.Next(next)
		}
	} else {
		b.SetNext(destination, b.Next(beforeChain), destPath)
	}
	b.SetNext(beforeChain, afterChain, b.Path(beforeChain))
	return true
}

// ReverseChain reverses the open chain strictly between beforeChain and
// afterChain, writing the new last node of the reversed chain into
// chainLast. Returns false if the chain is empty or invalid.
func (b *Base) ReverseChain(beforeChain, afterChain int, chainLast *int) bool {
	if !b.CheckChainValidity(beforeChain, afterChain, -1) {
		return false
	}
	path := b.Path(beforeChain)
	current := b.Next(beforeChain)
	if current == afterChain {
		return false
	}
	currentNext := b.Next(current)
	b.SetNext(current, afterChain, path)
	for currentNext != afterChain {
		next := b.Next(currentNext)
		b.SetNext(currentNext, current, path)
		current = currentNext
		currentNext = next
	}
	b.SetNext(beforeChain, current, path)
	*chainLast = current
	return true
}

// MakeActive inserts inactive node immediately after destination.
func (b *Base) MakeActive(node, destination int) bool {
	if b.IsPathEnd(destination) {
		return false
	}
	destPath := b.Path(destination)
	b.SetNext(node, b.Next(destination), destPath)
	b.SetNext(destination, node, destPath)
	return true
}

// MakeChainInactive deactivates every node in (before_chain, chain_end]
// and stitches before_chain directly to what followed the chain.
func (b *Base) MakeChainInactive(beforeChain, chainEnd int) bool {
	if !b.CheckChainValidity(beforeChain, chainEnd, -1) || b.IsPathEnd(chainEnd) {
		return false
	}
	afterChain := b.Next(chainEnd)
	current := b.Next(beforeChain)
	for current != afterChain {
		next := b.Next(current)
		b.SetNext(current, current, -1)
		current = next
	}
	b.SetNext(beforeChain, afterChain, b.Path(beforeChain))
	return true
}

// OnStart implements lsoperator.StartHook: rebuilds path starts and
// inactives from the reference assignment, then (re)places base nodes.
func (b *Base) OnStart() {
	b.initializePathStarts()
	b.initializeInactives()
	b.initializeBaseNodes()
	type nodeInitializer interface{ OnNodeInitialization() }
	if ni, ok := b.neighbor.(nodeInitializer); ok {
		ni.OnNodeInitialization()
	}
}

func (b *Base) initializePathStarts() {
	b.pathStarts = b.pathStarts[:0]
	hasPrev := make([]bool, b.numberOfNexts)
	for i := 0; i < b.numberOfNexts; i++ {
		next := b.OldNext(i)
		if next < b.numberOfNexts {
			hasPrev[next] = true
		}
	}
	for i := 0; i < b.numberOfNexts; i++ {
		if !hasPrev[i] {
			b.pathStarts = append(b.pathStarts, i)
		}
	}
}

func (b *Base) initializeInactives() {
	if b.inactive == nil {
		b.inactive = make([]bool, b.numberOfNexts)
	}
	b.inactives = b.inactives[:0]
	for i := 0; i < b.numberOfNexts; i++ {
		b.inactive[i] = b.OldNext(i) == i && !b.IsPathEnd(i)
		if b.inactive[i] {
			b.inactives = append(b.inactives, i)
		}
	}
}

func (b *Base) initializeBaseNodes() {
	type initPositioner interface{ InitPosition() bool }
	requestsReset := false
	if ip, ok := b.neighbor.(initPositioner); ok {
		requestsReset = ip.InitPosition()
	}
	if b.firstStart || requestsReset {
		for i := range b.baseNodes {
			b.basePaths[i] = 0
			b.baseNodes[i] = b.pathStarts[0]
		}
		b.firstStart = false
	}

	type restartAtStartPolicy interface{ RestartAtPathStartOnSynchronize() bool }
	restartAtStart := false
	if rp, ok := b.neighbor.(restartAtStartPolicy); ok {
		restartAtStart = rp.RestartAtPathStartOnSynchronize()
	}
	for i := range b.baseNodes {
		node := b.baseNodes[i]
		if restartAtStart || b.IsInactive(node) {
			node = b.pathStarts[b.basePaths[i]]
			b.baseNodes[i] = node
		}
		b.endNodes[i] = node
	}
	for i := 1; i < len(b.baseNodes); i++ {
		if b.onSamePathAsPreviousBase(i) && !b.onSamePath(b.baseNodes[i-1], b.baseNodes[i]) {
			b.baseNodes[i] = b.baseNodes[i-1]
			b.endNodes[i] = b.baseNodes[i-1]
		}
	}
	b.justStarted = true
}

func (b *Base) onSamePathAsPreviousBase(i int) bool {
	if sp, ok := b.neighbor.(SamePathPolicy); ok {
		return sp.OnSamePathAsPreviousBase(i)
	}
	return false
}

func (b *Base) restartPosition(i int) int {
	if rp, ok := b.neighbor.(RestartPolicy); ok {
		return rp.GetBaseNodeRestartPosition(i)
	}
	return b.StartNode(i)
}

func (b *Base) onSamePath(node1, node2 int) bool {
	if b.IsInactive(node1) != b.IsInactive(node2) {
		return false
	}
	for n := node1; !b.IsPathEnd(n); n = b.OldNext(n) {
		if n == node2 {
			return true
		}
	}
	for n := node2; !b.IsPathEnd(n); n = b.OldNext(n) {
		if n == node1 {
			return true
		}
	}
	return false
}

func (b *Base) checkEnds() bool {
	for i := range b.baseNodes {
		if b.baseNodes[i] != b.endNodes[i] {
			return true
		}
	}
	return false
}

// IncrementPosition advances the base-node enumeration cursor.
func (b *Base) IncrementPosition() bool {
	if b.justStarted {
		b.justStarted = false
		return true
	}

	numberOfPaths := len(b.pathStarts)
	lastRestarted := len(b.baseNodes)
	for i := len(b.baseNodes) - 1; i >= 0; i-- {
		if !b.IsPathEnd(b.baseNodes[i]) {
			b.baseNodes[i] = b.OldNext(b.baseNodes[i])
			break
		}
		b.baseNodes[i] = b.StartNode(i)
		lastRestarted = i
	}
	for i := lastRestarted; i < len(b.baseNodes); i++ {
		b.baseNodes[i] = b.restartPosition(i)
	}
	if lastRestarted > 0 {
		return b.checkEnds()
	}
	for i := len(b.baseNodes) - 1; i >= 0; i-- {
		nextPathIndex := b.basePaths[i] + 1
		if nextPathIndex < numberOfPaths {
			b.basePaths[i] = nextPathIndex
			b.baseNodes[i] = b.pathStarts[nextPathIndex]
			if i == 0 || !b.onSamePathAsPreviousBase(i) {
				return b.checkEnds()
			}
		} else {
			b.basePaths[i] = 0
			b.baseNodes[i] = b.pathStarts[0]
		}
	}
	return b.checkEnds()
}

// DeactivateNode deactivates next[i], and, when path variables are
// tracked, the mirrored path[i] slot.
func (b *Base) DeactivateNode(i int) {
	b.Deactivate(i)
	if !b.ignorePathVars {
		b.Deactivate(b.numberOfNexts + i)
	}
}

// ResetPosition forces the next IncrementPosition call to report the
// current cursor unchanged, as if freshly started — used by the
// inactive-node operators in package lsops (MakeActive, SwapActive,
// ExtendedSwapActive) that restart the path-operator enumeration for
// each new inactive-node candidate.
func (b *Base) ResetPosition() { b.justStarted = true }

// MakeOneNeighbor implements lsoperator.NeighborMaker: the default
// path-operator drive loop, walking the base-node cursor until the
// neighbor callback produces a candidate or the enumeration is exhausted.
func (b *Base) MakeOneNeighbor() bool {
	for b.IncrementPosition() {
		b.VarOperator.RevertChanges(true)
		if b.neighbor.MakeNeighbor() {
			return true
		}
	}
	return false
}
