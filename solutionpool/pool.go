package solutionpool

import "github.com/katalvlaran/localsearch/assignment"

// Pool tracks the reference solution a search driver explores from and
// commits accepted candidates into.
type Pool interface {
	// Initialize seeds the pool with the search's starting assignment.
	Initialize(a *assignment.Assignment)
	// RegisterNewSolution records a newly accepted solution.
	RegisterNewSolution(a *assignment.Assignment)
	// GetNextSolution copies the pool's current reference solution into a.
	GetNextSolution(a *assignment.Assignment)
	// SyncNeeded reports whether local now differs from the pool's
	// reference enough that the caller should resynchronize before
	// continuing to search from it.
	SyncNeeded(local *assignment.Assignment) bool
}

// DefaultPool is a single-assignment Pool: RegisterNewSolution replaces
// the reference outright, and SyncNeeded always reports false since
// there is only ever one writer.
type DefaultPool struct {
	reference *assignment.Assignment
}

// NewDefaultPool builds an empty DefaultPool; call Initialize before use.
func NewDefaultPool() *DefaultPool {
	return &DefaultPool{}
}

// Initialize copies a into the pool's reference solution.
func (p *DefaultPool) Initialize(a *assignment.Assignment) {
	p.reference = assignment.NewAssignment()
	p.reference.Copy(a)
}

// RegisterNewSolution replaces the reference solution with a copy of a.
func (p *DefaultPool) RegisterNewSolution(a *assignment.Assignment) {
	p.reference.Copy(a)
}

// GetNextSolution copies the reference solution into a.
func (p *DefaultPool) GetNextSolution(a *assignment.Assignment) {
	a.Copy(p.reference)
}

// SyncNeeded always reports false: DefaultPool never accumulates
// solutions from outside the driver that owns it.
func (p *DefaultPool) SyncNeeded(*assignment.Assignment) bool { return false }
