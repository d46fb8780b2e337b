package filter

import "github.com/katalvlaran/localsearch/assignment"

// VariableDomainFilter rejects a delta that assigns any activated
// element a value outside its variable's current domain.
type VariableDomainFilter struct{}

// NewVariableDomainFilter builds a VariableDomainFilter.
func NewVariableDomainFilter() *VariableDomainFilter { return &VariableDomainFilter{} }

// Synchronize is a no-op: this filter carries no state.
func (f *VariableDomainFilter) Synchronize(*assignment.Assignment) {}

// IsIncremental reports false: a domain check is memoryless, so the
// driver is free to short-circuit it on the first rejection in a filter
// stack.
func (f *VariableDomainFilter) IsIncremental() bool { return false }

// Accept reports whether every activated element of delta lies within
// its variable's domain.
func (f *VariableDomainFilter) Accept(delta, _ *assignment.Assignment) bool {
	container := delta.IntContainer()
	for i := 0; i < container.Size(); i++ {
		e := container.ElementAt(i)
		if e.Activated && !e.Var.Contains(e.Value) {
			return false
		}
	}
	return true
}
