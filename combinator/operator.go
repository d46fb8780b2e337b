package combinator

import "github.com/katalvlaran/localsearch/assignment"

// Operator is the capability every local-search operator exposes: start
// a fresh exploration from a reference assignment, then produce
// candidates one at a time. lsoperator.VarOperator, lsoperator.SequenceOperator
// and pathop.Base all satisfy it through their promoted methods, as does
// any other Operator wrapped by a combinator.
type Operator interface {
	Start(a *assignment.Assignment) error
	MakeNextNeighbor(delta, deltadelta *assignment.Assignment) bool
}
