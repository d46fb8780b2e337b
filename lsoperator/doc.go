// Package lsoperator provides the variable-state operator base shared by
// every concrete local-search operator: current/old value tracking,
// activation bitmaps, change-list bookkeeping, and the delta/deltadelta
// emission contract.
//
// VarOperator is the scalar base (one int64 value per tracked variable).
// SequenceOperator is the sequence analogue (forward/backward integer
// lists per tracked SequenceVar). Both are driven the same way: construct,
// register the NeighborMaker that supplies MakeOneNeighbor with SetSelf,
// call Start once per exploration, then call MakeNextNeighbor repeatedly
// until it returns false.
//
// Concrete operators embed *VarOperator (or *SequenceOperator) and register
// themselves as the NeighborMaker via SetSelf, the same "self" pattern the path
// operators in package pathop build on top of.
package lsoperator
