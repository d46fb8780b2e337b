// Package combinator concatenates local-search operators into bigger
// ones: CompoundOperator tries children in a rank order produced by an
// evaluator callback, RandomCompoundOperator tries them in a freshly
// shuffled order, and NeighborhoodLimit caps how many times a wrapped
// operator may be asked for a neighbor before reporting exhaustion.
//
// All three implement Operator, a small capability interface any
// concrete operator satisfies through its promoted Start/MakeNextNeighbor
// methods, so combinators nest freely: a CompoundOperator can wrap other
// CompoundOperators or NeighborhoodLimit-wrapped operators.
package combinator
