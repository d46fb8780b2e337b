// Package pathop provides the path-operator base: a next[] linked-list
// view over one or more disjoint paths, with the primitives concrete
// path operators (package lsops) compose —
// MoveChain, ReverseChain, MakeActive, MakeChainInactive — plus the
// multi-index base-node enumeration cursor that drives neighbor
// generation.
//
// Base embeds *lsoperator.VarOperator over 2*numberOfNexts variables when
// path-id variables are tracked (numberOfNexts when they are not): the
// first numberOfNexts entries are next[i], the optional second block is
// path[i]. Concrete operators embed *Base and register themselves as the
// Neighbor implementation via SetNeighbor, the same self-registration
// lsoperator.VarOperator uses for MakeOneNeighbor.
package pathop
