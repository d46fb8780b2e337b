// Package lsops provides the concrete local-search operators: 2-opt,
// Relocate, Exchange, Cross, the inactive-node family
// (MakeActive/MakeInactive/SwapActive/ExtendedSwapActive), the
// TSP-flavored operators (TSPOpt, TSPLns, LinKernighan), the large
// neighborhood operators (PathLNS, SimpleLNS, RandomLNS), and the two
// purely scalar operators (MoveTowardTarget, Increment/Decrement).
//
// Every path-based operator here embeds *pathop.Base and registers
// itself as the pathop.Neighbor implementation; the purely scalar ones
// embed *lsoperator.VarOperator directly.
package lsops
