// Package filter provides the acceptance filters that gate a candidate
// delta before the search commits to it: VariableDomainFilter rejects
// any value outside its variable's current domain, and ObjectiveFilter
// (through its Binary and Ternary evaluator variants) rejects any
// candidate that does not move a tracked objective value inside a
// required bound.
//
// ObjectiveFilter maintains a per-variable contribution cache so most
// Accept calls only need to re-evaluate the handful of variables a delta
// actually touches, folding them into a running Operation (sum, product,
// or running min/max) rather than recomputing the whole objective from
// scratch.
package filter
