// Package cpsolver is the minimal nested-solve collaborator the search
// driver calls into once it has a filter-accepted delta. spec.md §1
// places the real constraint solver's propagation/backtracking machinery
// out of scope ("treated as external collaborators, referenced only by
// interface"); this package is that interface plus a small reference
// implementation good enough to drive and test the engine without a real
// CP solver wired in.
//
// NestedSolver stands in for the handful of Solver nested-API calls
// spec.md §6 lists (MakeAssignment, MakeRestoreAssignment,
// MakeStoreAssignment, Compose, SolveAndCommit): restore the reference
// assignment, apply the accepted delta atomically, optionally let a
// SubDecisionBuilder refine the result further, and report whether the
// nested solve committed.
package cpsolver
