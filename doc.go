// Package localsearch is a from-scratch local search engine for a
// constraint solver — the neighborhood-exploration half of a CP solver,
// re-expressed in Go.
//
// 🚀 What is localsearch?
//
//	A single-threaded, cooperative engine that, given a feasible starting
//	assignment of decision variables, repeatedly:
//		• generates a candidate neighbor assignment with an operator
//		• evaluates it incrementally through a stack of filters
//		• hands accepted candidates to a nested constraint-solver commit
//
// ✨ Design
//
//   - Operators own their own value/activation arrays and emit deltas —
//     never assignments — so the driver can revert cheaply between tries.
//   - Path operators (2-opt, relocate, exchange, cross, Lin-Kernighan,
//     TSP-opt, TSP-LNS, ...) layer a next[]-array linked-list view over the
//     same delta protocol.
//   - Filters are deliberately dumb and fast: a domain check, an
//     incrementally-cached objective bound. Anything expensive belongs in
//     the (out of scope) constraint propagation this engine calls into.
//
// Packages:
//
//	assignment/   — Var, SequenceVar, Assignment and its element containers
//	lsoperator/   — variable-state operator base (scalar and sequence)
//	pathop/       — next[]-array path operator base and chain primitives
//	lsops/        — concrete operators (2-opt, relocate, exchange, ...)
//	combinator/   — operator combinators (compound, random, limit)
//	filter/       — domain and objective filters
//	solutionpool/ — pluggable reference-assignment source
//	hamiltonian/  — black-box Hamiltonian-path solver used by TSP operators
//	cpsolver/     — minimal nested-solve collaborator (stands in for the CP
//	                solver's propagation/backtracking engine, out of scope)
//	search/       — FindOneNeighbor loop and the LocalSearch decision builder
//
// See DESIGN.md at the repository root for the grounding notes against
// the source this engine reimplements (OR-Tools'
// constraint_solver/local_search.cc).
package localsearch
