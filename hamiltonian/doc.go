// Package hamiltonian solves the minimum-cost Hamiltonian path problem
// exactly on a small directed cost matrix: starting at node 0, visit
// every other node exactly once at minimum total arc cost, ending
// wherever that is cheapest (no return arc to 0).
//
// It is the black-box solver TSPOpt and TSPLns delegate to once they
// have extracted a small chain of path nodes and built the pairwise
// arc-cost matrix between them: both only ever need a path, not a
// cycle, since the chain's own endpoints are free to land anywhere.
//
// Solved with Held-Karp dynamic programming over subset bitmasks:
// O(n²·2ⁿ) time, O(n·2ⁿ) memory. That bounds the matrix size a caller
// may reasonably hand this solver to a few dozen nodes at most.
package hamiltonian
