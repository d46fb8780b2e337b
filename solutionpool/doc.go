// Package solutionpool provides the reference-solution store a search
// driver reads its starting point from and writes newly accepted
// solutions into. It is the seam through which a distributed or
// population-based search would swap in a shared pool; DefaultPool is
// the local single-solution implementation used when nothing more
// elaborate is required.
package solutionpool
