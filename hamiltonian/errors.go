package hamiltonian

import "errors"

// ErrEmptyMatrix is returned when ChangeCostMatrix is given a 0x0 matrix.
var ErrEmptyMatrix = errors.New("hamiltonian: empty cost matrix")

// ErrNotSquare is returned when a row's length does not match the
// matrix size.
var ErrNotSquare = errors.New("hamiltonian: cost matrix is not square")

// ErrNoPath is returned when every arc out of some non-final node in
// every subset is Infinite, so no Hamiltonian path exists.
var ErrNoPath = errors.New("hamiltonian: no Hamiltonian path exists")

// Infinite marks the absence of an arc between two nodes, mirroring
// the distance-matrix convention of treating a missing edge as
// unusable rather than zero-cost.
const Infinite int64 = 1<<62 - 1
