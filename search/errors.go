// errors.go — sentinel errors for the search package.
package search

import "errors"

// ErrReentrantNext indicates FindOneNeighbor.Next or LocalSearch.Next was
// called again before a prior call returned — a structural-misuse
// violation of the single-exploration invariant in spec.md §5.
var ErrReentrantNext = errors.New("search: reentrant Next call")

// ErrNilOperator indicates a FindOneNeighbor was built with a nil
// operator.
var ErrNilOperator = errors.New("search: nil operator")

// ErrNilPool indicates a FindOneNeighbor was built with a nil solution
// pool.
var ErrNilPool = errors.New("search: nil solution pool")

// ErrNilNestedSolver indicates a FindOneNeighbor was built with a nil
// NestedSolver.
var ErrNilNestedSolver = errors.New("search: nil nested solver")

// ErrSyncFrequencyNonPositive indicates WithSyncFrequency was called
// with a non-positive value.
var ErrSyncFrequencyNonPositive = errors.New("search: sync frequency must be positive")
