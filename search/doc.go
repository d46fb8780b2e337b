// Package search implements the decision-builder state machine that
// stitches first-solution search, neighbor generation, filter
// acceptance, and constraint-solver commit together: FindOneNeighbor is
// the per-exploration loop of spec.md §4.7, and LocalSearch is the
// decision builder that composes a first-solution DecisionBuilder with
// it, surfacing a local-optimum signal when FindOneNeighbor can no
// longer produce an accepted neighbor.
//
// Single-threaded cooperative, per spec.md §5: FindOneNeighbor guards
// against reentrant Next calls with a cheap inUse bool rather than a
// mutex, the same habit the teacher repo applies elsewhere when a
// documented single-caller invariant is cheap to assert at runtime
// instead of silently trusted.
package search
