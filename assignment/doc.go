// Package assignment provides the decision-variable handles and the
// ordered assignment container that operators, filters, and the search
// driver read and write.
//
// Var is an opaque decision-variable identity with a simple interval-plus-
// holes domain; SequenceVar identifies a variable whose value is an ordered
// list of integers (used by sequencing operators built on
// lsoperator.SequenceOperator). Assignment is an ordered sequence of
// elements, each describing one variable's current value and whether it
// is "activated" (present) in this particular assignment. This package
// is the concrete implementation the rest of the engine is built and
// tested against, since no external CP solver is wired into this
// module.
//
// Construction is cheap and allocation-light: FastAdd appends without a
// duplicate check (the caller is asserting the variable is not already
// present — operators rely on this for their delta containers, which are
// always built from a Clear()ed-or-fresh Assignment).
package assignment
