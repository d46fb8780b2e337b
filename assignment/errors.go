// errors.go — sentinel errors for the assignment package.
//
// Error policy:
//   - Only sentinel variables are exposed.
//   - Callers use errors.Is to branch.
//   - Sentinels are never wrapped with formatted text at definition site;
//     call sites attach context with fmt.Errorf("...: %w", err).
package assignment

import "errors"

// ErrVarNotFound indicates a variable was looked up in an Assignment that
// does not contain it. Operators treat this as structural misuse: the
// caller promised the assignment covers every tracked variable.
var ErrVarNotFound = errors.New("assignment: variable not found")

// ErrIndexOutOfRange indicates a positional Element(i) access outside
// [0, Size()).
var ErrIndexOutOfRange = errors.New("assignment: index out of range")

// ErrDomainEmpty indicates a variable was constructed with min > max.
var ErrDomainEmpty = errors.New("assignment: empty domain")

// ErrSequenceLengthMismatch indicates a SequenceVarElement's forward
// sequence does not have the length its SequenceVar declares.
var ErrSequenceLengthMismatch = errors.New("assignment: sequence length mismatch")
