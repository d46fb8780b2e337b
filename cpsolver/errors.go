// errors.go — sentinel errors for the cpsolver package.
package cpsolver

import "errors"

// ErrNilReference indicates Solve was called with a nil reference
// assignment; structural misuse, per spec.md §7.
var ErrNilReference = errors.New("cpsolver: nil reference assignment")

// ErrNilDelta indicates Solve was called with a nil delta.
var ErrNilDelta = errors.New("cpsolver: nil delta assignment")
