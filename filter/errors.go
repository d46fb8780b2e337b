package filter

import "errors"

// ErrSecondaryLengthMismatch indicates a ternary objective filter was
// built with a secondary-variable slice whose length doesn't match the
// primary one.
var ErrSecondaryLengthMismatch = errors.New("filter: secondary variable length mismatch")
