package pathop

import "errors"

// ErrArityNonPositive indicates a path operator was constructed with a
// non-positive base-node arity.
var ErrArityNonPositive = errors.New("pathop: arity must be positive")

// ErrNumberOfNextsMismatch indicates that isEnd, or a non-nil pathVars
// slice, passed to NewBase does not have the same length as nextVars.
var ErrNumberOfNextsMismatch = errors.New("pathop: variable count does not match number_of_nexts")
