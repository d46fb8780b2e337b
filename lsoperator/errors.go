package lsoperator

import "errors"

// ErrVarNotInAssignment indicates Start was called with an assignment
// that does not contain every variable this operator was constructed
// with — structural misuse, fatal to the caller.
var ErrVarNotInAssignment = errors.New("lsoperator: variable not found in start assignment")

// ErrNoVars indicates an operator was constructed with zero tracked
// variables.
var ErrNoVars = errors.New("lsoperator: operator has no tracked variables")
