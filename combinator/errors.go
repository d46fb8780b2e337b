package combinator

import "errors"

// ErrLimitNonPositive indicates NeighborhoodLimit was built with a
// non-positive call limit.
var ErrLimitNonPositive = errors.New("combinator: limit must be positive")
