package lsops

import "errors"

// ErrChainLengthNonPositive indicates Relocate/TSPOpt/PathLNS was built
// with a non-positive chain length.
var ErrChainLengthNonPositive = errors.New("lsops: chain length must be positive")

// ErrChunkCountNonPositive indicates PathLNS was built with a
// non-positive number of chunks.
var ErrChunkCountNonPositive = errors.New("lsops: number of chunks must be positive")

// ErrTargetLengthMismatch indicates MoveTowardTarget was built with a
// target slice whose length doesn't match the tracked variable count.
var ErrTargetLengthMismatch = errors.New("lsops: target length does not match variable count")
