package memstream

import "errors"

// Errors returned by stream operations.
var (
	// ErrClosed indicates use of a stream after Close.
	ErrClosed = errors.New("stream is closed")

	// ErrUnknownStrategy indicates an unrecognized stream strategy.
	ErrUnknownStrategy = errors.New("unknown stream strategy")
)
