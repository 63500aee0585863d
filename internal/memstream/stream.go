package memstream

import (
	"fmt"
	"io"
)

// Stream accumulates written bytes until Close, which finalizes the stream
// and hands the accumulated buffer to the caller.
type Stream interface {
	io.Writer
	io.StringWriter

	// Len returns the number of bytes written so far.
	Len() int

	// Close finalizes the stream and returns the accumulated bytes.
	// The returned buffer is owned by the caller. Close fails with
	// ErrCapExceeded if the stream reached the 32 MiB cap, and with
	// ErrClosed if the stream was already closed; in every failure case
	// the accumulated bytes are discarded.
	Close() ([]byte, error)
}

// Strategy selects a Stream implementation.
type Strategy int

const (
	// StrategyMemory accumulates writes directly in a growable buffer.
	StrategyMemory Strategy = iota

	// StrategyFile spools writes to a temporary backing file that is
	// drained and removed at close time.
	StrategyFile
)

// String returns the configuration name of the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyMemory:
		return "memory"
	case StrategyFile:
		return "file"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// ParseStrategy converts a configuration value to a Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "memory":
		return StrategyMemory, nil
	case "file":
		return StrategyFile, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}
}

// New returns a Stream using the memory strategy.
func New() Stream {
	return &bufferStream{}
}

// Open returns a Stream using the given strategy.
func Open(strategy Strategy) (Stream, error) {
	switch strategy {
	case StrategyMemory:
		return &bufferStream{}, nil
	case StrategyFile:
		return openFileStream()
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownStrategy, strategy)
	}
}

// grow returns buf with capacity for at least size+need bytes. Capacity
// grows by 1.5x, rounded up to satisfy the immediate request; the first
// size bytes are preserved.
func grow(buf []byte, size, need int) []byte {
	if size+need <= cap(buf) {
		return buf[:cap(buf)]
	}
	alloc := cap(buf) + cap(buf)/2
	if alloc < size+need {
		alloc = size + need
	}
	grown := make([]byte, alloc)
	copy(grown, buf[:size])
	return grown
}
