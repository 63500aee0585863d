// Package readbuf reads bounded-size byte sources into memory.
//
// ReadBounded accumulates a source into a single growable buffer, growing
// capacity by 1.5x per round and never reading past a caller-supplied
// maximum. ReadFile layers a hard policy on top: results that fill the
// 32 MiB cap are rejected outright, so callers either get the complete
// file or an error, never a truncated buffer.
//
// Returned buffers are owned by the caller; no references are retained.
package readbuf
