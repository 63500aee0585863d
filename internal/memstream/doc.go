// Package memstream accumulates written bytes and surrenders them as a
// single owned buffer on Close.
//
// Two interchangeable strategies implement the same Stream contract: the
// memory strategy grows an in-memory buffer directly, while the file
// strategy spools writes to a temporary backing file and drains it through
// readbuf at close time. Callers pick a strategy through Open, normally
// from configuration; behavior is identical up to the 32 MiB cap, beyond
// which Close fails rather than truncate.
//
// Streams are not safe for concurrent use.
package memstream
