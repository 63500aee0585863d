// Package escape converts between raw text and a printable, escaped
// string-literal representation.
//
// Control bytes with a conventional single-letter name (newline, tab,
// backslash, ...) escape to a two-byte backslash sequence; any other
// non-printable byte escapes to a three-digit octal sequence such as \001.
// Unescape reverses only the named sequences: octal escapes pass through
// unchanged. This asymmetry is intentional — hand-authored literals use the
// named escapes, while octal output exists purely for display.
//
// All functions are pure and safe for concurrent use.
package escape
