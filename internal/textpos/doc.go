// Package textpos renders positional context snippets for diagnostics.
//
// Given a byte offset into a text, Format shows the escaped text
// immediately before and after the offset, aligned inside a fixed-width
// window so errors from different positions line up visually:
//
//	                  <abcde|=|fghij>
//
// The window is measured in escaped bytes, matching what the reader sees.
package textpos
