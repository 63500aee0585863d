package textpos

import (
	"io"
	"strings"

	"github.com/sshipway/augeas/internal/escape"
)

// ContextWindow is the number of text bytes shown on each side of the
// offset.
const ContextWindow = 28

// Format renders the context around pos as a single line of the form
// "<left|=|right>\n". Each side holds the escaped form of up to
// ContextWindow bytes of text; a side whose escaped form is shorter than
// the window is padded with spaces to the window width (including the
// bracket) so the "|=|" marker lines up across messages, and a side that
// fills the window gets no padding. pos is clamped into [0, len(text)].
func Format(text []byte, pos int) string {
	if pos < 0 {
		pos = 0
	}
	if pos > len(text) {
		pos = len(text)
	}

	before := pos
	if before > ContextWindow {
		before = ContextWindow
	}
	left := escape.Escape(text[pos-before:pos], before)
	right := escape.Escape(text[pos:], ContextWindow)

	var b strings.Builder
	if pad := ContextWindow - len(left) - 1; pad > 0 {
		b.WriteString(strings.Repeat(" ", pad))
	}
	b.WriteByte('<')
	b.WriteString(left)
	b.WriteString("|=|")
	b.WriteString(right)
	b.WriteByte('>')
	if pad := ContextWindow - len(right) - 1; pad > 0 {
		b.WriteString(strings.Repeat(" ", pad))
	}
	b.WriteByte('\n')
	return b.String()
}

// Fprint writes the formatted context around pos to w.
func Fprint(w io.Writer, text []byte, pos int) error {
	_, err := io.WriteString(w, Format(text, pos))
	return err
}
