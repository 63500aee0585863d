package escape

import (
	"io"
	"strings"
)

// Parallel tables mapping control bytes to their escape mnemonics.
// escapeChars[i] escapes to '\' followed by escapeNames[i].
const (
	escapeChars = "\"\a\b\t\n\v\f\r\\"
	escapeNames = "\"abtnvfr\\"
)

// isPrint reports whether b is a printable ASCII byte.
func isPrint(b byte) bool {
	return b >= 0x20 && b < 0x7f
}

// Escape returns a printable form of the first count bytes of text.
//
// Bytes in the escape table become a two-byte backslash sequence (\n, \t,
// ...), other non-printable bytes become a three-digit octal sequence
// (\001), and printable bytes are copied unchanged. A negative count, or a
// count larger than len(text), escapes all of text. The result never
// contains raw control bytes.
func Escape(text []byte, count int) string {
	if count < 0 || count > len(text) {
		count = len(text)
	}

	// First pass: compute the output length so we allocate exactly once.
	n := 0
	for _, b := range text[:count] {
		switch {
		case strings.IndexByte(escapeChars, b) >= 0:
			n += 2
		case !isPrint(b):
			n += 4
		default:
			n++
		}
	}

	out := make([]byte, 0, n)
	for _, b := range text[:count] {
		switch i := strings.IndexByte(escapeChars, b); {
		case i >= 0:
			out = append(out, '\\', escapeNames[i])
		case !isPrint(b):
			out = append(out, '\\', '0'+(b>>6)&7, '0'+(b>>3)&7, '0'+b&7)
		default:
			out = append(out, b)
		}
	}
	return string(out)
}

// Unescape collapses escape sequences in the first length bytes of text
// back to their raw bytes.
//
// A backslash followed by a byte in the mnemonic table becomes the
// corresponding control byte. A backslash followed by anything else is
// copied literally, so octal sequences produced by Escape are not decoded.
// A negative length, or a length larger than len(text), unescapes all of
// text.
func Unescape(text string, length int) []byte {
	if length < 0 || length > len(text) {
		length = len(text)
	}

	size := 0
	for i := 0; i < length; i, size = i+1, size+1 {
		if text[i] == '\\' && i+1 < len(text) && strings.IndexByte(escapeNames, text[i+1]) >= 0 {
			i++
		}
	}

	out := make([]byte, 0, size)
	for i := 0; i < length; i++ {
		if text[i] == '\\' && i+1 < len(text) {
			if j := strings.IndexByte(escapeNames, text[i+1]); j >= 0 {
				out = append(out, escapeChars[j])
				i++
				continue
			}
		}
		out = append(out, text[i])
	}
	return out
}

// Fprint writes the escaped form of the first count bytes of text to w and
// returns the number of bytes the escaped form contains. A nil w computes
// the length without writing. A nil text writes the literal token "nil" and
// returns 3 regardless of count.
func Fprint(w io.Writer, text []byte, count int) (int, error) {
	if text == nil {
		if w != nil {
			if _, err := io.WriteString(w, "nil"); err != nil {
				return 0, err
			}
		}
		return 3, nil
	}

	esc := Escape(text, count)
	if w != nil {
		if _, err := io.WriteString(w, esc); err != nil {
			return 0, err
		}
	}
	return len(esc), nil
}
