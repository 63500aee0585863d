package escape

import (
	"bytes"
	"strings"
	"testing"
)

func TestEscape(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		count int
		want  string
	}{
		{"plain", "hello", -1, "hello"},
		{"empty", "", -1, ""},
		{"newline", "a\nb", -1, `a\nb`},
		{"tab", "a\tb", -1, `a\tb`},
		{"quote", `say "hi"`, -1, `say \"hi\"`},
		{"backslash", `a\b`, -1, `a\\b`},
		{"all named", "\"\a\b\t\n\v\f\r\\", -1, `\"\a\b\t\n\v\f\r\\`},
		{"octal low", "\x01", -1, `\001`},
		{"octal nul", "\x00", -1, `\000`},
		{"octal high", "\x1f", -1, `\037`},
		{"octal top bit", "\xff", -1, `\377`},
		{"del", "\x7f", -1, `\177`},
		{"space kept", "a b", -1, "a b"},
		{"count clamps high", "abc", 100, "abc"},
		{"count prefix", "a\nbc", 2, `a\n`},
		{"count zero", "abc", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Escape([]byte(tt.text), tt.count)
			if got != tt.want {
				t.Errorf("Escape(%q, %d) = %q, want %q", tt.text, tt.count, got, tt.want)
			}
		})
	}
}

func TestEscapeCountClamping(t *testing.T) {
	text := []byte("a\tb\nc")

	full := Escape(text, len(text))
	if got := Escape(text, -1); got != full {
		t.Errorf("Escape with count -1 = %q, want %q", got, full)
	}
	if got := Escape(text, len(text)+100); got != full {
		t.Errorf("Escape with oversized count = %q, want %q", got, full)
	}
}

func TestUnescape(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		length int
		want   string
	}{
		{"plain", "hello", -1, "hello"},
		{"empty", "", -1, ""},
		{"newline", `a\nb`, -1, "a\nb"},
		{"all named", `\"\a\b\t\n\v\f\r\\`, -1, "\"\a\b\t\n\v\f\r\\"},
		{"unknown escape kept", `a\qb`, -1, `a\qb`},
		{"octal not decoded", `\001`, -1, `\001`},
		{"trailing backslash kept", `abc\`, -1, `abc\`},
		{"length clamps high", `a\nb`, 100, "a\nb"},
		{"length zero", `a\nb`, 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Unescape(tt.text, tt.length)
			if string(got) != tt.want {
				t.Errorf("Unescape(%q, %d) = %q, want %q", tt.text, tt.length, got, tt.want)
			}
		})
	}
}

func TestRoundTrip(t *testing.T) {
	// Every named control byte plus the printable ASCII range survives a
	// full escape/unescape cycle.
	var raw bytes.Buffer
	raw.WriteString("\"\a\b\t\n\v\f\r\\")
	for b := byte(0x20); b < 0x7f; b++ {
		raw.WriteByte(b)
	}

	esc := Escape(raw.Bytes(), -1)
	back := Unescape(esc, -1)
	if !bytes.Equal(back, raw.Bytes()) {
		t.Errorf("round trip mismatch:\n got %q\nwant %q", back, raw.Bytes())
	}
}

func TestUnescapeSinglePass(t *testing.T) {
	// A literal backslash pair followed by n collapses to backslash-n in
	// one pass; a second pass would decode it further. Only single-pass
	// semantics are promised.
	got := Unescape(`\\n`, -1)
	if string(got) != `\n` {
		t.Fatalf("Unescape(`\\\\n`) = %q, want %q", got, `\n`)
	}
	again := Unescape(string(got), -1)
	if string(again) != "\n" {
		t.Errorf("second pass = %q, want %q", again, "\n")
	}
}

func TestEscapeNeverEmitsRawControls(t *testing.T) {
	all := make([]byte, 256)
	for i := range all {
		all[i] = byte(i)
	}

	esc := Escape(all, -1)
	for i := 0; i < len(esc); i++ {
		if !isPrint(esc[i]) {
			t.Fatalf("escaped output contains non-printable byte %#x at %d", esc[i], i)
		}
	}
}

func TestFprint(t *testing.T) {
	var sb strings.Builder
	n, err := Fprint(&sb, []byte("a\nb"), -1)
	if err != nil {
		t.Fatalf("Fprint failed: %v", err)
	}
	if n != 4 {
		t.Errorf("expected 4 bytes, got %d", n)
	}
	if sb.String() != `a\nb` {
		t.Errorf("expected %q, got %q", `a\nb`, sb.String())
	}
}

func TestFprintNilWriter(t *testing.T) {
	n, err := Fprint(nil, []byte("a\nb"), -1)
	if err != nil {
		t.Fatalf("Fprint failed: %v", err)
	}
	if n != 4 {
		t.Errorf("expected length-only result 4, got %d", n)
	}
}

func TestFprintNilText(t *testing.T) {
	for _, count := range []int{-1, 0, 5, 100} {
		var sb strings.Builder
		n, err := Fprint(&sb, nil, count)
		if err != nil {
			t.Fatalf("Fprint failed: %v", err)
		}
		if n != 3 {
			t.Errorf("count %d: expected 3, got %d", count, n)
		}
		if sb.String() != "nil" {
			t.Errorf("count %d: expected %q, got %q", count, "nil", sb.String())
		}
	}
}
