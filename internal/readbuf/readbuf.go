package readbuf

import (
	"fmt"
	"io"
	"io/fs"
	"os"
)

// MaxReadLen is the hard cap on any single file read, in bytes.
const MaxReadLen = 32 * 1024 * 1024

// readChunk is the minimum amount of free space requested per read round.
const readChunk = 8 * 1024

// ReadBounded reads r into a single buffer until EOF, reading no more than
// maxLen bytes in total. A source that yields exactly maxLen bytes is a
// clean success; enforcing a stricter ceiling is the caller's policy (see
// ReadFile). On a source error the partial buffer is discarded and the
// error returned.
func ReadBounded(r io.Reader, maxLen int) ([]byte, error) {
	var buf []byte
	size := 0

	for {
		// Grow so the next round has at least readChunk bytes of free
		// space, plus one reserved byte. Capacity grows by 1.5x, rounded
		// up to satisfy the immediate request.
		if size+readChunk+1 > cap(buf) {
			alloc := cap(buf) + cap(buf)/2
			if alloc < size+readChunk+1 {
				alloc = size + readChunk + 1
			}
			grown := make([]byte, alloc)
			copy(grown, buf[:size])
			buf = grown
		}
		buf = buf[:cap(buf)]

		requested := 0
		if size < maxLen {
			requested = maxLen - size
		}
		if avail := cap(buf) - size - 1; requested > avail {
			requested = avail
		}

		n, err := io.ReadFull(r, buf[size:size+requested])
		size += n

		if n != requested || requested == 0 {
			if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
				return nil, err
			}
			// Clip capacity so the caller owns exactly what was read.
			return buf[:size:size], nil
		}
	}
}

// ReadFile reads the file at path, capped at MaxReadLen.
//
// A file whose length reaches the cap is rejected with ErrCapExceeded even
// though the underlying read succeeded: the cap is a hard ceiling, not a
// truncation point. Lengths must also stay representable in a 32-bit
// signed size.
func ReadFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	defer f.Close()

	buf, err := ReadBounded(f, MaxReadLen)
	return checkCap(path, buf, err)
}

// ReadFileFS is ReadFile over an fs.FS, for callers that abstract the file
// system (in-memory file systems in tests, embedded trees).
func ReadFileFS(fsys fs.FS, path string) ([]byte, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	defer f.Close()

	buf, err := ReadBounded(f, MaxReadLen)
	return checkCap(path, buf, err)
}

// checkCap applies the outer read-cap policy shared by ReadFile and
// ReadFileFS.
func checkCap(path string, buf []byte, err error) ([]byte, error) {
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if len(buf) >= MaxReadLen || int64(len(buf)) != int64(int32(len(buf))) {
		return nil, fmt.Errorf("reading %s: %w", path, ErrCapExceeded)
	}
	return buf, nil
}
