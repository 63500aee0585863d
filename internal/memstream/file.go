package memstream

import (
	"fmt"
	"io"
	"os"

	"github.com/sshipway/augeas/internal/readbuf"
)

// fileStream is the indirect strategy: writes spool to a temporary backing
// file, which Close rewinds, drains through readbuf, and removes.
type fileStream struct {
	f      *os.File
	size   int
	closed bool
}

func openFileStream() (Stream, error) {
	f, err := os.CreateTemp("", "memstream-*")
	if err != nil {
		return nil, fmt.Errorf("opening stream backing store: %w", err)
	}
	return &fileStream{f: f}, nil
}

func (s *fileStream) Write(p []byte) (int, error) {
	if s.closed {
		return 0, ErrClosed
	}
	n, err := s.f.Write(p)
	s.size += n
	if err != nil {
		return n, fmt.Errorf("writing stream backing store: %w", err)
	}
	return n, nil
}

func (s *fileStream) WriteString(text string) (int, error) {
	if s.closed {
		return 0, ErrClosed
	}
	n, err := s.f.WriteString(text)
	s.size += n
	if err != nil {
		return n, fmt.Errorf("writing stream backing store: %w", err)
	}
	return n, nil
}

func (s *fileStream) Len() int {
	return s.size
}

func (s *fileStream) Close() ([]byte, error) {
	if s.closed {
		return nil, ErrClosed
	}
	s.closed = true

	name := s.f.Name()
	defer os.Remove(name)
	defer s.f.Close()

	if _, err := s.f.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("rewinding stream backing store: %w", err)
	}
	buf, err := readbuf.ReadBounded(s.f, readbuf.MaxReadLen)
	if err != nil {
		return nil, fmt.Errorf("draining stream backing store: %w", err)
	}
	if len(buf) >= readbuf.MaxReadLen {
		return nil, readbuf.ErrCapExceeded
	}
	return buf, nil
}
