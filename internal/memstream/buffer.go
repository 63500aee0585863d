package memstream

import "github.com/sshipway/augeas/internal/readbuf"

// bufferStream is the direct strategy: writes land in a growable in-memory
// buffer and Close hands back the buffer already maintained.
type bufferStream struct {
	buf    []byte
	size   int
	closed bool
}

func (s *bufferStream) Write(p []byte) (int, error) {
	if s.closed {
		return 0, ErrClosed
	}
	s.buf = grow(s.buf, s.size, len(p))
	copy(s.buf[s.size:], p)
	s.size += len(p)
	return len(p), nil
}

func (s *bufferStream) WriteString(text string) (int, error) {
	if s.closed {
		return 0, ErrClosed
	}
	s.buf = grow(s.buf, s.size, len(text))
	copy(s.buf[s.size:], text)
	s.size += len(text)
	return len(text), nil
}

func (s *bufferStream) Len() int {
	return s.size
}

func (s *bufferStream) Close() ([]byte, error) {
	if s.closed {
		return nil, ErrClosed
	}
	s.closed = true

	if s.size >= readbuf.MaxReadLen {
		s.buf = nil
		s.size = 0
		return nil, readbuf.ErrCapExceeded
	}

	out := s.buf[:s.size:s.size]
	s.buf = nil
	return out, nil
}
