package readbuf

import "errors"

// Errors returned by bounded read operations.
var (
	// ErrCapExceeded indicates a result reached the configured size cap.
	ErrCapExceeded = errors.New("size cap exceeded")
)
