package encode

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEncode is the class of every encoder failure.
var ErrEncode = errors.New("encode")

var (
	// ErrFrameSize is returned for a frame whose buffer does not match the
	// configured dimensions.
	ErrFrameSize = fmt.Errorf("%w: wrong frame size", ErrEncode)

	// ErrClosed is returned by WriteFrame after Close.
	ErrClosed = fmt.Errorf("%w: session closed", ErrEncode)
)

// ExitError reports an encoder process that did not exit cleanly.
type ExitError struct {
	// Err is the underlying wait or write error.
	Err error

	// Stderr is the tail of the process's diagnostic output.
	Stderr string
}

func (e *ExitError) Error() string {
	msg := "encode: encoder failed: " + e.Err.Error()
	if tail := strings.TrimSpace(e.Stderr); tail != "" {
		msg += ": " + tail
	}
	return msg
}

// Unwrap returns ErrEncode and the underlying error.
func (e *ExitError) Unwrap() []error {
	return []error{ErrEncode, e.Err}
}
