package feed

import (
	"errors"
	"fmt"
)

// Sentinel errors.
var (
	ErrFollowerClosed   = errors.New("follower closed")
	ErrAlreadyFollowing = errors.New("follow already called")

	// ErrTailerStopped wraps the error that ended following. It is the last
	// error sent before the channels close.
	ErrTailerStopped = errors.New("tailer stopped")
)

// RecordError reports a line that could not be turned into a Record.
// The follower skips the line and continues.
type RecordError struct {
	Line int // 1-based count of lines read by the follower
	Err  error
}

func (e *RecordError) Error() string {
	return fmt.Sprintf("record at line %d: %v", e.Line, e.Err)
}

func (e *RecordError) Unwrap() error {
	return e.Err
}

// Errors wrapped by RecordError.
var (
	ErrLineTooLong    = errors.New("line too long")
	ErrMissingMessage = errors.New("missing message field")
)
