package decode

import (
	"errors"
	"fmt"
)

// Line-level parse faults. A line that fails with one of these is skipped and
// decoding continues with the next line.
var (
	ErrFieldCount  = errors.New("unexpected field count")
	ErrNumber      = errors.New("non-numeric field")
	ErrDelimiter   = errors.New("unexpected delimiter structure")
	ErrTimestamp   = errors.New("invalid timestamp")
	ErrByteRange   = errors.New("byte value outside 0-255")
	ErrBlockSize   = errors.New("balance-mat block must be 58 bytes")
	ErrLineTooLong = errors.New("line too long")
)

// maxFaultText bounds how much of an offending line is kept in a LineError.
const maxFaultText = 96

// LineError records why one input line was skipped.
type LineError struct {
	Line int    // 1-based line number within the file
	Text string // offending line, truncated
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v (%q)", e.Line, e.Err, e.Text)
}

func (e *LineError) Unwrap() error { return e.Err }

func newLineError(line int, text string, err error) *LineError {
	if len(text) > maxFaultText {
		text = text[:maxFaultText] + "..."
	}
	return &LineError{Line: line, Text: text, Err: err}
}

// faultf wraps a sentinel with detail while keeping errors.Is working.
func faultf(sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...))
}
