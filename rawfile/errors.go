package rawfile

import (
	"errors"
	"fmt"
)

// Sentinel errors for the parse failure modes. Every error returned by
// Parse matches exactly one of these under errors.Is.
var (
	// ErrIntegerFormat indicates a malformed integer in a header field.
	ErrIntegerFormat = errors.New("malformed integer")

	// ErrFloatFormat indicates a malformed floating-point sample.
	ErrFloatFormat = errors.New("malformed float")

	// ErrVariableCount indicates the Variables section does not match the
	// declared variable count.
	ErrVariableCount = errors.New("variable count mismatch")

	// ErrValueCount indicates a point supplied a number of samples different
	// from the declared variable count, or the Values section does not cover
	// the declared point count.
	ErrValueCount = errors.New("value count mismatch")

	// ErrUnknownFlag indicates a Flags header value other than "real" or
	// "complex".
	ErrUnknownFlag = errors.New("unknown value in flags")
)

// ParseError wraps a parse failure with the input line it occurred on.
type ParseError struct {
	Line int   // 1-based line number in the input
	Err  error // underlying error; wraps one of the sentinel errors
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *ParseError) Unwrap() error {
	return e.Err
}
