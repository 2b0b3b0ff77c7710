package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for the render pipeline and its surroundings
const (
	// General errors
	ErrUnknown  ErrorCode = "UNKNOWN"
	ErrInternal ErrorCode = "INTERNAL"

	// Scanner errors
	ErrMalformedTag ErrorCode = "MALFORMED_TAG"

	// Tag tree builder errors
	ErrNesting           ErrorCode = "NESTING"
	ErrAttributeConflict ErrorCode = "ATTRIBUTE_CONFLICT"

	// Argument binder errors
	ErrMissingArgument ErrorCode = "MISSING_ARGUMENT"
	ErrUnusedArgument  ErrorCode = "UNUSED_ARGUMENT"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"
)

// NoOffset marks an error that has no meaningful position in the input.
const NoOffset = -1

// EcstasyError is a structured error carrying a stable code and, where
// the error was caused by input syntax, the byte offset of the
// offending character.
type EcstasyError struct {
	Code    ErrorCode
	Message string
	Offset  int
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *EcstasyError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s", e.Code, e.Message)
	if e.Offset != NoOffset {
		fmt.Fprintf(&b, " (offset %d)", e.Offset)
	}
	if e.Wrapped != nil {
		fmt.Fprintf(&b, ": %v", e.Wrapped)
	}
	return b.String()
}

// Unwrap implements the errors.Unwrap interface
func (e *EcstasyError) Unwrap() error {
	return e.Wrapped
}

// Is matches two EcstasyErrors by code
func (e *EcstasyError) Is(target error) bool {
	var targetErr *EcstasyError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new EcstasyError with the given code and message
func New(code ErrorCode, message string) *EcstasyError {
	return &EcstasyError{
		Code:    code,
		Message: message,
		Offset:  NoOffset,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new EcstasyError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *EcstasyError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap wraps an existing error with an EcstasyError
func Wrap(err error, code ErrorCode, message string) *EcstasyError {
	if err == nil {
		return nil
	}
	e := New(code, message)
	e.Wrapped = err
	return e
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *EcstasyError {
	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WithOffset records the byte offset of the offending input character
func (e *EcstasyError) WithOffset(offset int) *EcstasyError {
	e.Offset = offset
	return e
}

// WithDetail adds a detail to the error
func (e *EcstasyError) WithDetail(key string, value interface{}) *EcstasyError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var ecstasyErr *EcstasyError
	if errors.As(err, &ecstasyErr) {
		return ecstasyErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if
// the error is not an EcstasyError
func GetErrorCode(err error) ErrorCode {
	var ecstasyErr *EcstasyError
	if errors.As(err, &ecstasyErr) {
		return ecstasyErr.Code
	}
	return ErrUnknown
}

// GetOffset returns the input offset from an error, or NoOffset
func GetOffset(err error) int {
	var ecstasyErr *EcstasyError
	if errors.As(err, &ecstasyErr) {
		return ecstasyErr.Offset
	}
	return NoOffset
}

// Warning is a non-fatal diagnostic surfaced to the caller alongside a
// successful result.
type Warning struct {
	Code    ErrorCode
	Message string
	Offset  int
}

func (w Warning) String() string {
	return fmt.Sprintf("[%s] %s", w.Code, w.Message)
}

// Position renders a human-friendly position for a byte offset in
// input: "line:column" (1-indexed line, 0-indexed column within the
// line) when the input spans multiple lines, the bare offset otherwise.
func Position(input string, offset int) string {
	if offset < 0 || offset > len(input) || !strings.Contains(input, "\n") {
		return fmt.Sprintf("%d", offset)
	}
	line := 1
	col := 0
	for i := 0; i < offset; i++ {
		if input[i] == '\n' {
			line++
			col = 0
		} else {
			col++
		}
	}
	return fmt.Sprintf("%d:%d", line, col)
}
