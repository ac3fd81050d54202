package types

import (
	"errors"
	"fmt"
)

// ErrorCode represents a GoGrapher error code.
type ErrorCode string

// Error codes, grouped by the stage that raises them.
const (
	// S0xxx: Parser/Syntax errors
	ErrUnexpectedToken   ErrorCode = "S0101"
	ErrUnclosedParameter ErrorCode = "S0102"
	ErrMalformedNumber   ErrorCode = "S0103"
	ErrUnexpectedEnd     ErrorCode = "S0104"
	ErrTrailingInput     ErrorCode = "S0105"
	ErrDepthExceeded     ErrorCode = "S0106"

	// E1xxx: Evaluation errors
	ErrUnknownFunction    ErrorCode = "E1001"
	ErrUndefinedReference ErrorCode = "E1002"
	ErrRecursionLimit     ErrorCode = "E1003"

	// D2xxx: Definition errors
	ErrInvalidRange   ErrorCode = "D2001"
	ErrMalformedSet   ErrorCode = "D2002"
	ErrMalformedPoint ErrorCode = "D2003"
)

// Error represents a structured GoGrapher error.
type Error struct {
	Code     ErrorCode
	Message  string
	Position int
	Token    string
	Err      error
}

// NewError creates a new error with the given code, message and position.
func NewError(code ErrorCode, message string, position int) *Error {
	return &Error{
		Code:     code,
		Message:  message,
		Position: position,
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Token != "" {
		return fmt.Sprintf("%s: %s at position %d near %q", e.Code, e.Message, e.Position, e.Token)
	}
	return fmt.Sprintf("%s: %s at position %d", e.Code, e.Message, e.Position)
}

// Unwrap returns the wrapped error, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target matches this error. Two *Error values match when
// their codes are equal, so callers can test for a code with a sentinel:
//
//	errors.Is(err, &types.Error{Code: types.ErrUnknownFunction})
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

// CodeOf extracts the error code from err, or "" when err carries none.
func CodeOf(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
