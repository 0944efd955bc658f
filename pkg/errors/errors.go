/*
Copyright © 2025 Strata Cloud
SPDX-License-Identifier: Apache-2.0
*/

package errors

import "fmt"

// Error codes as constants
const (
	ErrCodeInvalidRequest = "INVALID_REQUEST"
	ErrCodeNotFound       = "NOT_FOUND"
	ErrCodeConflict       = "CONFLICT"
	ErrCodeInternal       = "INTERNAL_ERROR"
	ErrCodeValidation     = "VALIDATION_FAILED"
)

// StructuredError is an error carrying a stable machine-readable code
// alongside its message. Callers match on Code rather than parsing text.
type StructuredError struct {
	Code    string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *StructuredError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the wrapped error, if any.
func (e *StructuredError) Unwrap() error {
	return e.Err
}

// New creates a StructuredError with the given code and message.
func New(code, message string) *StructuredError {
	return &StructuredError{Code: code, Message: message}
}

// Newf creates a StructuredError with a formatted message.
func Newf(code, format string, args ...any) *StructuredError {
	return &StructuredError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap creates a StructuredError wrapping an underlying error.
func Wrap(code, message string, err error) *StructuredError {
	return &StructuredError{Code: code, Message: message, Err: err}
}

// Is reports whether err carries the given structured error code.
func Is(err error, code string) bool {
	se, ok := AsStructured(err)
	return ok && se.Code == code
}

// AsStructured extracts a StructuredError from an error chain.
func AsStructured(err error) (*StructuredError, bool) {
	for err != nil {
		if se, ok := err.(*StructuredError); ok {
			return se, true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return nil, false
		}
		err = u.Unwrap()
	}
	return nil, false
}
