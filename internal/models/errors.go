// ABOUTME: Typed error kinds shared by the validator, fallback client, and engine
// ABOUTME: Callers branch on ErrorKind via KindOf rather than string matching
package models

import "errors"

// ErrorKind enumerates the failure categories the engine can surface.
type ErrorKind string

const (
	// Validation failures: reported to the caller, no Turn recorded.
	ErrEmptyInput    ErrorKind = "empty_input"
	ErrTooLong       ErrorKind = "too_long"
	ErrUnsafePattern ErrorKind = "unsafe_pattern"

	// Fallback failures: degraded into an apologetic response, Turn recorded.
	ErrBackendUnavailable ErrorKind = "backend_unavailable"
	ErrBackendError       ErrorKind = "backend_error"
)

// Error pairs an ErrorKind with a human-readable diagnostic.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// NewError creates a typed error.
func NewError(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// KindOf extracts the ErrorKind from an error chain, or "" if the error
// carries no kind.
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return ""
}
