// Package errors provides structured error types for skewrev.
//
// Every failure carries a machine-readable [Code] so callers can tell a
// malformed input apart from a tree that is well formed but cannot be
// produced by skew-heap insertions, without parsing messages.
//
// # Error Codes
//
//   - INVALID_INPUT: the input could not be parsed
//   - INVALID_TOPOLOGY: child references do not describe a single rooted tree
//   - INVALID_HEAP: heap order or the left-before-right shape rule is broken
//   - INFEASIBLE: a valid tree that no insertion sequence produces
//   - INVALID_CONFIG: the configuration file is malformed
//   - INTERNAL_ERROR, UNSUPPORTED: everything else
//
// # Usage
//
//	err := errors.New(errors.ErrCodeTopology, "node %d has two parents", i)
//	if errors.Is(err, errors.ErrCodeTopology) {
//	    // Handle topology error
//	}
package errors

import (
	"errors"
	"fmt"
)

// Code represents a machine-readable error code.
type Code string

// Error codes for different error categories.
const (
	// Input errors
	ErrCodeInvalidInput Code = "INVALID_INPUT"
	ErrCodeTopology     Code = "INVALID_TOPOLOGY"
	ErrCodeHeap         Code = "INVALID_HEAP"

	// Search errors
	ErrCodeInfeasible Code = "INFEASIBLE"

	// Configuration errors
	ErrCodeInvalidConfig Code = "INVALID_CONFIG"

	// Internal errors
	ErrCodeInternal    Code = "INTERNAL_ERROR"
	ErrCodeUnsupported Code = "UNSUPPORTED"
)

// Error is a structured error with a code and optional cause.
type Error struct {
	Code    Code   // Machine-readable error code
	Message string // Human-readable message
	Cause   error  // Underlying error (optional)
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates a new Error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap creates a new Error wrapping an existing error.
func Wrap(code Code, cause error, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// UserMessage returns a user-friendly message for the error.
// For *Error types, returns the message without the code prefix.
// For other errors, returns the error string as-is.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// IsRejection reports whether err means the input tree has no insertion
// sequence: a parse, topology, heap or feasibility failure. These are all
// reported to the user the same way.
func IsRejection(err error) bool {
	switch GetCode(err) {
	case ErrCodeInvalidInput, ErrCodeTopology, ErrCodeHeap, ErrCodeInfeasible:
		return true
	}
	return false
}
