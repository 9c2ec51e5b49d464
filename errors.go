// Package convref structured error types for checker runs
package convref

import (
	"errors"
	"fmt"
)

// ErrorType represents categories of errors
type ErrorType int

const (
	// Configuration errors: bad encoding names, missing or invalid parameters
	ErrTypeConfiguration ErrorType = iota
	// IO errors: missing, unreadable or short files
	ErrTypeIO
	// Comparison finished with at least one mismatch
	ErrTypeMismatch
	// Comparison aborted after the mismatch cap was reached
	ErrTypeErrorCap
)

// CheckError represents a structured error with context
type CheckError struct {
	Type    ErrorType
	Op      string      // Operation that failed
	Message string      // Human-readable message
	Err     error       // Underlying error if any
	Context interface{} // Additional context
}

// Error implements the error interface
func (e *CheckError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("convref %s error in %s: %s (caused by: %v)",
			e.Type.String(), e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("convref %s error in %s: %s",
		e.Type.String(), e.Op, e.Message)
}

// Unwrap allows error chain inspection
func (e *CheckError) Unwrap() error {
	return e.Err
}

// String returns the error type as a string
func (t ErrorType) String() string {
	switch t {
	case ErrTypeConfiguration:
		return "Configuration"
	case ErrTypeIO:
		return "IO"
	case ErrTypeMismatch:
		return "Mismatch"
	case ErrTypeErrorCap:
		return "ErrorCap"
	default:
		return "Unknown"
	}
}

// Common error constructors

// NewConfigError creates a configuration error
func NewConfigError(op string, message string, err error) error {
	return &CheckError{
		Type:    ErrTypeConfiguration,
		Op:      op,
		Message: message,
		Err:     err,
	}
}

// NewIOError creates an IO error for the file at path
func NewIOError(op string, path string, err error) error {
	return &CheckError{
		Type:    ErrTypeIO,
		Op:      op,
		Message: path,
		Err:     err,
		Context: path,
	}
}

// NewMismatchError reports a finished comparison with count mismatches
func NewMismatchError(count int) error {
	return &CheckError{
		Type:    ErrTypeMismatch,
		Op:      "Compare",
		Message: fmt.Sprintf("%d errors encountered in comparison", count),
		Context: count,
	}
}

// Common pre-defined errors

var (
	// ErrUnknownEncoding is wrapped when a kernel encoding name is not recognized
	ErrUnknownEncoding = errors.New("unknown kernel encoding")

	// ErrShortBuffer is wrapped when a buffer holds fewer bytes than its shape needs
	ErrShortBuffer = errors.New("buffer shorter than required")

	// ErrErrorCapExceeded aborts a comparison once the mismatch cap is reached
	ErrErrorCapExceeded = &CheckError{
		Type:    ErrTypeErrorCap,
		Op:      "Compare",
		Message: "Maximum number of errors encountered",
	}
)

func errorTypeOf(err error) (ErrorType, bool) {
	var ce *CheckError
	if errors.As(err, &ce) {
		return ce.Type, true
	}
	return 0, false
}

// IsConfigurationError checks if an error is a configuration error
func IsConfigurationError(err error) bool {
	t, ok := errorTypeOf(err)
	return ok && t == ErrTypeConfiguration
}

// IsIOError checks if an error is an IO error
func IsIOError(err error) bool {
	t, ok := errorTypeOf(err)
	return ok && t == ErrTypeIO
}

// IsMismatchError checks if an error reports a failed comparison
func IsMismatchError(err error) bool {
	t, ok := errorTypeOf(err)
	return ok && t == ErrTypeMismatch
}

// IsErrorCapExceeded checks if a comparison was aborted at the mismatch cap
func IsErrorCapExceeded(err error) bool {
	t, ok := errorTypeOf(err)
	return ok && t == ErrTypeErrorCap
}
