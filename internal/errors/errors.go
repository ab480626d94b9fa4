// Package errors defines the stable error codes for per-file sort failures.
package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents stable error codes for all failure modes
type ErrorCode string

const (
	// NotAProjectFile indicates the resolved path is not a project.pbxproj file
	NotAProjectFile ErrorCode = "NOT_A_PROJECT_FILE"
	// UnterminatedRegion indicates an array or block section never found its end marker
	UnterminatedRegion ErrorCode = "UNTERMINATED_REGION"
	// UnbalancedRecord indicates a multi-line record's braces never closed
	UnbalancedRecord ErrorCode = "UNBALANCED_RECORD"
	// IOFailure indicates a read or write error
	IOFailure ErrorCode = "IO_FAILURE"
)

// SortError represents a per-file failure with a stable code.
// Fatal codes guarantee the file's on-disk bytes were left untouched.
type SortError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Path    string    `json:"path,omitempty"`
	cause   error     // Underlying error (not exported to JSON)
}

// NewSortError creates a new SortError
func NewSortError(code ErrorCode, message string, cause error) *SortError {
	return &SortError{
		Code:    code,
		Message: message,
		cause:   cause,
	}
}

// Error implements the error interface
func (e *SortError) Error() string {
	msg := e.Message
	if e.Path != "" {
		msg = fmt.Sprintf("%s (%s)", e.Message, e.Path)
	}
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, msg, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, msg)
}

// Unwrap returns the underlying error
func (e *SortError) Unwrap() error {
	return e.cause
}

// WithPath attaches the file path the error occurred on
func (e *SortError) WithPath(path string) *SortError {
	e.Path = path
	return e
}

// CodeOf extracts the error code from err, or "" if err is not a SortError.
func CodeOf(err error) ErrorCode {
	var se *SortError
	if errors.As(err, &se) {
		return se.Code
	}
	return ""
}

// IsFatal reports whether err must abort processing of its file.
// NotAProjectFile is a skip-with-warning condition, not a fatal one.
func IsFatal(err error) bool {
	code := CodeOf(err)
	return code == UnterminatedRegion || code == UnbalancedRecord || code == IOFailure
}
