package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Project errors
	ErrPackageMissing ErrorCode = "PACKAGE_MISSING"
	ErrPackageInvalid ErrorCode = "PACKAGE_INVALID"
	ErrFileAccess     ErrorCode = "FILE_ACCESS"

	// Composition errors
	ErrInvalidMode     ErrorCode = "INVALID_MODE"
	ErrInvalidPattern  ErrorCode = "INVALID_PATTERN"
	ErrInvalidTemplate ErrorCode = "INVALID_TEMPLATE"
)

// BuildplanError represents a structured error with code and details
type BuildplanError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *BuildplanError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *BuildplanError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *BuildplanError) Is(target error) bool {
	var targetErr *BuildplanError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new BuildplanError with the given code and message
func New(code ErrorCode, message string) *BuildplanError {
	return &BuildplanError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new BuildplanError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *BuildplanError {
	return &BuildplanError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a BuildplanError.
// Callers must check err for nil first: a nil *BuildplanError stored in an
// error interface is not a nil error.
func Wrap(err error, code ErrorCode, message string) *BuildplanError {
	if err == nil {
		return nil
	}
	return &BuildplanError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *BuildplanError {
	if err == nil {
		return nil
	}
	return &BuildplanError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *BuildplanError) WithDetail(key string, value interface{}) *BuildplanError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *BuildplanError) WithDetails(details map[string]interface{}) *BuildplanError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var bpErr *BuildplanError
	if errors.As(err, &bpErr) {
		return bpErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a BuildplanError
func GetErrorCode(err error) ErrorCode {
	var bpErr *BuildplanError
	if errors.As(err, &bpErr) {
		return bpErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a BuildplanError
func GetErrorDetails(err error) map[string]interface{} {
	var bpErr *BuildplanError
	if errors.As(err, &bpErr) {
		return bpErr.Details
	}
	return nil
}
