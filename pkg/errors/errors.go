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

	// Shell invocation errors
	ErrSpawnFailure ErrorCode = "SPAWN_FAILURE"
	ErrTimeout      ErrorCode = "TIMEOUT"
	ErrNonZeroExit  ErrorCode = "NON_ZERO_EXIT"
	ErrParseFailure ErrorCode = "PARSE_FAILURE"

	// File errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileRead     ErrorCode = "FILE_READ"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
)

// EnvbootError represents a structured error with code and details
type EnvbootError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *EnvbootError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *EnvbootError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *EnvbootError) Is(target error) bool {
	var targetErr *EnvbootError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new EnvbootError with the given code and message
func New(code ErrorCode, message string) *EnvbootError {
	return &EnvbootError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new EnvbootError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *EnvbootError {
	return &EnvbootError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with an EnvbootError
func Wrap(err error, code ErrorCode, message string) *EnvbootError {
	if err == nil {
		return nil
	}
	return &EnvbootError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *EnvbootError {
	if err == nil {
		return nil
	}
	return &EnvbootError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *EnvbootError) WithDetail(key string, value interface{}) *EnvbootError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var envErr *EnvbootError
	if errors.As(err, &envErr) {
		return envErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not an EnvbootError
func GetErrorCode(err error) ErrorCode {
	var envErr *EnvbootError
	if errors.As(err, &envErr) {
		return envErr.Code
	}
	return ErrUnknown
}
