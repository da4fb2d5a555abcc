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

	// Tool errors
	ErrToolNotFound ErrorCode = "TOOL_NOT_FOUND"

	// Package manager errors
	ErrManagerNotFound ErrorCode = "MANAGER_NOT_FOUND"
	ErrInstallFailed   ErrorCode = "INSTALL_FAILED"

	// Hook registration errors
	ErrNotARepo    ErrorCode = "NOT_A_REPO"
	ErrHooksFailed ErrorCode = "HOOKS_FAILED"

	// FileSystem errors
	ErrFileExists ErrorCode = "FILE_EXISTS"
	ErrFileWrite  ErrorCode = "FILE_WRITE"
)

// HookupError represents a structured error with code and details
type HookupError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *HookupError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *HookupError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *HookupError) Is(target error) bool {
	var targetErr *HookupError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// WithDetail adds a detail to the error
func (e *HookupError) WithDetail(key string, value interface{}) *HookupError {
	e.Details[key] = value
	return e
}

// New creates a new HookupError with the given code and message
func New(code ErrorCode, message string) *HookupError {
	return &HookupError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new HookupError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *HookupError {
	return &HookupError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a HookupError
func Wrap(err error, code ErrorCode, message string) *HookupError {
	if err == nil {
		return nil
	}
	return &HookupError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *HookupError {
	if err == nil {
		return nil
	}
	return &HookupError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// GetCode extracts the error code from an error, returning ErrUnknown
// for errors that are not HookupErrors
func GetCode(err error) ErrorCode {
	var hookupErr *HookupError
	if errors.As(err, &hookupErr) {
		return hookupErr.Code
	}
	return ErrUnknown
}

// IsCode reports whether err carries the given code anywhere in its chain
func IsCode(err error, code ErrorCode) bool {
	var hookupErr *HookupError
	if errors.As(err, &hookupErr) {
		return hookupErr.Code == code
	}
	return false
}
