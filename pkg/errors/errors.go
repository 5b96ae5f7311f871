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

	// Workspace errors
	ErrWorkspaceNotFound ErrorCode = "WORKSPACE_NOT_FOUND"
	ErrWorkspaceInstall  ErrorCode = "WORKSPACE_INSTALL"

	// Symlink plan/execution errors
	ErrLinkConflict ErrorCode = "LINK_CONFLICT"
	ErrLinkCreate   ErrorCode = "LINK_CREATE"
	ErrLinkRemove   ErrorCode = "LINK_REMOVE"

	// FileSystem errors
	ErrFileNotFound ErrorCode = "FILE_NOT_FOUND"
	ErrFileAccess   ErrorCode = "FILE_ACCESS"
	ErrFileCopy     ErrorCode = "FILE_COPY"
	ErrFileWrite    ErrorCode = "FILE_WRITE"
	ErrDirCreate    ErrorCode = "DIR_CREATE"

	// Subprocess errors
	ErrCommandNotFound ErrorCode = "COMMAND_NOT_FOUND"
	ErrCommandRun      ErrorCode = "COMMAND_RUN"
)

// ComfyError represents a structured error with code and details
type ComfyError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ComfyError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ComfyError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *ComfyError) Is(target error) bool {
	var targetErr *ComfyError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ComfyError with the given code and message
func New(code ErrorCode, message string) *ComfyError {
	return &ComfyError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ComfyError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ComfyError {
	return &ComfyError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a ComfyError
func Wrap(err error, code ErrorCode, message string) *ComfyError {
	if err == nil {
		return nil
	}
	return &ComfyError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ComfyError {
	if err == nil {
		return nil
	}
	return &ComfyError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *ComfyError) WithDetail(key string, value interface{}) *ComfyError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var comfyErr *ComfyError
	if errors.As(err, &comfyErr) {
		return comfyErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a ComfyError
func GetErrorCode(err error) ErrorCode {
	var comfyErr *ComfyError
	if errors.As(err, &comfyErr) {
		return comfyErr.Code
	}
	return ErrUnknown
}
