package errors

import (
	stderrors "errors"
	"fmt"
)

// AppError is the unified application error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// ExitCode is the recommended process exit status for this error.
	ExitCode int `json:"-"`
	// Details contains additional context for the error.
	Details map[string]any `json:"details,omitempty"`
	// Cause is the underlying error that caused this error.
	Cause error `json:"-"`
}

// Error returns the string representation of the error.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause of the error.
func (e *AppError) Unwrap() error { return e.Cause }

// WithCause sets the underlying cause of the error and returns the receiver.
func (e *AppError) WithCause(cause error) *AppError {
	e.Cause = cause
	return e
}

// WithDetail sets a single detail key-value pair and returns the receiver.
func (e *AppError) WithDetail(key string, value any) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// New creates a new AppError; the exit code is derived from code.
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		ExitCode: ExitCodeFor(code),
	}
}

// --- Common Error Constructors ---

// InvalidArgument reports a rejected parameter value.
func InvalidArgument(param string, value any, reason string) *AppError {
	return &AppError{
		Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("invalid %s: %s", param, reason),
		ExitCode: ExitUsage,
		Details:  map[string]any{"param": param, "value": value},
	}
}

// Validation creates a new AppError for input that failed validation.
func Validation(message string) *AppError {
	return &AppError{
		Code: ErrCodeInvalidArgument, Message: message,
		ExitCode: ExitUsage,
	}
}

// NotFound creates a new AppError for a resource that was not found.
func NotFound(resource, id string) *AppError {
	details := map[string]any{"resource": resource}
	if id != "" {
		details["id"] = id
	}
	return &AppError{
		Code: ErrCodeNotFound, Message: fmt.Sprintf("%s not found", resource),
		ExitCode: ExitNoInput, Details: details,
	}
}

// InvalidConfig creates a new AppError for configuration that failed to load
// or validate.
func InvalidConfig(reason string, cause error) *AppError {
	return &AppError{
		Code: ErrCodeInvalidConfig, Message: reason,
		ExitCode: ExitConfig, Cause: cause,
	}
}

// IO creates a new AppError for a failed filesystem operation on path.
func IO(op, path string, cause error) *AppError {
	return &AppError{
		Code: ErrCodeIO, Message: fmt.Sprintf("%s %s failed", op, path),
		ExitCode: ExitIO, Cause: cause,
		Details: map[string]any{"op": op, "path": path},
	}
}

// Internal creates a new AppError for an unexpected failure.
func Internal(cause error) *AppError {
	return &AppError{
		Code: ErrCodeInternal, Message: "unexpected error",
		ExitCode: ExitInternal, Cause: cause,
	}
}

// IsAppError checks if an error is an AppError.
func IsAppError(err error) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr)
}

// AsAppError converts an error to an AppError if possible.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsCode reports whether err is an AppError carrying code.
func IsCode(err error, code ErrorCode) bool {
	appErr, ok := AsAppError(err)
	return ok && appErr.Code == code
}

// ExitCode returns the process exit status for err: ExitOK for nil, the
// AppError's ExitCode when err wraps one, ExitInternal otherwise.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	if appErr, ok := AsAppError(err); ok && appErr.ExitCode != 0 {
		return appErr.ExitCode
	}
	return ExitInternal
}
