package errors

import (
	"fmt"
	"net/http"
)

// AppError is the unified application error type.
type AppError struct {
	// Code is a machine-readable error code.
	Code ErrorCode `json:"code"`
	// Message is a human-readable error message.
	Message string `json:"message"`
	// Retryable indicates if the operation can be retried.
	Retryable bool `json:"retryable"`
	// Status is the HTTP-aligned status this error corresponds to.
	Status int `json:"status"`
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

// New creates a new AppError with automatic retryable detection.
func New(code ErrorCode, message string, status int) *AppError {
	return &AppError{
		Code:      code,
		Message:   message,
		Status:    status,
		Retryable: IsRetryableCode(code),
	}
}

// NotImplemented creates an AppError for a request no processor supports.
func NotImplemented(request string) *AppError {
	return &AppError{
		Code: ErrCodeNotImplemented, Message: fmt.Sprintf("No processor supports request %q.", request),
		Status: http.StatusNotImplemented, Retryable: false,
		Details: map[string]any{"request": request},
	}
}

// ProcessorFailed creates an AppError for a processor that answered with a failure status.
func ProcessorFailed(processor string, status int) *AppError {
	return &AppError{
		Code: ErrCodeProcessorFailed, Message: fmt.Sprintf("Processor %q responded with status %d.", processor, status),
		Status: status, Retryable: status == http.StatusServiceUnavailable,
		Details: map[string]any{"processor": processor},
	}
}

// Unavailable creates an AppError for a processor that cannot serve right now.
func Unavailable(processor string) *AppError {
	return &AppError{
		Code: ErrCodeUnavailable, Message: fmt.Sprintf("Processor %q is temporarily unavailable.", processor),
		Status: http.StatusServiceUnavailable, Retryable: true,
		Details: map[string]any{"processor": processor},
	}
}

// InvalidInput creates an AppError for invalid request input.
func InvalidInput(field, reason string) *AppError {
	details := make(map[string]any)
	if field != "" {
		details["field"] = field
	}
	return &AppError{
		Code: ErrCodeInvalidInput, Message: fmt.Sprintf("Invalid input: %s", reason),
		Status: http.StatusBadRequest, Retryable: false, Details: details,
	}
}

// NotFound creates an AppError for an item that was not found.
func NotFound(resource, id string) *AppError {
	details := map[string]any{"resource": resource}
	if id != "" {
		details["id"] = id
	}
	return &AppError{
		Code: ErrCodeNotFound, Message: fmt.Sprintf("The requested %s was not found.", resource),
		Status: http.StatusNotFound, Retryable: false, Details: details,
	}
}

// InvalidConfig creates an AppError for a configuration that failed validation.
func InvalidConfig(message string) *AppError {
	return &AppError{
		Code: ErrCodeInvalidConfig, Message: message,
		Status: http.StatusBadRequest, Retryable: false,
	}
}

// UnknownKind creates an AppError for a chain entry whose kind has no factory.
func UnknownKind(kind string) *AppError {
	return &AppError{
		Code: ErrCodeUnknownKind, Message: fmt.Sprintf("Processor kind %q is not registered.", kind),
		Status: http.StatusBadRequest, Retryable: false,
		Details: map[string]any{"kind": kind},
	}
}

// Internal creates an AppError for an unexpected internal error.
func Internal(cause error) *AppError {
	return &AppError{
		Code: ErrCodeInternal, Message: "An unexpected error occurred.",
		Status: http.StatusInternalServerError, Retryable: false, Cause: cause,
	}
}
