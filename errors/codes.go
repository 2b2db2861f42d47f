package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Dispatch errors
const (
	// ErrCodeNotImplemented indicates no processor supports the request.
	ErrCodeNotImplemented ErrorCode = "NOT_IMPLEMENTED"
	// ErrCodeProcessorFailed indicates a processor returned a failure status.
	ErrCodeProcessorFailed ErrorCode = "PROCESSOR_FAILED"
	// ErrCodeUnavailable indicates a processor is temporarily unable to serve.
	ErrCodeUnavailable ErrorCode = "UNAVAILABLE"
)

// Input errors
const (
	// ErrCodeInvalidInput indicates the request input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeNotFound indicates the requested item was not found.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
)

// Configuration errors
const (
	// ErrCodeInvalidConfig indicates a chain definition failed validation.
	ErrCodeInvalidConfig ErrorCode = "INVALID_CONFIG"
	// ErrCodeUnknownKind indicates a chain entry names an unregistered processor kind.
	ErrCodeUnknownKind ErrorCode = "UNKNOWN_KIND"
)

// ErrCodeInternal indicates an unexpected internal error.
const ErrCodeInternal ErrorCode = "INTERNAL_ERROR"

var retryableCodes = map[ErrorCode]bool{
	ErrCodeUnavailable:     true,
	ErrCodeProcessorFailed: false,
	ErrCodeInternal:        false,
}

// IsRetryableCode returns true if the error code indicates a retryable error.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
