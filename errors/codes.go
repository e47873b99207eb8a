package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Argument errors, raised eagerly when an operation is called.
const (
	// ErrCodeInvalidArgument indicates a required argument was missing or nil.
	ErrCodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
	// ErrCodeOutOfRange indicates a numeric argument was outside its allowed range.
	ErrCodeOutOfRange ErrorCode = "OUT_OF_RANGE"
	// ErrCodeInvalidInput indicates one or more fields failed validation.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeInvalidFormat indicates a value could not be parsed.
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
)

// State errors, raised while a lazy sequence is being consumed.
const (
	// ErrCodeInvalidOperation indicates the operation cannot continue in the current state.
	ErrCodeInvalidOperation ErrorCode = "INVALID_OPERATION"
)

// Infrastructure errors
const (
	// ErrCodeNotFound indicates a file or resource was not found.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrCodeInternal indicates an unexpected internal error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
	// ErrCodeUnavailable indicates a collaborator (exporter, file system) is temporarily unavailable.
	ErrCodeUnavailable ErrorCode = "UNAVAILABLE"
)

var retryableCodes = map[ErrorCode]bool{
	ErrCodeUnavailable: true,
	ErrCodeInternal:    false,
}

// IsRetryableCode returns true if the error code indicates a retryable error.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}

// Kind groups the codes into the two classes callers usually branch on:
// bad arguments versus failures during consumption.
func (c ErrorCode) Kind() string {
	switch c {
	case ErrCodeInvalidArgument, ErrCodeOutOfRange, ErrCodeInvalidInput, ErrCodeInvalidFormat:
		return "argument"
	case ErrCodeInvalidOperation:
		return "operation"
	default:
		return "internal"
	}
}
