package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Input errors
const (
	// ErrCodeValidation indicates the input document is malformed.
	ErrCodeValidation ErrorCode = "VALIDATION_ERROR"
	// ErrCodeMissingField indicates a required field is missing.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
	// ErrCodeInvalidFormat indicates a field has an invalid format.
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	// ErrCodeEmptyInput indicates there are no segments to classify.
	ErrCodeEmptyInput ErrorCode = "EMPTY_INPUT"
)

// Resource errors
const (
	// ErrCodeNotFound indicates the requested file or directory was not found.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
	// ErrCodeFilesystem indicates a read, write, or mkdir failure.
	ErrCodeFilesystem ErrorCode = "FILESYSTEM_ERROR"
)

// Internal errors
const (
	// ErrCodeInternalConsistency indicates a broken internal invariant,
	// such as a time-slot lookup miss. Never retried.
	ErrCodeInternalConsistency ErrorCode = "INTERNAL_CONSISTENCY"
)

var retryableCodes = map[ErrorCode]bool{
	ErrCodeFilesystem:          true,
	ErrCodeInternalConsistency: false,
}

// IsRetryableCode returns true if the error code indicates a retryable error.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
