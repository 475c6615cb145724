package errors

// ErrorCode represents a specific error condition.
// Error codes are string-based for debuggability and natural JSON serialization.
type ErrorCode string

const (
	// Resource errors.

	// CodeNotFound indicates a requested resource does not exist.
	CodeNotFound ErrorCode = "NOT_FOUND"

	// CodeConflict indicates a resource state conflict that prevents the operation.
	CodeConflict ErrorCode = "CONFLICT"

	// Permission errors.

	// CodeUnauthorized indicates the request lacks valid authentication credentials.
	CodeUnauthorized ErrorCode = "UNAUTHORIZED"

	// CodeForbidden indicates the authenticated user lacks permission for the operation.
	CodeForbidden ErrorCode = "FORBIDDEN"

	// Validation errors.

	// CodeInvalidInput indicates the provided input is invalid or malformed.
	CodeInvalidInput ErrorCode = "INVALID_INPUT"

	// CodeInvalidConfig indicates a configuration error prevents the operation.
	CodeInvalidConfig ErrorCode = "INVALID_CONFIGURATION"

	// Remote API errors.

	// CodeTransport indicates no usable response was received: the connection
	// failed, timed out, or the body could not be read.
	CodeTransport ErrorCode = "TRANSPORT_ERROR"

	// CodeUnexpectedStatus indicates a response was received with a status
	// outside the set accepted by the operation.
	CodeUnexpectedStatus ErrorCode = "UNEXPECTED_STATUS"

	// CodeDecodeFailed indicates a response body did not match the expected shape.
	CodeDecodeFailed ErrorCode = "DECODE_FAILED"

	// CodeEncodingFailed indicates a request payload could not be serialized.
	CodeEncodingFailed ErrorCode = "ENCODING_FAILED"

	// Configuration errors.

	// CodeConfigLoadFailed indicates a profile could not be read or compiled.
	CodeConfigLoadFailed ErrorCode = "CONFIG_LOAD_FAILED"

	// CodeConfigValidationFailed indicates a profile did not satisfy its schema.
	CodeConfigValidationFailed ErrorCode = "CONFIG_VALIDATION_FAILED"

	// CodeConfigDecodeFailed indicates a validated profile could not be decoded.
	CodeConfigDecodeFailed ErrorCode = "CONFIG_DECODE_FAILED"

	// System errors.

	// CodeInternal indicates an internal error occurred.
	CodeInternal ErrorCode = "INTERNAL_ERROR"

	// CodeUnknown indicates an unknown or unclassified error occurred.
	CodeUnknown ErrorCode = "UNKNOWN"
)
