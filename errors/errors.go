package errors

// PlatformError extends the standard error interface with structured information.
//
// Every failure surfaced by the client is a PlatformError: the code names the
// failure kind, the classification advises on retry, and the context holds
// diagnostics such as the HTTP status and response body.
type PlatformError interface {
	error

	// Code returns the error code identifying the type of error.
	Code() ErrorCode

	// Classification returns whether the error is retryable or permanent.
	Classification() ErrorClassification

	// Message returns the human-readable error message.
	Message() string

	// Context returns attached metadata as a read-only map.
	// Returns nil if no context has been attached.
	Context() map[string]interface{}

	// Unwrap returns the wrapped error for errors.Is and errors.As compatibility.
	// Returns nil if this error does not wrap another error.
	Unwrap() error
}
