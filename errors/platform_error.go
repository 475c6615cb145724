package errors

import "fmt"

// platformError is the concrete implementation of PlatformError.
// It is private to enforce construction through package functions.
type platformError struct {
	code           ErrorCode
	classification ErrorClassification
	message        string
	context        map[string]interface{}
	cause          error
}

// Error returns "[CODE] message", followed by ": cause" when a cause is present.
func (e *platformError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.code, e.message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.code, e.message)
}

// Code returns the error code.
func (e *platformError) Code() ErrorCode {
	return e.code
}

// Classification returns the error classification.
func (e *platformError) Classification() ErrorClassification {
	return e.classification
}

// Message returns the error message.
func (e *platformError) Message() string {
	return e.message
}

// Context returns a copy of the context map, or nil if none was attached.
func (e *platformError) Context() map[string]interface{} {
	return copyContext(e.context)
}

// Unwrap returns the wrapped error for standard library compatibility.
func (e *platformError) Unwrap() error {
	return e.cause
}
