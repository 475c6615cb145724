package errors

import (
	stderrors "errors"
)

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around the standard library errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience wrapper around the standard library errors.As.
//
// Example:
//
//	var platformErr errors.PlatformError
//	if errors.As(err, &platformErr) {
//	    code := platformErr.Code()
//	}
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// GetCode extracts the ErrorCode from the outermost PlatformError in err's chain.
// Returns CodeUnknown if the error is nil or not a PlatformError.
func GetCode(err error) ErrorCode {
	var platformErr PlatformError
	if err != nil && stderrors.As(err, &platformErr) {
		return platformErr.Code()
	}
	return CodeUnknown
}

// GetClassification extracts the ErrorClassification from an error.
// Returns ClassificationPermanent if the error is nil or not a PlatformError.
func GetClassification(err error) ErrorClassification {
	var platformErr PlatformError
	if err != nil && stderrors.As(err, &platformErr) {
		return platformErr.Classification()
	}
	return ClassificationPermanent
}

// IsRetryable returns true if the error is classified as retryable.
//
// Example:
//
//	if errors.IsRetryable(err) {
//	    // schedule the build status report again later
//	}
func IsRetryable(err error) bool {
	return GetClassification(err).IsRetryable()
}

// GetContext returns the context value stored under key on the outermost
// PlatformError in err's chain.
func GetContext(err error, key string) (interface{}, bool) {
	var platformErr PlatformError
	if err == nil || !stderrors.As(err, &platformErr) {
		return nil, false
	}
	v, ok := platformErr.Context()[key]
	return v, ok
}
