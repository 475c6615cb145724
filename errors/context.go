package errors

import "errors"

// WithContext adds a single context field to an error.
// Existing context fields are preserved.
//
// If err is not a PlatformError, it is converted to one with CodeUnknown.
// Returns nil if err is nil.
//
// Example:
//
//	err := errors.New(errors.CodeUnexpectedStatus, "HTTP request error")
//	err = errors.WithContext(err, "status", 500)
func WithContext(err error, key string, value interface{}) PlatformError {
	if err == nil {
		return nil
	}
	return WithContextMap(err, map[string]interface{}{key: value})
}

// WithContextMap adds multiple context fields to an error.
// New fields override existing ones with the same key.
//
// If err is not a PlatformError, it is converted to one with CodeUnknown.
// Returns nil if err is nil.
func WithContextMap(err error, ctx map[string]interface{}) PlatformError {
	if err == nil {
		return nil
	}

	base := asPlatformError(err)
	merged := make(map[string]interface{}, len(base.context)+len(ctx))
	for k, v := range base.context {
		merged[k] = v
	}
	for k, v := range ctx {
		merged[k] = v
	}
	base.context = merged
	return base
}

// WithClassification overrides the classification of an error.
//
// If err is not a PlatformError, it is converted to one with CodeUnknown.
// Returns nil if err is nil.
//
// Example:
//
//	err := errors.New(errors.CodeUnexpectedStatus, "service unavailable")
//	err = errors.WithClassification(err, errors.ClassificationRetryable)
func WithClassification(err error, classification ErrorClassification) PlatformError {
	if err == nil {
		return nil
	}

	base := asPlatformError(err)
	base.classification = classification
	return base
}

// asPlatformError returns a fresh copy of the outermost PlatformError in err's
// chain, or a CodeUnknown wrapper when there is none. The copy is safe to modify.
func asPlatformError(err error) *platformError {
	var platformErr PlatformError
	if !errors.As(err, &platformErr) {
		return &platformError{
			code:           CodeUnknown,
			classification: ClassificationPermanent,
			message:        err.Error(),
			cause:          err,
		}
	}

	return &platformError{
		code:           platformErr.Code(),
		classification: platformErr.Classification(),
		message:        platformErr.Message(),
		context:        platformErr.Context(),
		cause:          platformErr.Unwrap(),
	}
}

// copyContext returns a copy of ctx, or nil when ctx is empty.
func copyContext(ctx map[string]interface{}) map[string]interface{} {
	if len(ctx) == 0 {
		return nil
	}
	out := make(map[string]interface{}, len(ctx))
	for k, v := range ctx {
		out[k] = v
	}
	return out
}
