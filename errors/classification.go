package errors

// ErrorClassification indicates whether an error should trigger a retry.
// The client never retries on its own; the classification is advice for the
// orchestration layer calling it.
type ErrorClassification string

const (
	// ClassificationRetryable indicates temporary failures that may succeed on retry.
	ClassificationRetryable ErrorClassification = "RETRYABLE"

	// ClassificationPermanent indicates failures that will not succeed on retry.
	ClassificationPermanent ErrorClassification = "PERMANENT"
)

// IsRetryable returns true if the classification indicates retry should be attempted.
func (c ErrorClassification) IsRetryable() bool {
	return c == ClassificationRetryable
}

// defaultClassifications maps error codes to their default classification.
// CodeUnexpectedStatus is permanent here; callers that know the status
// override it with WithClassification.
var defaultClassifications = map[ErrorCode]ErrorClassification{
	CodeTransport: ClassificationRetryable,

	CodeNotFound:               ClassificationPermanent,
	CodeConflict:               ClassificationPermanent,
	CodeUnauthorized:           ClassificationPermanent,
	CodeForbidden:              ClassificationPermanent,
	CodeInvalidInput:           ClassificationPermanent,
	CodeInvalidConfig:          ClassificationPermanent,
	CodeUnexpectedStatus:       ClassificationPermanent,
	CodeDecodeFailed:           ClassificationPermanent,
	CodeEncodingFailed:         ClassificationPermanent,
	CodeConfigLoadFailed:       ClassificationPermanent,
	CodeConfigValidationFailed: ClassificationPermanent,
	CodeConfigDecodeFailed:     ClassificationPermanent,
	CodeInternal:               ClassificationPermanent,
	CodeUnknown:                ClassificationPermanent,
}

// getDefaultClassification returns the default classification for an error code.
// Unknown codes are permanent.
func getDefaultClassification(code ErrorCode) ErrorClassification {
	if class, ok := defaultClassifications[code]; ok {
		return class
	}
	return ClassificationPermanent
}
