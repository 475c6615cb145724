// Package errors provides structured error handling for the Bitbucket client.
//
// Errors carry a code, a retry classification, a message, optional context
// metadata and an optional cause. They stay compatible with the standard
// library (errors.Is, errors.As, errors.Unwrap).
//
// # Quick Start
//
// Creating errors:
//
//	err := errors.New(errors.CodeInvalidInput, "owner cannot be empty")
//	err := errors.Newf(errors.CodeInvalidInput, "max pages must be positive, got %d", n)
//
// Wrapping errors:
//
//	resp, err := httpClient.Do(req)
//	if err != nil {
//	    return errors.Wrap(err, errors.CodeTransport, "communication error")
//	}
//
// Adding context:
//
//	err = errors.WithContext(err, "status", resp.StatusCode)
//	err = errors.WithContext(err, "body", body)
//
// Retry decisions belong to callers:
//
//	if errors.IsRetryable(err) {
//	    // try again later
//	}
//
// # Error Codes
//
//   - Resource errors: CodeNotFound, CodeConflict
//   - Permission errors: CodeUnauthorized, CodeForbidden
//   - Validation errors: CodeInvalidInput, CodeInvalidConfig
//   - Remote API errors: CodeTransport, CodeUnexpectedStatus, CodeDecodeFailed, CodeEncodingFailed
//   - Configuration errors: CodeConfigLoadFailed, CodeConfigValidationFailed, CodeConfigDecodeFailed
//   - System errors: CodeInternal, CodeUnknown
//
// Each code has a default classification. CodeTransport is retryable; all
// others default to permanent and may be overridden with WithClassification.
//
// # Immutability
//
// Errors are never modified in place. WithContext, WithContextMap and
// WithClassification return new values, and Context returns a copy.
package errors
