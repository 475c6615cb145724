package bitbucket

import (
	"fmt"
	"net/http"

	"github.com/jmgilman/go/bitbucket/errors"
)

// Bitbucket-specific error codes.
// These are convenience aliases for readability in client code.
const (
	// ErrCodeTransport indicates no usable response was received.
	ErrCodeTransport = errors.CodeTransport

	// ErrCodeUnexpectedStatus indicates a response with a status the operation does not accept.
	ErrCodeUnexpectedStatus = errors.CodeUnexpectedStatus

	// ErrCodeDecode indicates a response body did not match the expected shape.
	ErrCodeDecode = errors.CodeDecodeFailed

	// ErrCodeEncoding indicates a request payload could not be serialized.
	ErrCodeEncoding = errors.CodeEncodingFailed

	// ErrCodeNotFound indicates a requested resource was not found.
	ErrCodeNotFound = errors.CodeNotFound

	// ErrCodeInvalidInput indicates invalid parameters.
	ErrCodeInvalidInput = errors.CodeInvalidInput
)

// Context keys attached to client errors.
const (
	ContextStatus     = "status"
	ContextStatusText = "status_text"
	ContextBody       = "body"
	ContextResource   = "resource"
)

// NewTransportError reports a failure where no usable response was received.
// The recorded status is 0.
func NewTransportError(cause error, message string) error {
	err := errors.Wrap(cause, errors.CodeTransport, message)
	if err == nil {
		err = errors.New(errors.CodeTransport, message)
	}
	return errors.WithContext(err, ContextStatus, 0)
}

// NewUnexpectedStatusError reports a response whose status is outside the
// accepted set. Rate limiting and server-side failures are retryable.
func NewUnexpectedStatusError(status int, statusText, body string) error {
	err := errors.New(
		errors.CodeUnexpectedStatus,
		fmt.Sprintf("HTTP request error. Status: %d: %s", status, statusText),
	)
	err = errors.WithContextMap(err, map[string]interface{}{
		ContextStatus:     status,
		ContextStatusText: statusText,
		ContextBody:       body,
	})
	if status == http.StatusTooManyRequests || status >= http.StatusInternalServerError {
		err = errors.WithClassification(err, errors.ClassificationRetryable)
	}
	return err
}

// NewDecodeError reports a response body that could not be mapped to resource.
func NewDecodeError(resource string, cause error) error {
	message := fmt.Sprintf("invalid %s response", resource)
	ctx := map[string]interface{}{
		ContextResource: resource,
		ContextStatus:   0,
	}
	if cause == nil {
		return errors.WithContextMap(errors.New(errors.CodeDecodeFailed, message), ctx)
	}
	return errors.WrapWithContext(cause, errors.CodeDecodeFailed, message, ctx)
}

// NewEncodingError reports a payload that could not be serialized before sending.
func NewEncodingError(cause error, what string) error {
	return errors.Wrapf(cause, errors.CodeEncodingFailed, "failed to encode %s", what)
}

// StatusCode returns the HTTP status recorded on err.
// Returns 0 when no response was received or err carries no status.
func StatusCode(err error) int {
	v, ok := errors.GetContext(err, ContextStatus)
	if !ok {
		return 0
	}
	status, ok := v.(int)
	if !ok {
		return 0
	}
	return status
}

// ResponseBody returns the raw response body recorded on err, if any.
func ResponseBody(err error) string {
	v, _ := errors.GetContext(err, ContextBody)
	body, _ := v.(string)
	return body
}

// wrapProviderError adds an operation message to a provider error while
// keeping its code, classification and context.
func wrapProviderError(err error, message string) error {
	if err == nil {
		return nil
	}
	var platformErr errors.PlatformError
	if !errors.As(err, &platformErr) {
		return errors.Wrap(err, errors.CodeInternal, message)
	}
	return errors.WrapWithContext(err, platformErr.Code(), message, platformErr.Context())
}

// newNotFoundError creates a not found error with context.
func newNotFoundError(resourceType, identifier string) error {
	err := errors.New(
		errors.CodeNotFound,
		fmt.Sprintf("%s not found: %s", resourceType, identifier),
	)
	err = errors.WithContext(err, "resource_type", resourceType)
	err = errors.WithContext(err, "identifier", identifier)
	return err
}
