package errors

import (
	"encoding/json"
)

// ErrorResponse is the flat JSON shape of an error. The wrapped chain is
// excluded so response bodies and credentials carried by causes never leak
// into rendered output.
type ErrorResponse struct {
	// Code is the error code identifying the type of error.
	Code string `json:"code"`

	// Message is the human-readable error message.
	Message string `json:"message"`

	// Classification indicates whether the error is retryable or permanent.
	Classification string `json:"classification"`

	// Context contains optional metadata about the error.
	Context map[string]interface{} `json:"context,omitempty"`
}

// ToJSON converts any error to an ErrorResponse.
// Returns nil if err is nil.
//
// For standard errors, uses CodeUnknown, ClassificationPermanent, and the error message.
func ToJSON(err error) *ErrorResponse {
	if err == nil {
		return nil
	}

	message := err.Error()
	var context map[string]interface{}

	var platformErr PlatformError
	if As(err, &platformErr) {
		message = platformErr.Message()
		context = platformErr.Context()
	}

	return &ErrorResponse{
		Code:           string(GetCode(err)),
		Message:        message,
		Classification: string(GetClassification(err)),
		Context:        context,
	}
}

// MarshalJSON implements json.Marshaler for platformError.
func (e *platformError) MarshalJSON() ([]byte, error) {
	data, err := json.Marshal(&ErrorResponse{
		Code:           string(e.code),
		Message:        e.message,
		Classification: string(e.classification),
		Context:        e.context,
	})
	if err != nil {
		return nil, Wrap(err, CodeInternal, "failed to marshal error response")
	}
	return data, nil
}
