package errors

import (
	"encoding/json"
)

// ErrorResponse represents the JSON structure of an error.
// It provides a flat, serializable representation of errors without exposing
// wrapped error chains.
type ErrorResponse struct {
	// Code is the error code identifying the kind of error.
	Code string `json:"code"`

	// Message is the human-readable error message.
	Message string `json:"message"`

	// Context contains optional metadata about the error.
	// Omitted from JSON if empty.
	Context map[string]interface{} `json:"context,omitempty"`
}

// ToJSON converts any error to an ErrorResponse suitable for JSON serialization.
// Returns nil if err is nil.
//
// For CodedError instances, extracts code, message, and context.
// For standard errors, uses CodeUnknown and the error message.
//
// The wrapped error chain is excluded. Causes such as strconv.NumError embed
// the raw input, which callers may not want echoed back.
func ToJSON(err error) *ErrorResponse {
	if err == nil {
		return nil
	}

	message := err.Error()
	var context map[string]interface{}

	var codedErr CodedError
	if As(err, &codedErr) {
		message = codedErr.Message()
		context = codedErr.Context()
	}

	return &ErrorResponse{
		Code:    string(GetCode(err)),
		Message: message,
		Context: context,
	}
}

// MarshalJSON implements json.Marshaler for codedError.
//
// Example:
//
//	err := errors.New(errors.CodeKeyNotFound, "key not found")
//	jsonBytes, _ := json.Marshal(err)
//	// Output: {"code":"KEY_NOT_FOUND","message":"key not found"}
func (e *codedError) MarshalJSON() ([]byte, error) {
	response := &ErrorResponse{
		Code:    string(e.code),
		Message: e.message,
		Context: e.context,
	}
	data, err := json.Marshal(response)
	if err != nil {
		return nil, &codedError{
			code:    CodeUnknown,
			message: "failed to marshal error response",
			cause:   err,
		}
	}
	return data, nil
}
