package errors

// CodedError extends the standard error interface with the error kind that
// caused an operation to refuse its inputs.
//
// CodedError carries a code for categorization, a human-readable message,
// contextual metadata, and an optional cause. It is compatible with standard
// library error handling (errors.Is, errors.As, errors.Unwrap).
type CodedError interface {
	error

	// Code returns the error code identifying the kind of failure.
	Code() ErrorCode

	// Message returns the human-readable error message.
	Message() string

	// Context returns attached metadata as a read-only map.
	// Returns nil if no context has been attached.
	Context() map[string]interface{}

	// Unwrap returns the wrapped error for errors.Is and errors.As compatibility.
	// Returns nil if this error does not wrap another error.
	Unwrap() error
}
