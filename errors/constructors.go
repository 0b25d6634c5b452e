package errors

import "fmt"

// New creates a new CodedError with the given code and message.
//
// Example:
//
//	err := errors.New(errors.CodeNullInput, "text must not be absent")
func New(code ErrorCode, message string) CodedError {
	return &codedError{
		code:    code,
		message: message,
		context: nil,
		cause:   nil,
	}
}

// Newf creates a new CodedError with a formatted message.
//
// Example:
//
//	err := errors.Newf(errors.CodeIndexOutOfRange, "index %d out of range [0, %d)", index, len(items))
func Newf(code ErrorCode, format string, args ...interface{}) CodedError {
	return &codedError{
		code:    code,
		message: fmt.Sprintf(format, args...),
		context: nil,
		cause:   nil,
	}
}

// Sentinel returns a comparison target for errors.Is that matches any
// CodedError carrying the given code, regardless of message or context.
//
// Example:
//
//	var ErrKeyNotFound = errors.Sentinel(errors.CodeKeyNotFound)
//
//	if errors.Is(err, ErrKeyNotFound) {
//	    // Handle missing key
//	}
func Sentinel(code ErrorCode) CodedError {
	return &codedError{
		code:     code,
		message:  string(code),
		sentinel: true,
	}
}
