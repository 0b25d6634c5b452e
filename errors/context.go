package errors

import "errors"

// WithContext adds a single context field to an error.
// Returns a new CodedError with the context field added.
// Existing context fields are preserved.
//
// If err is not a CodedError, it is converted to one with CodeUnknown.
// Returns nil if err is nil.
//
// Example:
//
//	err := errors.New(errors.CodeKeyNotFound, "key not found")
//	err = errors.WithContext(err, "key", "seven")
func WithContext(err error, key string, value interface{}) CodedError {
	if err == nil {
		return nil
	}

	return WithContextMap(err, map[string]interface{}{key: value})
}

// WithContextMap adds multiple context fields to an error.
// Returns a new CodedError with the context fields merged.
// Existing context fields are preserved; new fields override existing ones with the same key.
//
// If err is not a CodedError, it is converted to one with CodeUnknown.
// Returns nil if err is nil.
//
// Example:
//
//	err := errors.New(errors.CodeIndexOutOfRange, "index out of range")
//	err = errors.WithContextMap(err, map[string]interface{}{
//	    "index":  5,
//	    "length": 3,
//	})
func WithContextMap(err error, ctx map[string]interface{}) CodedError {
	if err == nil {
		return nil
	}

	codedErr := toCoded(err)

	newContext := make(map[string]interface{})
	if existingCtx := codedErr.Context(); existingCtx != nil {
		for k, v := range existingCtx {
			newContext[k] = v
		}
	}
	// New fields override existing
	for k, v := range ctx {
		newContext[k] = v
	}

	return &codedError{
		code:    codedErr.Code(),
		message: codedErr.Message(),
		context: newContext,
		cause:   codedErr.Unwrap(),
	}
}

// toCoded returns err as a CodedError, converting plain errors to CodeUnknown.
func toCoded(err error) CodedError {
	var codedErr CodedError
	if errors.As(err, &codedErr) {
		return codedErr
	}
	return &codedError{
		code:    CodeUnknown,
		message: err.Error(),
		context: nil,
		cause:   err,
	}
}
