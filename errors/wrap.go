package errors

import "fmt"

// Wrap wraps an error with a code while preserving the original error.
// The wrapped error is accessible via Unwrap() and compatible with errors.Is and errors.As.
//
// Returns nil if err is nil.
//
// Example:
//
//	n, err := strconv.Atoi(text)
//	if err != nil {
//	    return 0, errors.Wrap(err, errors.CodeFormat, "text is not a base-10 integer")
//	}
func Wrap(err error, code ErrorCode, message string) CodedError {
	if err == nil {
		return nil
	}

	return &codedError{
		code:    code,
		message: message,
		context: nil,
		cause:   err,
	}
}

// Wrapf wraps an error with a formatted message while preserving the original error.
//
// Returns nil if err is nil.
//
// Example:
//
//	if err != nil {
//	    return errors.Wrapf(err, errors.CodeFormat, "value for key %q is not numeric", key)
//	}
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) CodedError {
	if err == nil {
		return nil
	}

	return Wrap(err, code, fmt.Sprintf(format, args...))
}

// WrapWithContext wraps an error and attaches context metadata in a single operation.
// The context map is copied to prevent external mutation.
//
// Returns nil if err is nil.
//
// Example:
//
//	return errors.WrapWithContext(err, errors.CodeOverflow, "integer out of range", map[string]interface{}{
//	    "text": text,
//	})
func WrapWithContext(err error, code ErrorCode, message string, ctx map[string]interface{}) CodedError {
	if err == nil {
		return nil
	}

	var contextCopy map[string]interface{}
	if ctx != nil {
		contextCopy = make(map[string]interface{}, len(ctx))
		for k, v := range ctx {
			contextCopy[k] = v
		}
	}

	return &codedError{
		code:    code,
		message: message,
		context: contextCopy,
		cause:   err,
	}
}
