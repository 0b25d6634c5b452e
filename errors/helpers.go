package errors

import (
	stderrors "errors"
)

// Is reports whether any error in err's chain matches target.
// This is a convenience wrapper around the standard library errors.Is.
//
// Example:
//
//	if errors.Is(err, errors.Sentinel(errors.CodeOverflow)) {
//	    // Handle overflow
//	}
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
// This is a convenience wrapper around the standard library errors.As.
//
// Example:
//
//	var codedErr CodedError
//	if errors.As(err, &codedErr) {
//	    code := codedErr.Code()
//	}
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// GetCode extracts the ErrorCode from an error.
// Returns CodeUnknown if the error is nil or not a CodedError.
//
// This function handles the error chain and will extract the code from
// the outermost CodedError in the chain.
//
// Example:
//
//	if errors.GetCode(err) == errors.CodeKeyNotFound {
//	    // Handle missing key
//	}
func GetCode(err error) ErrorCode {
	if err == nil {
		return CodeUnknown
	}

	var codedErr CodedError
	if stderrors.As(err, &codedErr) {
		return codedErr.Code()
	}

	return CodeUnknown
}

// HasCode reports whether the outermost CodedError in err's chain carries code.
func HasCode(err error, code ErrorCode) bool {
	return err != nil && GetCode(err) == code
}
