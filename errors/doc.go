// Package errors provides the structured error taxonomy for validated operations.
//
// Every operation in the guard library either returns a correct value or signals
// exactly one error kind. This package defines those kinds as error codes and
// provides an immutable error type that carries the code, a message, context
// metadata, and an optional cause. It maintains full compatibility with the
// standard library errors package (errors.Is, errors.As, errors.Unwrap).
//
// # Quick Start
//
// Creating errors:
//
//	// Simple error
//	err := errors.New(errors.CodeNullInput, "text must not be absent")
//
//	// Formatted error
//	err := errors.Newf(errors.CodeIndexOutOfRange, "index %d out of range [0, %d)", i, n)
//
// Wrapping errors:
//
//	n, err := strconv.Atoi(text)
//	if err != nil {
//	    return 0, errors.Wrap(err, errors.CodeFormat, "text is not a base-10 integer")
//	}
//
// Adding context:
//
//	err := errors.New(errors.CodeKeyNotFound, "key not found")
//	err = errors.WithContext(err, "key", key)
//
// Matching by code:
//
//	switch errors.GetCode(err) {
//	case errors.CodeKeyNotFound:
//	    // ...
//	case errors.CodeFormat:
//	    // ...
//	}
//
//	// Or with a sentinel through the standard library
//	if stderrors.Is(err, errors.Sentinel(errors.CodeOverflow)) {
//	    // ...
//	}
//
// # Error Codes
//
//   - Input errors: CodeNullInput, CodeInvalidArgument, CodeIndexOutOfRange, CodeInvalidState
//   - Conversion errors: CodeFormat
//   - Lookup errors: CodeKeyNotFound
//   - Arithmetic errors: CodeOverflow, CodeDivideByZero
//   - Generic: CodeUnknown (plain errors that carry no code)
//
// Errors are never retried or recovered by this package. A code describes the
// violated precondition; deciding what to do about it is the caller's job.
//
// # JSON
//
// ToJSON and MarshalJSON render code, message, and context. The cause chain is
// never serialized.
package errors
