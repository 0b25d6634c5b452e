package errors

// ErrorCode represents a specific error condition.
// Error codes are string-based for debuggability and natural JSON serialization.
type ErrorCode string

const (
	// Input errors.

	// CodeNullInput indicates a required input was absent.
	CodeNullInput ErrorCode = "NULL_INPUT"

	// CodeInvalidArgument indicates a numeric input violated its documented range.
	CodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"

	// CodeIndexOutOfRange indicates an index fell outside [0, length).
	CodeIndexOutOfRange ErrorCode = "INDEX_OUT_OF_RANGE"

	// CodeInvalidState indicates an operation was attempted while a required
	// precondition flag was false.
	CodeInvalidState ErrorCode = "INVALID_STATE"

	// Conversion errors.

	// CodeFormat indicates text could not be parsed into the expected numeric type.
	CodeFormat ErrorCode = "FORMAT_ERROR"

	// Lookup errors.

	// CodeKeyNotFound indicates a lookup key was absent from a mapping.
	CodeKeyNotFound ErrorCode = "KEY_NOT_FOUND"

	// Arithmetic errors.

	// CodeOverflow indicates an arithmetic result exceeded the representable range.
	CodeOverflow ErrorCode = "OVERFLOW"

	// CodeDivideByZero indicates division was attempted with a zero divisor.
	CodeDivideByZero ErrorCode = "DIVIDE_BY_ZERO"

	// Generic errors.

	// CodeUnknown indicates an error that does not carry a code.
	CodeUnknown ErrorCode = "UNKNOWN"
)

// taxonomy lists every code an operation may signal, in declaration order.
var taxonomy = []ErrorCode{
	CodeNullInput,
	CodeInvalidArgument,
	CodeIndexOutOfRange,
	CodeInvalidState,
	CodeFormat,
	CodeKeyNotFound,
	CodeOverflow,
	CodeDivideByZero,
}

// Codes returns the error codes an operation may signal.
// CodeUnknown is not part of the taxonomy and is never returned.
func Codes() []ErrorCode {
	codes := make([]ErrorCode, len(taxonomy))
	copy(codes, taxonomy)
	return codes
}

// Valid reports whether c is one of the taxonomy codes.
func (c ErrorCode) Valid() bool {
	for _, code := range taxonomy {
		if code == c {
			return true
		}
	}
	return false
}
