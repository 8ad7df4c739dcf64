package enums

import (
	"errors"
	"fmt"
)

// Sentinel errors for common enumeration error conditions.
// These errors can be used with errors.Is() for error checking.
var (
	// ErrNotRegistered indicates the enumeration type has not been registered.
	ErrNotRegistered = errors.New("enum type not registered")

	// ErrAlreadyRegistered indicates the enumeration type, or its registered
	// name, has already been registered.
	ErrAlreadyRegistered = errors.New("enum type already registered")

	// ErrOutOfRange indicates a numeric input does not fit the enumeration's
	// underlying type.
	ErrOutOfRange = errors.New("value out of range for underlying type")

	// ErrNotRecognized indicates a string input did not match any member
	// under the formats in effect.
	ErrNotRecognized = errors.New("string not recognized as enum member")

	// ErrInvalidFormatCode indicates a format code other than the supported
	// G/g, F/f, D/d, X/x set.
	ErrInvalidFormatCode = errors.New("invalid format code")

	// ErrInvalidMember indicates a member source produced an unusable member,
	// such as an empty or duplicated name.
	ErrInvalidMember = errors.New("invalid member definition")

	// ErrSourceFailed indicates a member source could not enumerate its
	// members. The underlying cause is wrapped.
	ErrSourceFailed = errors.New("member source failed")
)

// Error is a structured error type that wraps underlying errors with
// additional context about the operation that failed and the enumeration
// involved.
//
// Error implements the error interface and supports error unwrapping,
// making it compatible with errors.Is() and errors.As().
//
// Example usage:
//
//	err := &Error{
//		Op:   "Parse",
//		Type: "Color",
//		Err:  ErrNotRecognized,
//	}
type Error struct {
	// Op is the operation that failed (e.g. "Parse", "Format", "Register").
	Op string

	// Type is the registered name of the enumeration, when known.
	Type string

	// Input is the offending input, when the operation had one.
	Input string

	// Err is the underlying error that caused this error.
	Err error
}

// Error implements the error interface, returning a formatted message
// that includes the operation, the enumeration, and the underlying error.
func (e *Error) Error() string {
	switch {
	case e.Err == nil:
		return fmt.Sprintf("enums: %s %s", e.Op, e.Type)
	case e.Input != "":
		return fmt.Sprintf("enums: %s %s %q: %v", e.Op, e.Type, e.Input, e.Err)
	case e.Type != "":
		return fmt.Sprintf("enums: %s %s: %v", e.Op, e.Type, e.Err)
	default:
		return fmt.Sprintf("enums: %s: %v", e.Op, e.Err)
	}
}

// Unwrap returns the underlying error, allowing errors.Is() and errors.As()
// to work correctly with wrapped errors.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is implements error matching for Error, allowing comparison against
// another Error whose populated fields all match, or against the
// underlying error.
func (e *Error) Is(target error) bool {
	if target == nil {
		return false
	}

	if t, ok := target.(*Error); ok {
		if t.Op != "" && t.Op != e.Op {
			return false
		}
		if t.Type != "" && t.Type != e.Type {
			return false
		}
		if t.Op != "" || t.Type != "" {
			return t.Err == nil || errors.Is(e.Err, t.Err)
		}
	}

	return errors.Is(e.Err, target)
}

// NewParseError creates a new Error for a failed parse of input.
func NewParseError(typeName, input string, err error) *Error {
	return &Error{
		Op:    "Parse",
		Type:  typeName,
		Input: input,
		Err:   err,
	}
}

// NewFormatError creates a new Error for a failed format request.
func NewFormatError(typeName, input string, err error) *Error {
	return &Error{
		Op:    "Format",
		Type:  typeName,
		Input: input,
		Err:   err,
	}
}

// NewRegisterError creates a new Error for a failed registration.
func NewRegisterError(typeName string, err error) *Error {
	return &Error{
		Op:   "Register",
		Type: typeName,
		Err:  err,
	}
}

// NewConversionError creates a new Error for a failed numeric conversion
// into the enumeration's underlying type.
func NewConversionError(typeName, input string, err error) *Error {
	return &Error{
		Op:    "Convert",
		Type:  typeName,
		Input: input,
		Err:   err,
	}
}
