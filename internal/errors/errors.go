package errors

import (
	"errors"
	"fmt"
)

// Code categorizes an error so callers can branch without string matching
type Code string

const (
	// CodeUnknown indicates an error that was not produced by this package
	CodeUnknown Code = "unknown"

	// CodeInvalidArgument indicates a caller supplied a value that cannot be used
	CodeInvalidArgument Code = "invalid_argument"

	// CodeNotFound indicates a requested resource was not found
	CodeNotFound Code = "not_found"

	// CodeAlreadyExists indicates an attempt to create a resource that already exists
	CodeAlreadyExists Code = "already_exists"

	// CodeInternal indicates internal system error
	CodeInternal Code = "internal"

	// CodeUnknownClass indicates a character class name with no catalog entry.
	// Classes cannot be synthesized, so this is always fatal.
	CodeUnknownClass Code = "unknown_class"

	// CodeLengthMismatch indicates parallel class/level/subclass lists of different lengths
	CodeLengthMismatch Code = "length_mismatch"

	// CodeInvalidType indicates a value of the wrong type, e.g. a fractional hp_max
	CodeInvalidType Code = "invalid_type"

	// CodeNegativeLevel indicates a class level below one
	CodeNegativeLevel Code = "negative_level"
)

// Error represents an application error with code and metadata
type Error struct {
	// Code is the error code
	Code Code

	// Message is the error message
	Message string

	// Cause is the wrapped error
	Cause error

	// Meta contains additional context
	Meta map[string]any
}

// Error returns the error message
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithMeta adds metadata to the error (builder pattern)
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

// IsStructural reports whether the error means the character description itself is malformed
func (e *Error) IsStructural() bool {
	switch e.Code {
	case CodeUnknownClass, CodeLengthMismatch, CodeInvalidType, CodeNegativeLevel:
		return true
	default:
		return false
	}
}

// New creates a new error with the given code and message
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// Newf creates a new error with formatted message
func Newf(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Wrap wraps an error with additional context, keeping the code of a wrapped *Error
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	var sheetErr *Error
	if errors.As(err, &sheetErr) {
		return &Error{
			Code:    sheetErr.Code,
			Message: message,
			Cause:   err,
			Meta:    copyMeta(sheetErr.Meta),
		}
	}

	return &Error{
		Code:    CodeUnknown,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted message
func Wrapf(err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps an error with a specific code
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := Wrap(err, message)
	wrapped.Code = code
	return wrapped
}

// NotFoundf creates a formatted not found error
func NotFoundf(format string, args ...any) *Error {
	return Newf(CodeNotFound, format, args...)
}

// InvalidArgument creates an invalid argument error
func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

// InvalidArgumentf creates a formatted invalid argument error
func InvalidArgumentf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

// AlreadyExistsf creates a formatted already exists error
func AlreadyExistsf(format string, args ...any) *Error {
	return Newf(CodeAlreadyExists, format, args...)
}

// Internalf creates a formatted internal error
func Internalf(format string, args ...any) *Error {
	return Newf(CodeInternal, format, args...)
}

// UnknownClassf creates a formatted unknown class error
func UnknownClassf(format string, args ...any) *Error {
	return Newf(CodeUnknownClass, format, args...)
}

// LengthMismatchf creates a formatted length mismatch error
func LengthMismatchf(format string, args ...any) *Error {
	return Newf(CodeLengthMismatch, format, args...)
}

// InvalidTypef creates a formatted invalid type error
func InvalidTypef(format string, args ...any) *Error {
	return Newf(CodeInvalidType, format, args...)
}

// NegativeLevelf creates a formatted negative level error
func NegativeLevelf(format string, args ...any) *Error {
	return Newf(CodeNegativeLevel, format, args...)
}

// Is checks if the error is of a specific code
func Is(err error, code Code) bool {
	var sheetErr *Error
	if errors.As(err, &sheetErr) {
		return sheetErr.Code == code
	}
	return false
}

// IsNotFound checks if the error is a not found error
func IsNotFound(err error) bool {
	return Is(err, CodeNotFound)
}

// IsInvalidArgument checks if the error is an invalid argument error
func IsInvalidArgument(err error) bool {
	return Is(err, CodeInvalidArgument)
}

// IsAlreadyExists checks if the error is an already exists error
func IsAlreadyExists(err error) bool {
	return Is(err, CodeAlreadyExists)
}

// IsUnknownClass checks if the error is an unknown class error
func IsUnknownClass(err error) bool {
	return Is(err, CodeUnknownClass)
}

// IsStructural reports whether err carries one of the structural codes
func IsStructural(err error) bool {
	var sheetErr *Error
	if errors.As(err, &sheetErr) {
		return sheetErr.IsStructural()
	}
	return false
}

// GetCode returns the error code
func GetCode(err error) Code {
	var sheetErr *Error
	if errors.As(err, &sheetErr) {
		return sheetErr.Code
	}
	return CodeUnknown
}

// GetMeta returns the error metadata
func GetMeta(err error) map[string]any {
	var sheetErr *Error
	if errors.As(err, &sheetErr) {
		return sheetErr.Meta
	}
	return nil
}

func copyMeta(meta map[string]any) map[string]any {
	if meta == nil {
		return nil
	}

	copied := make(map[string]any, len(meta))
	for k, v := range meta {
		copied[k] = v
	}
	return copied
}
