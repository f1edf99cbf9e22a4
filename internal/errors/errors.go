// Package errors carries coded errors through the metamagic pipeline. A code
// survives wrapping, so callers branch on what went wrong rather than on text.
package errors

import (
	"errors"
	"fmt"
	"maps"
)

// Code categorizes an error
type Code string

const (
	CodeUnknown         Code = "unknown"
	CodeInvalidArgument Code = "invalid_argument"
	CodeNotFound        Code = "not_found"
	CodeAlreadyExists   Code = "already_exists"
	CodeInternal        Code = "internal"
	CodeValidation      Code = "validation"

	// CodeRejected means the cast must not go ahead
	CodeRejected Code = "rejected"
	// CodeCancelled means the caster dismissed an interactive step
	CodeCancelled Code = "cancelled"
	// CodeResourceExhausted means the caster lacks the slots or charges to pay
	CodeResourceExhausted Code = "resource_exhausted"
)

// Error is a coded error with optional cause and metadata
type Error struct {
	Code    Code
	Message string
	Cause   error
	Meta    map[string]any
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return e.Message
	}
	return e.Message + ": " + e.Cause.Error()
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches a bare coded error, so errors.Is(err, &Error{Code: CodeNotFound}) works
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Message == "" && t.Cause == nil && t.Code == e.Code
}

// WithMeta attaches a key to the error and returns it
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = map[string]any{}
	}
	e.Meta[key] = value
	return e
}

// New creates an error with code
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates an error with code and a formatted message
func Newf(code Code, format string, args ...any) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap adds context to err. A coded cause keeps its code and a copy of its metadata.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}
	wrapped := &Error{Code: CodeUnknown, Message: message, Cause: err}
	if coded, ok := asError(err); ok {
		wrapped.Code = coded.Code
		wrapped.Meta = maps.Clone(coded.Meta)
	}
	return wrapped
}

func Wrapf(err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps err and overrides its code
func WrapWithCode(err error, code Code, message string) *Error {
	wrapped := Wrap(err, message)
	if wrapped != nil {
		wrapped.Code = code
	}
	return wrapped
}

func NotFound(message string) *Error { return New(CodeNotFound, message) }

func NotFoundf(format string, args ...any) *Error { return Newf(CodeNotFound, format, args...) }

func InvalidArgument(message string) *Error { return New(CodeInvalidArgument, message) }

func InvalidArgumentf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

func AlreadyExistsf(format string, args ...any) *Error {
	return Newf(CodeAlreadyExists, format, args...)
}

func Internalf(format string, args ...any) *Error { return Newf(CodeInternal, format, args...) }

func Validationf(format string, args ...any) *Error { return Newf(CodeValidation, format, args...) }

func Rejected(message string) *Error { return New(CodeRejected, message) }

func Cancelled(message string) *Error { return New(CodeCancelled, message) }

func ResourceExhausted(message string) *Error { return New(CodeResourceExhausted, message) }

// Is reports whether err carries code anywhere in its chain
func Is(err error, code Code) bool {
	return GetCode(err) == code
}

func IsNotFound(err error) bool          { return Is(err, CodeNotFound) }
func IsInvalidArgument(err error) bool   { return Is(err, CodeInvalidArgument) }
func IsResourceExhausted(err error) bool { return Is(err, CodeResourceExhausted) }
func IsCancelled(err error) bool         { return Is(err, CodeCancelled) }

// GetCode returns the outermost code in err's chain, or CodeUnknown
func GetCode(err error) Code {
	if coded, ok := asError(err); ok {
		return coded.Code
	}
	return CodeUnknown
}

// GetMeta returns the outermost metadata in err's chain
func GetMeta(err error) map[string]any {
	if coded, ok := asError(err); ok {
		return coded.Meta
	}
	return nil
}

func asError(err error) (*Error, bool) {
	var coded *Error
	if errors.As(err, &coded) {
		return coded, true
	}
	return nil, false
}
