// Package errors provides coded errors shared by the feature engine, the
// spell catalog and the CLI. Codes survive wrapping, both by Wrap and by
// fmt.Errorf("%w").
package errors

import (
	"context"
	"errors"
	"fmt"
)

// Code classifies an error
type Code string

const (
	CodeUnknown         Code = "unknown"
	CodeInvalidArgument Code = "invalid_argument"
	CodeNotFound        Code = "not_found"
	CodeAlreadyExists   Code = "already_exists"

	// CodeUnavailable indicates a remote dependency could not be reached
	CodeUnavailable Code = "unavailable"

	// CodeCanceled and CodeDeadlineExceeded mirror the context errors
	CodeCanceled         Code = "canceled"
	CodeDeadlineExceeded Code = "deadline_exceeded"

	// CodeUnimplemented marks a feature whose rules are descriptive only
	CodeUnimplemented Code = "unimplemented"

	// CodeBinding indicates a feature owner was read before binding or rebound
	CodeBinding Code = "binding"

	// CodeUnknownOption indicates a selector received a key it does not declare
	CodeUnknownOption Code = "unknown_option"
)

// Error is a coded error with optional cause and metadata
type Error struct {
	Code    Code
	Message string
	Cause   error
	Meta    map[string]any
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// WithMeta records a key/value pair on the error and returns it
func (e *Error) WithMeta(key string, value any) *Error {
	if e.Meta == nil {
		e.Meta = make(map[string]any)
	}
	e.Meta[key] = value
	return e
}

// New creates an error with the given code
func New(code Code, message string) *Error {
	return &Error{Code: code, Message: message}
}

// Newf creates an error with the given code and a formatted message
func Newf(code Code, format string, args ...any) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap adds context to err. A wrapped *Error keeps its code and metadata,
// context errors get the matching code, anything else is CodeUnknown.
func Wrap(err error, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := &Error{Code: codeOf(err), Message: message, Cause: err}

	var coded *Error
	if errors.As(err, &coded) {
		wrapped.Meta = copyMeta(coded.Meta)
	}
	return wrapped
}

// Wrapf is Wrap with a formatted message
func Wrapf(err error, format string, args ...any) *Error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapWithCode wraps err and replaces its code
func WrapWithCode(err error, code Code, message string) *Error {
	if err == nil {
		return nil
	}

	wrapped := Wrap(err, message)
	wrapped.Code = code
	return wrapped
}

func NotFound(message string) *Error {
	return New(CodeNotFound, message)
}

func NotFoundf(format string, args ...any) *Error {
	return Newf(CodeNotFound, format, args...)
}

func InvalidArgument(message string) *Error {
	return New(CodeInvalidArgument, message)
}

func InvalidArgumentf(format string, args ...any) *Error {
	return Newf(CodeInvalidArgument, format, args...)
}

func AlreadyExistsf(format string, args ...any) *Error {
	return Newf(CodeAlreadyExists, format, args...)
}

func Bindingf(format string, args ...any) *Error {
	return Newf(CodeBinding, format, args...)
}

func UnknownOptionf(format string, args ...any) *Error {
	return Newf(CodeUnknownOption, format, args...)
}

func Unimplementedf(format string, args ...any) *Error {
	return Newf(CodeUnimplemented, format, args...)
}

// Is reports whether err carries code anywhere in its chain
func Is(err error, code Code) bool {
	return err != nil && GetCode(err) == code
}

func IsNotFound(err error) bool        { return Is(err, CodeNotFound) }
func IsInvalidArgument(err error) bool { return Is(err, CodeInvalidArgument) }
func IsAlreadyExists(err error) bool   { return Is(err, CodeAlreadyExists) }
func IsBinding(err error) bool         { return Is(err, CodeBinding) }
func IsUnknownOption(err error) bool   { return Is(err, CodeUnknownOption) }
func IsUnimplemented(err error) bool   { return Is(err, CodeUnimplemented) }

// IsCanceled reports whether err comes from a canceled or expired context
func IsCanceled(err error) bool {
	return Is(err, CodeCanceled) || Is(err, CodeDeadlineExceeded)
}

// GetCode returns the code of the outermost *Error in the chain
func GetCode(err error) Code {
	return codeOf(err)
}

// GetMeta returns the metadata of the outermost *Error in the chain
func GetMeta(err error) map[string]any {
	var coded *Error
	if errors.As(err, &coded) {
		return coded.Meta
	}
	return nil
}

func codeOf(err error) Code {
	var coded *Error
	switch {
	case errors.As(err, &coded):
		return coded.Code
	case errors.Is(err, context.Canceled):
		return CodeCanceled
	case errors.Is(err, context.DeadlineExceeded):
		return CodeDeadlineExceeded
	}
	return CodeUnknown
}

func copyMeta(meta map[string]any) map[string]any {
	if meta == nil {
		return nil
	}
	out := make(map[string]any, len(meta))
	for k, v := range meta {
		out[k] = v
	}
	return out
}
