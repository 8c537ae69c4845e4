// Package errors provides typed errors shared by the catalog, engine and
// transports. Transports map a Type to an exit code or HTTP status.
package errors

import (
	"context"
	stderrors "errors"
	"fmt"
)

// Type identifies the category of error
type Type string

const (
	// TypeInput indicates calculator input that cannot be evaluated
	TypeInput Type = "INPUT_ERROR"

	// TypeParsing indicates a malformed request body or catalog file
	TypeParsing Type = "PARSING_ERROR"

	// TypeConfig indicates an invalid config file or tier catalog
	TypeConfig Type = "CONFIG_ERROR"

	// TypeNotFound indicates an unknown tier or resource
	TypeNotFound Type = "NOT_FOUND"

	// TypeNotSupported indicates an unknown format or file type
	TypeNotSupported Type = "NOT_SUPPORTED"

	// TypeCanceled indicates the caller went away or ran out of time
	TypeCanceled Type = "CANCELED"

	// TypeInternal indicates a failure that is not the caller's fault
	TypeInternal Type = "INTERNAL_ERROR"
)

// Error carries a Type, a user-facing message and an optional cause
type Error struct {
	Type    Type                   `json:"type"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
}

func (e *Error) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("[%s] %s", e.Type, e.Message)
	}
	return fmt.Sprintf("[%s] %s: %v", e.Type, e.Message, e.Cause)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// WithContext attaches a key/value pair and returns e
func (e *Error) WithContext(key string, value interface{}) *Error {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// New creates an error without a cause
func New(errType Type, message string) *Error {
	return &Error{Type: errType, Message: message}
}

// Newf is New with a formatted message
func Newf(errType Type, format string, args ...interface{}) *Error {
	return New(errType, fmt.Sprintf(format, args...))
}

// Wrap creates an error around cause
func Wrap(errType Type, message string, cause error) *Error {
	return &Error{Type: errType, Message: message, Cause: cause}
}

// As finds the first *Error in err's chain
func As(err error) (*Error, bool) {
	var e *Error
	if stderrors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// IsType reports whether err, or anything it wraps, has type t
func IsType(err error, t Type) bool {
	return err != nil && TypeOf(err) == t
}

// TypeOf returns the type of err. Untyped context errors are TypeCanceled,
// any other foreign error is TypeInternal.
func TypeOf(err error) Type {
	if e, ok := As(err); ok {
		return e.Type
	}
	if stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded) {
		return TypeCanceled
	}
	return TypeInternal
}

// Input creates an input error
func Input(message string) *Error {
	return New(TypeInput, message)
}

// Parsing creates a parsing error
func Parsing(message string, cause error) *Error {
	return Wrap(TypeParsing, message, cause)
}

// Config creates a configuration error
func Config(message string, cause error) *Error {
	return Wrap(TypeConfig, message, cause)
}

// NotFound creates a not found error keyed by kind
func NotFound(kind, identifier string) *Error {
	return Newf(TypeNotFound, "%s not found: %s", kind, identifier).WithContext(kind, identifier)
}

// NotSupported creates a not supported error
func NotSupported(operation string) *Error {
	return Newf(TypeNotSupported, "operation not supported: %s", operation)
}

// Canceled wraps a context error
func Canceled(cause error) *Error {
	return Wrap(TypeCanceled, "request canceled", cause)
}

// Internal creates an internal error
func Internal(message string, cause error) *Error {
	return Wrap(TypeInternal, message, cause)
}
