// Package errors defines the structured error type shared across services
package errors

// Import this package as perr so call sites read perr.ValidationErrf(...)

import (
	stderrs "errors"
	"fmt"
	"net/http"
)

// ErrorCode classifies errors for transport mapping and logging.
// Values are stable; append, never reorder
type ErrorCode uint16

const (
	// ErrorCodeUnknown is for unclassified errors
	ErrorCodeUnknown ErrorCode = iota

	// ErrorCodePanic is for panics recovered by middleware
	ErrorCodePanic

	// ErrorCodeUnavailable is for transient failures where retry may succeed
	ErrorCodeUnavailable

	// ErrorCodeInvalidArgument is for bad input parameters
	ErrorCodeInvalidArgument

	// ErrorCodeValidation is for request data that failed validation
	ErrorCodeValidation

	// ErrorCodeJSON is for bodies that could not be parsed as JSON
	ErrorCodeJSON

	// ErrorCodeNotFound is for missing resources
	ErrorCodeNotFound

	// ErrorCodeDuplicateKey is for unique constraint violations
	ErrorCodeDuplicateKey

	// ErrorCodeDB is for general database failures
	ErrorCodeDB

	// ErrorCodeNotify is for alert delivery failures.
	// Never surfaced over the wire; classification requests must not fail on it
	ErrorCodeNotify
)

// HTTPStatusCode maps an ErrorCode to an http status
func HTTPStatusCode(c ErrorCode) int {
	switch c {
	case ErrorCodeNotFound:
		return http.StatusNotFound
	case ErrorCodeDuplicateKey:
		return http.StatusConflict
	case ErrorCodeValidation, ErrorCodeJSON, ErrorCodeInvalidArgument:
		return http.StatusBadRequest
	case ErrorCodeUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// ErrNotFound is the shared not-found sentinel
var ErrNotFound = New(ErrorCodeNotFound, "not found")

// Error carries a code, a message, and optional field/op metadata around a
// wrapped cause. msg is safe to show a client; orig usually is not
type Error struct {
	orig  error
	msg   string
	code  ErrorCode
	field string
	op    string
}

// Wire is the JSON body error responses carry.
// The contract is a bare message; codes stay server side
type Wire struct {
	Message string `json:"message"`
}

// Error implements the error interface
func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.orig != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.orig)
	}
	return e.msg
}

// Unwrap exposes the wrapped cause
func (e *Error) Unwrap() error { return e.orig }

// Code returns the classification
func (e *Error) Code() ErrorCode { return e.code }

// Field names the offending input field, when known
func (e *Error) Field() string { return e.field }

// Op names the operation that failed, when set
func (e *Error) Op() string { return e.op }

// ToWire projects the error onto the transport shape
func (e *Error) ToWire() Wire { return Wire{Message: e.msg} }

// WireFrom projects any error onto the transport shape; nil yields a zero Wire
func WireFrom(err error) Wire {
	if err == nil {
		return Wire{}
	}
	if e, ok := As(err); ok {
		return e.ToWire()
	}
	return Wire{Message: err.Error()}
}

// Constructors

// New builds an *Error with a code and message
func New(code ErrorCode, msg string) error { return &Error{code: code, msg: msg} }

// Newf builds an *Error with a code and formatted message
func Newf(code ErrorCode, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...)}
}

// Wrap builds an *Error around orig
func Wrap(orig error, code ErrorCode, msg string) error {
	return &Error{code: code, msg: msg, orig: orig}
}

// Wrapf builds an *Error around orig with a formatted message
func Wrapf(orig error, code ErrorCode, format string, a ...any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...), orig: orig}
}

// WrapIf wraps only when err is non nil
func WrapIf(err error, code ErrorCode, msg string) error {
	if err == nil {
		return nil
	}
	return Wrap(err, code, msg)
}

// Inspection

// As unwraps err to (*Error, true) when it is one of ours
func As(err error) (*Error, bool) {
	var e *Error
	if stderrs.As(err, &e) {
		return e, true
	}
	return nil, false
}

// Root walks the wrap chain to the deepest cause
func Root(err error) error {
	for err != nil {
		u := stderrs.Unwrap(err)
		if u == nil {
			return err
		}
		err = u
	}
	return nil
}

// CodeOf extracts the ErrorCode, defaulting to Unknown
func CodeOf(err error) ErrorCode {
	if e, ok := As(err); ok {
		return e.code
	}
	return ErrorCodeUnknown
}

// IsCode reports whether err carries the given code
func IsCode(err error, code ErrorCode) bool { return CodeOf(err) == code }

// HTTPStatus maps any error to an http status via its code
func HTTPStatus(err error) int { return HTTPStatusCode(CodeOf(err)) }

// Mutators, copy-on-write so shared sentinels stay untouched

// WithField attaches a field name; non-project errors pass through unchanged
func WithField(err error, field string) error {
	if e, ok := As(err); ok {
		c := *e
		c.field = field
		return &c
	}
	return err
}

// WithOp attaches an operation label; non-project errors pass through unchanged
func WithOp(err error, op string) error {
	if e, ok := As(err); ok {
		c := *e
		c.op = op
		return &c
	}
	return err
}

// Sugar, one constructor per code

// NotFoundf builds a not found error
func NotFoundf(format string, a ...any) error { return Newf(ErrorCodeNotFound, format, a...) }

// InvalidArgf builds an invalid argument error
func InvalidArgf(format string, a ...any) error { return Newf(ErrorCodeInvalidArgument, format, a...) }

// ValidationErrf builds a validation error, surfaced as a 400
func ValidationErrf(format string, a ...any) error { return Newf(ErrorCodeValidation, format, a...) }

// JSONErrf builds a JSON parsing error
func JSONErrf(format string, a ...any) error { return Newf(ErrorCodeJSON, format, a...) }

// PanicErrf builds a recovered panic error
func PanicErrf(format string, a ...any) error { return Newf(ErrorCodePanic, format, a...) }

// Unavailablef builds a transient unavailability error
func Unavailablef(format string, a ...any) error { return Newf(ErrorCodeUnavailable, format, a...) }

// DBf builds a general database error
func DBf(format string, a ...any) error { return Newf(ErrorCodeDB, format, a...) }

// Notifyf builds an alert delivery error, logged but never surfaced
func Notifyf(format string, a ...any) error { return Newf(ErrorCodeNotify, format, a...) }
