// Package apierr defines the three error kinds the offer engine surfaces to
// its callers, trimmed from the teacher's IAROSError to the kinds this
// service actually needs: it has no external backend to retry against, no
// alerting pipeline, and nothing sensitive to redact from the response.
package apierr

import (
	"errors"
	"fmt"
)

// Kind classifies an error for the purpose of HTTP status mapping and
// logging severity.
type Kind string

const (
	// Validation covers malformed request shape, out-of-range page,
	// non-positive width, and unknown enum values. Reported to the caller,
	// never retried.
	Validation Kind = "validation_error"

	// NotFound covers a region id outside [0,124]. Per spec.md section 7 it
	// is treated identically to an empty candidate set — callers never see
	// this kind as an error response, only as a zero-valued result.
	NotFound Kind = "not_found"

	// Internal covers invariant violations such as an offer index out of
	// bounds. Surfaced to the caller; the server continues serving other
	// requests.
	Internal Kind = "internal_error"
)

// Error is the engine's standard error type. Op names the operation that
// failed (e.g. "query", "insert", "cleanup") for logging context.
type Error struct {
	Kind    Kind
	Op      string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %s: %v", e.Op, e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Validationf builds a Validation error.
func Validationf(op, format string, args ...interface{}) *Error {
	return &Error{Kind: Validation, Op: op, Message: fmt.Sprintf(format, args...)}
}

// NotFoundf builds a NotFound error.
func NotFoundf(op, format string, args ...interface{}) *Error {
	return &Error{Kind: NotFound, Op: op, Message: fmt.Sprintf(format, args...)}
}

// Internalf builds an Internal error, optionally wrapping a cause.
func Internalf(op string, cause error, format string, args ...interface{}) *Error {
	return &Error{Kind: Internal, Op: op, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// KindOf extracts the Kind from err if it is (or wraps) an *Error, defaulting
// to Internal for unrecognized errors so callers never leak a raw Go error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Internal
}
