// Package errors provides error types and utilities for docsweep.
// It extends the standard errors package with wrapping helpers and a
// transient/terminal classification used by the probe scheduler.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure scenarios
var (
	// ErrTimeout indicates an operation exceeded its time limit
	ErrTimeout = errors.New("operation timed out")

	// ErrRateLimit indicates the remote endpoint is throttling us
	ErrRateLimit = errors.New("rate limit exceeded")

	// ErrNotFound indicates the probed document does not exist
	ErrNotFound = errors.New("document not found")

	// ErrAccessDenied indicates the document exists but is not publicly readable
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput indicates invalid input was provided
	ErrInvalidInput = errors.New("invalid input")

	// ErrConnectionFailed indicates a connection could not be established
	ErrConnectionFailed = errors.New("connection failed")

	// ErrServiceUnavailable indicates the endpoint is temporarily unavailable
	ErrServiceUnavailable = errors.New("service unavailable")

	// ErrInvalidResponse indicates a response could not be parsed or was malformed
	ErrInvalidResponse = errors.New("invalid response")
)

// wrappedError wraps an error with additional context
type wrappedError struct {
	msg   string
	cause error
}

func (e *wrappedError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.cause)
	}
	return e.msg
}

func (e *wrappedError) Unwrap() error {
	return e.cause
}

// Wrap wraps an error with additional context message.
// If err is nil, Wrap returns nil.
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &wrappedError{msg: msg, cause: err}
}

// Wrapf wraps an error with a formatted context message.
// If err is nil, Wrapf returns nil.
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &wrappedError{msg: fmt.Sprintf(format, args...), cause: err}
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target type.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Unwrap returns the result of calling the Unwrap method on err.
func Unwrap(err error) error {
	return errors.Unwrap(err)
}

// New creates a new error with the given message.
func New(msg string) error {
	return errors.New(msg)
}

// Errorf formats according to a format specifier and returns an error.
func Errorf(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}

// Join returns an error that wraps the given errors, discarding nils.
func Join(errs ...error) error {
	return errors.Join(errs...)
}

// IsTransient reports whether the error is worth retrying: timeouts,
// throttling, connection failures and temporary endpoint outages. A
// transient failure does not say anything about the document itself.
func IsTransient(err error) bool {
	return Is(err, ErrTimeout) ||
		Is(err, ErrRateLimit) ||
		Is(err, ErrConnectionFailed) ||
		Is(err, ErrServiceUnavailable)
}

// IsTerminal reports whether the error is a definitive verdict about the
// document: it does not exist or is not publicly readable. Retrying a
// terminal failure cannot change the outcome.
func IsTerminal(err error) bool {
	return Is(err, ErrNotFound) || Is(err, ErrAccessDenied)
}

// IsTimeout reports whether the error is a timeout error
func IsTimeout(err error) bool {
	return Is(err, ErrTimeout)
}

// IsRateLimit reports whether the error is a rate limit error
func IsRateLimit(err error) bool {
	return Is(err, ErrRateLimit)
}

// IsConnectionFailed reports whether the error is a connection failure
func IsConnectionFailed(err error) bool {
	return Is(err, ErrConnectionFailed)
}

// IsNotFound reports whether the error is a not found error
func IsNotFound(err error) bool {
	return Is(err, ErrNotFound)
}

// IsAccessDenied reports whether the error is an access denied error
func IsAccessDenied(err error) bool {
	return Is(err, ErrAccessDenied)
}

// IsInvalidInput reports whether the error is an invalid input error
func IsInvalidInput(err error) bool {
	return Is(err, ErrInvalidInput)
}
