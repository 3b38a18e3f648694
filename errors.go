// Package keyenv provides the error type returned by KeyEnv API operations.
package keyenv

import (
	"errors"
	"fmt"
	"net/http"
)

// Error is the single error kind produced by the client. It carries the
// HTTP status of the failed request (0 for network, interruption, and
// decode failures), the human-readable message, and the optional machine
// error code extracted from the response body.
//
// Use the predicate methods or errors.As to classify failures:
//
//	var kerr *keyenv.Error
//	if errors.As(err, &kerr) && kerr.IsNotFound() {
//	    // handle missing resource
//	}
type Error struct {
	// Status is the HTTP status code, or 0 if the failure happened before
	// a response was received (network error, cancellation, parse failure).
	Status int

	// Message is the human-readable error description.
	Message string

	// Code is the machine error code from the API response, if any.
	Code string

	// cause is the underlying error for non-HTTP failures, if any.
	cause error
}

// newError creates an HTTP-level error with status, message, and code.
func newError(status int, message, code string) *Error {
	return &Error{Status: status, Message: message, Code: code}
}

// wrapError creates a non-HTTP error (status 0) preserving the cause so
// errors.Is still matches context.Canceled and friends.
func wrapError(message string, cause error) *Error {
	return &Error{Message: message, cause: cause}
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch {
	case e.Status == 0:
		return "keyenv: " + e.Message
	case e.Code != "":
		return fmt.Sprintf("keyenv: %s (status=%d, code=%s)", e.Message, e.Status, e.Code)
	default:
		return fmt.Sprintf("keyenv: %s (status=%d)", e.Message, e.Status)
	}
}

// Unwrap returns the underlying cause for non-HTTP failures, or nil.
func (e *Error) Unwrap() error {
	return e.cause
}

// IsNotFound reports whether this is a 404 Not Found error.
func (e *Error) IsNotFound() bool {
	return e.Status == http.StatusNotFound
}

// IsUnauthorized reports whether this is a 401 Unauthorized error,
// typically an invalid or expired token.
func (e *Error) IsUnauthorized() bool {
	return e.Status == http.StatusUnauthorized
}

// IsForbidden reports whether this is a 403 Forbidden error.
func (e *Error) IsForbidden() bool {
	return e.Status == http.StatusForbidden
}

// IsConflict reports whether this is a 409 Conflict error.
func (e *Error) IsConflict() bool {
	return e.Status == http.StatusConflict
}

// IsRateLimited reports whether this is a 429 Too Many Requests error.
func (e *Error) IsRateLimited() bool {
	return e.Status == http.StatusTooManyRequests
}

// IsServerError reports whether this is a 5xx server error.
func (e *Error) IsServerError() bool {
	return e.Status >= 500 && e.Status < 600
}

// AsError extracts a *Error from err, unwrapping as needed.
// Returns nil if err does not carry one.
func AsError(err error) *Error {
	var kerr *Error
	if errors.As(err, &kerr) {
		return kerr
	}
	return nil
}

// IsNotFound reports whether err is a KeyEnv 404 error. It is a
// convenience for call sites that do not need the full *Error.
func IsNotFound(err error) bool {
	kerr := AsError(err)
	return kerr != nil && kerr.IsNotFound()
}
