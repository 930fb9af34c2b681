package shodoc

import (
	"errors"
	"fmt"
)

// Application error codes. These map failures onto the policy the fallback
// chain needs: ERATELIMIT is the only retryable class.
const (
	EINVALID     = "invalid"     // validation or parse failure
	ENOTFOUND    = "not_found"   // entity or resource does not exist
	ERATELIMIT   = "rate_limit"  // remote throttled the caller; retryable
	EUNAVAILABLE = "unavailable" // remote or network failure; not retryable
	EINTERNAL    = "internal"    // unexpected internal failure
)

// Error represents an application error with a machine-readable code.
type Error struct {
	// Code is one of the application error code constants.
	Code string

	// Message is a human-readable description.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("shodoc error: code=%s message=%s", e.Code, e.Message)
}

// Errorf returns a new Error with the given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode returns the code of the error, if it is an application error.
// Returns EINTERNAL for non-application errors and an empty string for nil.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage returns the message of the error, if it is an application
// error. Returns a generic message for non-application errors and an empty
// string for nil.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}
