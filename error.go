package querysum

import (
	"context"
	"errors"
	"fmt"
)

// Application error codes.
const (
	EINTERNAL    = "internal"
	EINVALID     = "invalid"
	ENOTFOUND    = "not_found"
	EUNAVAILABLE = "unavailable"
	EUPSTREAM    = "upstream"
	ETIMEOUT     = "timeout"
)

// Error represents an application-specific error.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("querysum error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error.".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf is a helper function to return an Error with a given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// Process exit codes, one per failure category.
const (
	ExitOK          = 0
	ExitInternal    = 1
	ExitUsage       = 2
	ExitUnavailable = 3
	ExitDocument    = 4
	ExitGeneration  = 5
	ExitInterrupted = 130
)

// ExitCode maps an error to the process exit code for its category.
// Cancellation exits like a shell command stopped by SIGINT.
func ExitCode(err error) int {
	if errors.Is(err, context.Canceled) {
		return ExitInterrupted
	}
	switch ErrorCode(err) {
	case "":
		return ExitOK
	case EUNAVAILABLE:
		return ExitUnavailable
	case ENOTFOUND, EINVALID:
		return ExitDocument
	case EUPSTREAM, ETIMEOUT:
		return ExitGeneration
	default:
		return ExitInternal
	}
}
