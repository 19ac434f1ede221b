package warmline

import (
	"errors"
	"fmt"
)

// Application error codes. These are machine-readable markers attached to
// errors as they cross package boundaries. Codes map directly to pipeline
// failure modes: ENOPAGE (nothing to capture), ECONFIG (missing credential),
// ECOMPLETION (completion service failure), EPARSE (unrepairable response),
// EINGEST (non-conflict store failure), ECONFLICT (duplicate row).
const (
	ECOMPLETION  = "completion"
	ECONFIG      = "config"
	ECONFLICT    = "conflict"
	EINGEST      = "ingest"
	EINTERNAL    = "internal"
	EINVALID     = "invalid"
	ENOPAGE      = "no_page"
	ENOTFOUND    = "not_found"
	EPARSE       = "parse"
	EUNAVAILABLE = "unavailable"
)

// Error represents an application error with a machine-readable code and a
// human-readable message.
type Error struct {
	// Code is one of the application error codes above.
	Code string

	// Message is a human-readable description suitable for end users.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("warmline error: code=%s message=%s", e.Code, e.Message)
}

// Errorf returns a new Error with the given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode returns the code of an error, if available.
// Returns EINTERNAL for non-application errors and "" for nil.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage returns the human-readable message of an error, if available.
// Returns a generic message for non-application errors and "" for nil.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}
