package raspador

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	ECONFIG     = "config"
	ECONFLICT   = "conflict"
	ECONVERSION = "conversion"
	EINTERNAL   = "internal"
	EINVALID    = "invalid"
	ENOTFOUND   = "not_found"
)

// Error represents an application-specific error. Errors raised while
// extracting a value also identify the field and the offending line.
type Error struct {
	Code    string
	Message string

	Field  string
	Line   string
	LineNo int
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := fmt.Sprintf("raspador error: code=%s message=%s", e.Code, e.Message)
	if e.Field != "" {
		msg += fmt.Sprintf(" field=%s", e.Field)
	}
	if e.LineNo > 0 {
		msg += fmt.Sprintf(" line=%d", e.LineNo)
	}
	return msg
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
// Non-application errors always return "Internal error".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error"
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
