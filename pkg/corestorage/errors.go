package corestorage

import (
	"errors"
	"fmt"
)

// ErrorCode classifies a failure.
type ErrorCode string

const (
	// CodeQuery means diskutil could not be queried or returned unusable data.
	CodeQuery ErrorCode = "QUERY_ERROR"
	// CodeCouldNotUnlock means the unlock command failed.
	CodeCouldNotUnlock ErrorCode = "COULD_NOT_UNLOCK"
	// CodeCouldNotRevert means the revert command failed after a successful unlock.
	CodeCouldNotRevert ErrorCode = "COULD_NOT_REVERT"
	// CodeInvalidArgument means an identifier was malformed and nothing was executed.
	CodeInvalidArgument ErrorCode = "INVALID_ARGUMENT"
)

// Sentinels for errors.Is. They match any *Error with the same Code.
var (
	ErrQuery           = &Error{Code: CodeQuery, Message: "could not query diskutil"}
	ErrCouldNotUnlock  = &Error{Code: CodeCouldNotUnlock, Message: "could not unlock volume"}
	ErrCouldNotRevert  = &Error{Code: CodeCouldNotRevert, Message: "could not revert volume"}
	ErrInvalidArgument = &Error{Code: CodeInvalidArgument, Message: "invalid argument"}
)

// Error is returned by every failing operation in this package.
type Error struct {
	Code     ErrorCode
	Op       string
	ID       string
	ExitCode int
	Message  string
	Cause    error
}

func (e *Error) Error() string {
	msg := e.Message
	if e.Op != "" {
		msg = e.Op + ": " + msg
	}
	if e.ID != "" {
		msg += fmt.Sprintf(" (%s)", e.ID)
	}
	if e.ExitCode != 0 {
		msg += fmt.Sprintf(": exit status %d", e.ExitCode)
	}
	if e.Cause != nil {
		msg += fmt.Sprintf(": %v", e.Cause)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches target when it is an *Error with the same Code.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

func hasCode(err error, code ErrorCode) bool {
	var csErr *Error
	return errors.As(err, &csErr) && csErr.Code == code
}

// IsQueryError checks if an error is a query failure.
func IsQueryError(err error) bool {
	return hasCode(err, CodeQuery)
}

// IsCouldNotUnlock checks if an error is an unlock failure.
func IsCouldNotUnlock(err error) bool {
	return hasCode(err, CodeCouldNotUnlock)
}

// IsCouldNotRevert checks if an error is a revert failure.
func IsCouldNotRevert(err error) bool {
	return hasCode(err, CodeCouldNotRevert)
}

// IsInvalidArgument checks if an error is an identifier validation failure.
func IsInvalidArgument(err error) bool {
	return hasCode(err, CodeInvalidArgument)
}
