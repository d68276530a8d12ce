package app

import (
	"fmt"

	"github.com/deploymenttheory/go-corestorage/pkg/corestorage"
)

// VolumeTarget represents volume selection across commands
type VolumeTarget struct {
	VolumeID string
}

// Validate ensures the target names a well-formed volume identifier
func (vt *VolumeTarget) Validate() error {
	if vt.VolumeID == "" {
		return NewError(ErrCodeInvalidInput, "volume identifier is required", nil)
	}
	if !corestorage.IsValidIdentifier(vt.VolumeID) {
		return NewError(ErrCodeInvalidInput, fmt.Sprintf("invalid volume identifier: %q", vt.VolumeID), nil)
	}
	return nil
}

// String returns a string representation of the volume target
func (vt *VolumeTarget) String() string {
	return "Volume: " + vt.VolumeID
}

// CommonError represents application-level errors
type CommonError struct {
	Code    string
	Message string
	Cause   error
}

func (e *CommonError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *CommonError) Unwrap() error {
	return e.Cause
}

// Common error codes
const (
	ErrCodeInvalidInput         = "INVALID_INPUT"
	ErrCodeConfirmationRequired = "CONFIRMATION_REQUIRED"
	ErrCodeQuery                = "QUERY_FAILED"
	ErrCodeUnlock               = "UNLOCK_FAILED"
	ErrCodeRevert               = "REVERT_FAILED"
)

// NewError creates a new CommonError
func NewError(code, message string, cause error) *CommonError {
	return &CommonError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WrapVolumeError maps a corestorage error to an application error code.
func WrapVolumeError(message string, err error) error {
	switch {
	case err == nil:
		return nil
	case corestorage.IsInvalidArgument(err):
		return NewError(ErrCodeInvalidInput, message, err)
	case corestorage.IsCouldNotUnlock(err):
		return NewError(ErrCodeUnlock, message, err)
	case corestorage.IsCouldNotRevert(err):
		return NewError(ErrCodeRevert, message, err)
	default:
		return NewError(ErrCodeQuery, message, err)
	}
}
