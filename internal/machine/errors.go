package machine

import (
	"errors"
	"fmt"

	"github.com/Usu171/CreateSG/internal/schem"
)

// ArgumentError reports invalid input detected at the call that received
// it. It is never retried; the caller must fix the input and re-call.
type ArgumentError struct {
	// Code identifies the error category.
	Code ArgumentErrorCode

	// Message is a human-readable description.
	Message string
}

// ArgumentErrorCode categorizes argument errors.
type ArgumentErrorCode string

const (
	// ErrCodeInvalidMode indicates an interaction point mode outside
	// {TAKE, DEPOSIT}.
	ErrCodeInvalidMode ArgumentErrorCode = "INVALID_MODE"

	// ErrCodeBadTriple indicates a coordinate triple of the wrong shape.
	ErrCodeBadTriple ArgumentErrorCode = "BAD_TRIPLE"
)

// Error implements the error interface.
func (e *ArgumentError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// IsInvalidArgument returns true if the error is an ArgumentError.
// Uses errors.As to handle wrapped errors.
func IsInvalidArgument(err error) bool {
	var ae *ArgumentError
	return errors.As(err, &ae)
}

// NewModeError creates an ArgumentError for an unknown interaction mode.
func NewModeError(mode schem.Mode) *ArgumentError {
	return &ArgumentError{
		Code:    ErrCodeInvalidMode,
		Message: fmt.Sprintf("mode must be %q or %q, got %q", schem.ModeTake, schem.ModeDeposit, mode),
	}
}

// NewTripleError creates an ArgumentError for a malformed coordinate
// triple, naming the field it came from.
func NewTripleError(field string, err error) *ArgumentError {
	return &ArgumentError{
		Code:    ErrCodeBadTriple,
		Message: fmt.Sprintf("%s: %v", field, err),
	}
}
