package session

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes session-level errors.
type ErrorCode string

const (
	// ErrCodeNothingToSave indicates save was requested before any conversion.
	ErrCodeNothingToSave ErrorCode = "NOTHING_TO_SAVE"

	// ErrCodeNegativeValue indicates a negative Length or Mass entry.
	ErrCodeNegativeValue ErrorCode = "NEGATIVE_VALUE"

	// ErrCodeInvalidValue indicates a NaN or infinite entry.
	ErrCodeInvalidValue ErrorCode = "INVALID_VALUE"

	// ErrCodeNotFound indicates an unknown or already ended session ID.
	ErrCodeNotFound ErrorCode = "SESSION_NOT_FOUND"
)

// Error is a recoverable condition reported back to the UI layer.
type Error struct {
	Code    ErrorCode
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newError(code ErrorCode, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

func hasCode(err error, code ErrorCode) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// IsNothingToSave returns true if err is a NOTHING_TO_SAVE error.
func IsNothingToSave(err error) bool {
	return hasCode(err, ErrCodeNothingToSave)
}

// IsNegativeValue returns true if err is a NEGATIVE_VALUE error.
func IsNegativeValue(err error) bool {
	return hasCode(err, ErrCodeNegativeValue)
}

// IsInvalidValue returns true if err is an INVALID_VALUE error.
func IsInvalidValue(err error) bool {
	return hasCode(err, ErrCodeInvalidValue)
}

// IsNotFound returns true if err is a SESSION_NOT_FOUND error.
func IsNotFound(err error) bool {
	return hasCode(err, ErrCodeNotFound)
}
