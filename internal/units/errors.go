package units

import (
	"errors"
	"fmt"
)

// ErrorCode categorizes conversion errors.
type ErrorCode string

const (
	// ErrCodeUnknownUnit indicates a unit outside the category's set.
	ErrCodeUnknownUnit ErrorCode = "UNKNOWN_UNIT"

	// ErrCodeUnknownCategory indicates a category other than Length, Mass or Temperature.
	ErrCodeUnknownCategory ErrorCode = "UNKNOWN_CATEGORY"
)

// Error is returned by parsing and conversion functions.
type Error struct {
	// Code identifies the error category.
	Code ErrorCode

	// Message is a human-readable description.
	Message string

	// Category is the category in effect, if known.
	Category string

	// Unit is the offending unit label, if any.
	Unit string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewUnknownUnitError creates an Error for a unit outside c's set.
func NewUnknownUnitError(c Category, unit string) *Error {
	return &Error{
		Code:     ErrCodeUnknownUnit,
		Message:  fmt.Sprintf("unknown %s unit %q", c, unit),
		Category: c.String(),
		Unit:     unit,
	}
}

// NewUnknownCategoryError creates an Error for an unrecognized category label.
func NewUnknownCategoryError(category string) *Error {
	return &Error{
		Code:     ErrCodeUnknownCategory,
		Message:  fmt.Sprintf("unknown category %q", category),
		Category: category,
	}
}

// IsUnknownUnit returns true if err is or wraps an UNKNOWN_UNIT error.
func IsUnknownUnit(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == ErrCodeUnknownUnit
	}
	return false
}

// IsUnknownCategory returns true if err is or wraps an UNKNOWN_CATEGORY error.
func IsUnknownCategory(err error) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == ErrCodeUnknownCategory
	}
	return false
}
