// Package domain defines the entity models, validation rules, and errors
// for the QuickSight control-plane emulator.
package domain

import "fmt"

// NotFoundError indicates that no resource exists under the given key.
// The dispatch layer translates it to ResourceNotFoundException.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// InvalidParameterValueError indicates a supplied value breaks a domain rule
// (empty folder name, unknown principal, unsupported permission set).
// The dispatch layer translates it to InvalidParameterValueException.
type InvalidParameterValueError struct {
	Message string
}

func (e *InvalidParameterValueError) Error() string { return e.Message }

// ValidationError indicates a structural constraint violation, such as an
// identifier failing its pattern or an unsupported search filter.
// The dispatch layer translates it to ValidationException.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// ErrNotFound creates a NotFoundError with a formatted message.
func ErrNotFound(format string, args ...any) *NotFoundError {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

// ErrInvalidParameterValue creates an InvalidParameterValueError with a
// formatted message.
func ErrInvalidParameterValue(format string, args ...any) *InvalidParameterValueError {
	return &InvalidParameterValueError{Message: fmt.Sprintf(format, args...)}
}

// ErrValidation creates a ValidationError with a formatted message.
func ErrValidation(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}
