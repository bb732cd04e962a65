package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// Common errors
var (
	// Resource errors
	ErrNotFound      = errors.New("resource not found")
	ErrAlreadyExists = errors.New("resource already exists")

	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Validation errors
	ErrValidationFailed = errors.New("validation failed")
	ErrBadRequest       = errors.New("bad request")
)

// ValidationError reports every problem found in a candidate record at once.
// Missing lists required fields that were absent or empty; Problems lists
// malformed values (range violations, unknown enum values).
type ValidationError struct {
	Missing  []string
	Problems []string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	if len(e.Missing) > 0 {
		return fmt.Sprintf("missing required fields: %s", strings.Join(e.Missing, ", "))
	}
	return fmt.Sprintf("invalid fields: %s", strings.Join(e.Problems, "; "))
}

// Unwrap allows errors.Is(err, ErrValidationFailed)
func (e *ValidationError) Unwrap() error {
	return ErrValidationFailed
}

// NewMissingFieldsError creates a ValidationError for absent required fields
func NewMissingFieldsError(fields []string) *ValidationError {
	return &ValidationError{Missing: fields}
}

// DuplicateError reports a unique-constraint collision on a single field.
type DuplicateError struct {
	Resource string
	Field    string
}

// Error implements the error interface
func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%s with this %s already exists", e.Resource, e.Field)
}

// Unwrap allows errors.Is(err, ErrAlreadyExists)
func (e *DuplicateError) Unwrap() error {
	return ErrAlreadyExists
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewNotFoundError creates a new custom error for resource not found with a message
func NewNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrNotFound,
		Message: message,
	}
}

// NewAlreadyExistsError creates a new custom error for conflicts with a message
func NewAlreadyExistsError(message string) error {
	return &CustomError{
		Err:     ErrAlreadyExists,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}
