package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrMalformedEntry = errors.New("malformed entry")
	ErrMissingInput   = errors.New("missing input")
	ErrUnknownSense   = errors.New("unknown sense")
	ErrUnknownWord    = errors.New("unknown word")
	ErrInvalidRecord  = errors.New("invalid record")
	ErrValidation     = errors.New("validation error")
)

// EntryError locates a malformed row inside a letter file.
type EntryError struct {
	Letter string
	Line   int
	Raw    string
	Err    error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("%s.csv row %d %q: %v", e.Letter, e.Line, e.Raw, e.Err)
}

func (e *EntryError) Unwrap() error { return e.Err }

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
