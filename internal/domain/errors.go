package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound           = errors.New("not found")
	ErrAlreadyExists      = errors.New("already exists")
	ErrValidation         = errors.New("validation error")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrConflict           = errors.New("conflict")
	ErrInvalidTransition  = errors.New("invalid transition")
	ErrQuantityOutOfRange = errors.New("quantity out of range")
)

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

// PermissionError reports that the actor's role is below what an action requires.
type PermissionError struct {
	Action   string
	Required Role
	Actual   Role
}

func (e *PermissionError) Error() string {
	if e.Actual == "" {
		return fmt.Sprintf("forbidden: %s requires role %s", e.Action, e.Required)
	}
	return fmt.Sprintf("forbidden: %s requires role %s (have %s)", e.Action, e.Required, e.Actual)
}

func (e *PermissionError) Unwrap() error { return ErrForbidden }

// TransitionError reports an undeclared edge in a request kind's state machine.
type TransitionError struct {
	Kind RequestKind
	From Status
	To   Status
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("invalid transition: %s %s -> %s", e.Kind, e.From, e.To)
}

func (e *TransitionError) Unwrap() error { return ErrInvalidTransition }

// QuantityError reports a fulfillment delta that would leave the received
// quantity outside [0, Ordered].
type QuantityError struct {
	Ordered  int
	Received int
	Delta    int
}

func (e *QuantityError) Error() string {
	return fmt.Sprintf("quantity out of range: received %d %+d not within [0, %d]", e.Received, e.Delta, e.Ordered)
}

func (e *QuantityError) Unwrap() error { return ErrQuantityOutOfRange }
