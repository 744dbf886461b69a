// Package apperrors holds the error kinds shared by the persistence boundary and the HTTP layer.
package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is wrapped by NotFound for unknown ids.
	ErrNotFound = errors.New("not found")
	// ErrConflict reports a request that is well formed but clashes with stored data.
	ErrConflict = errors.New("conflict")
)

// NotFound returns an error reading "<entity> not found" that matches ErrNotFound.
func NotFound(entity string) error {
	return fmt.Errorf("%s %w", entity, ErrNotFound)
}

// Conflict returns an error with the given message that matches ErrConflict.
func Conflict(msg string) error {
	return fmt.Errorf("%w: %s", ErrConflict, msg)
}

// FieldError is a single field-level validation failure.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError collects field-level failures for a request.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

// NewValidation starts a ValidationError with one failure.
func NewValidation(field, message string) *ValidationError {
	v := &ValidationError{}
	v.Add(field, message)
	return v
}

func (e *ValidationError) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

func (e *ValidationError) HasErrors() bool {
	return e != nil && len(e.Fields) > 0
}

// OrNil returns nil when nothing was collected, so callers can `return v.OrNil()`.
func (e *ValidationError) OrNil() error {
	if !e.HasErrors() {
		return nil
	}
	return e
}

// Details joins the field messages the way the API reports them.
func (e *ValidationError) Details() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return strings.Join(parts, ", ")
}

func (e *ValidationError) Error() string {
	return "validation error: " + e.Details()
}
