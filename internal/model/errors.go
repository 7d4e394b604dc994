package model

import (
	"errors"
	"strings"
)

// Field names reported by ValidationError.
const (
	FieldWebsite  = "website"
	FieldUsername = "username"
	FieldSecret   = "secret"
)

var ErrValidation = errors.New("validation failed")

// ValidationError lists the required fields that were empty.
type ValidationError struct {
	Fields []string
}

func NewValidationError(fields ...string) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	return "validation failed: empty " + strings.Join(e.Fields, ", ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
