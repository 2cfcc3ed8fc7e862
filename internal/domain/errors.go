package domain

import (
	"errors"
	"strings"
)

var (
	ErrValidation              = errors.New("validation failed")
	ErrApplicationNotFound     = errors.New("application not found")
	ErrInvalidTransition       = errors.New("invalid application status transition")
	ErrConcurrentUpdate        = errors.New("application was modified concurrently")
	ErrActiveApplicationExists = errors.New("merchant already has an active application")
	ErrSlugTaken               = errors.New("store slug already taken")
	ErrStoreExists             = errors.New("store already exists for application")
	ErrProvisioning            = errors.New("store provisioning failed")
)

type FieldError struct {
	Field   string
	Message string
}

// ValidationError lists every offending input field. errors.Is(err, ErrValidation) holds.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

func (e *ValidationError) HasErrors() bool {
	return e != nil && len(e.Fields) > 0
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return ErrValidation.Error() + ": " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
