package schema

import (
	"errors"
	"fmt"
)

var (
	ErrRequiredField = errors.New("required field")
	ErrOutOfRange    = errors.New("value out of range")
	ErrInvalidValue  = errors.New("invalid value")
	ErrDuplicateKey  = errors.New("key bound twice")
)

// FieldError reports a config field that failed validation.
type FieldError struct {
	Field  string
	Value  string
	Reason error
}

func (e *FieldError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("invalid config field %q: %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("invalid config field %q (%q): %s", e.Field, e.Value, e.Reason)
}

func (e *FieldError) Unwrap() error {
	return e.Reason
}

type DuplicateBindingError struct {
	Key    string
	First  string
	Second string
}

func (e *DuplicateBindingError) Error() string {
	return fmt.Sprintf("key %q is bound to both %s and %s", e.Key, e.First, e.Second)
}

func (e *DuplicateBindingError) Unwrap() error {
	return ErrDuplicateKey
}
