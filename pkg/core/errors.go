package core

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	ErrReadOnly        = errors.New("storage is in read-only mode")
	ErrNotFound        = errors.New("note not found")
	ErrKeyNotFound     = errors.New("key not found")
	ErrValidation      = errors.New("validation failed")
	ErrEmptyCollection = errors.New("no notes to export")
	ErrParse           = errors.New("failed to parse document")
	ErrSchema          = errors.New("invalid file format")
)

// ValidationError reports which field of a draft was rejected.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrValidation, e.Field, e.Reason)
}

// Unwrap lets errors.Is match ErrValidation.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
