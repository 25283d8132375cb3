package validate

import (
	"errors"
	"fmt"
)

// InvalidInputError reports a caller-supplied value that fails a syntax or
// range rule. It is always resolved before any request is built.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// MissingFieldError reports a field that is required for the chosen order
// type but was not supplied at all.
type MissingFieldError struct {
	Field  string
	Reason string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing %s: %s", e.Field, e.Reason)
}

// IsInvalidInput reports whether err is (or wraps) an InvalidInputError.
func IsInvalidInput(err error) bool {
	var target *InvalidInputError
	return errors.As(err, &target)
}

// IsMissingField reports whether err is (or wraps) a MissingFieldError.
func IsMissingField(err error) bool {
	var target *MissingFieldError
	return errors.As(err, &target)
}

func invalid(field, format string, args ...any) error {
	return &InvalidInputError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

func missing(field, format string, args ...any) error {
	return &MissingFieldError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
