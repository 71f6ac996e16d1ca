package domain

import (
	"errors"
	"fmt"
)

// ValidationError reports invalid input or a refused state transition. It is
// the only error kind produced by this package.
type ValidationError struct {
	Entity     EntityType
	Field      string
	Message    string
	Violations []Violation
}

func (e ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s %s: %s", e.Entity, e.Field, e.Message)
	}
	if e.Entity != "" {
		return fmt.Sprintf("invalid %s: %s", e.Entity, e.Message)
	}
	return e.Message
}

// IsValidation reports whether err is, or wraps, a ValidationError.
func IsValidation(err error) bool {
	var ve ValidationError
	return errors.As(err, &ve)
}

func invalid(entity EntityType, field, format string, args ...any) ValidationError {
	return ValidationError{Entity: entity, Field: field, Message: fmt.Sprintf(format, args...)}
}
