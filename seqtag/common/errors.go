package common

import (
	"errors"
	"fmt"
)

// Error kinds shared by all seqtag packages. Callers match them with errors.Is.
var (
	ErrValidation      = errors.New("validation error")
	ErrOutOfRange      = errors.New("out of range")
	ErrFormat          = errors.New("invalid tag format")
	ErrCorruptSnapshot = errors.New("corrupt dictionary snapshot")
)

// Validationf returns an ErrValidation annotated with the formatted message.
func Validationf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// OutOfRangef returns an ErrOutOfRange annotated with the formatted message.
func OutOfRangef(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrOutOfRange, fmt.Sprintf(format, args...))
}

// WrapError wraps an error with additional context
func WrapError(err error, message string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	context := fmt.Sprintf(message, args...)
	return fmt.Errorf("%s: %w", context, err)
}
