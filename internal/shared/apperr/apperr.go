// Package apperr provides the error taxonomy shared across handlers and
// repositories: validation failures map to 400-class responses, store
// failures to 500-class responses. A FAQ lookup that finds nothing is not
// an error anywhere in this codebase.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrValidation marks missing or malformed client input. Never retried.
	ErrValidation = errors.New("validation error")

	// ErrStore marks an underlying persistence failure. Logged and surfaced
	// to the caller; retry is the caller's decision.
	ErrStore = errors.New("store error")
)

// Validation wraps a message as a validation error.
func Validation(msg string) error {
	return fmt.Errorf("%w: %s", ErrValidation, msg)
}

// Validationf wraps a formatted message as a validation error.
func Validationf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

// Store wraps a persistence failure. Returns nil for a nil error so repo
// code can wrap unconditionally.
func Store(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrStore, err)
}

// IsValidation reports whether err is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsStore reports whether err is a store error.
func IsStore(err error) bool {
	return errors.Is(err, ErrStore)
}
