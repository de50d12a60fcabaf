package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// ErrDataUnavailable means the dataset file is missing or holds no rows.
	// Rendering is halted for the rest of the session.
	ErrDataUnavailable = errors.New("no data available")

	// Validation errors
	ErrInvalidFilter  = errors.New("invalid filter parameters")
	ErrUnknownMode    = errors.New("unknown dashboard mode")
	ErrMissingColumns = errors.New("required columns missing")
)

// Error constructors with context
func NewDataUnavailableError(path string, reason string) error {
	return fmt.Errorf("%w: %s (%s)", ErrDataUnavailable, path, reason)
}

func NewFilterError(field string, reason string) error {
	return fmt.Errorf("%w: %s %s", ErrInvalidFilter, field, reason)
}

func NewMissingColumnsError(columns []string) error {
	return fmt.Errorf("%w: %v", ErrMissingColumns, columns)
}

// Error checking helpers
func IsDataUnavailable(err error) bool {
	return errors.Is(err, ErrDataUnavailable)
}

func IsInvalidFilter(err error) bool {
	return errors.Is(err, ErrInvalidFilter)
}
