// Package errors provides structured error types and error handling utilities.
package errors

import (
	"errors"
	"fmt"
)

// Wrap creates a new error by wrapping an existing error with additional context.
// This uses fmt.Errorf with %w verb for proper error chain support.
func Wrap(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	msg := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", msg, err)
}

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

var (
	// ErrNotFound is returned when a document to read does not exist.
	ErrNotFound = errors.New("document not found")
	// ErrOutputDir is returned when a chapter or index file cannot be created
	// because its directory is missing or not writable.
	ErrOutputDir = errors.New("output directory unavailable")
	// ErrBrokenLinks is returned by the index check when links point at
	// chapter files that do not exist.
	ErrBrokenLinks = errors.New("broken chapter links")
	// ErrConfiguration marks an invalid configuration value.
	ErrConfiguration = errors.New("configuration error")
)

// Configuration returns an error wrapping ErrConfiguration.
func Configuration(message string) error {
	return fmt.Errorf("%w: %s", ErrConfiguration, message)
}
