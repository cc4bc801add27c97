package utils

import (
	"errors"
	"fmt"
)

// Error kinds used across services. Controllers translate them to HTTP
// statuses at the boundary with errors.Is; nothing below the controller
// layer knows about status codes.
var (
	// ErrNotFound covers missing entities and ownership mismatches.
	ErrNotFound = errors.New("not found")

	// ErrConflict is a uniqueness violation, e.g. adding the same venue to a
	// project twice.
	ErrConflict = errors.New("conflict")

	// ErrValidation is malformed input or a missing precondition, such as an
	// absent ai_context or an empty included-venue set.
	ErrValidation = errors.New("validation failed")

	// ErrGeneration is an upstream text-generation failure.
	ErrGeneration = errors.New("generation failed")

	// ErrRenderingUnavailable means the PDF rendering engine is not present
	// in this deployment. Kept distinct from transient rendering failures so
	// operators can tell a configuration gap from a flaky render.
	ErrRenderingUnavailable = errors.New("rendering engine unavailable")
)

// NotFoundf wraps ErrNotFound with a formatted message.
func NotFoundf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrNotFound}, args...)...)
}

// Conflictf wraps ErrConflict with a formatted message.
func Conflictf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrConflict}, args...)...)
}

// Validationf wraps ErrValidation with a formatted message.
func Validationf(format string, args ...interface{}) error {
	return fmt.Errorf("%w: "+format, append([]interface{}{ErrValidation}, args...)...)
}
