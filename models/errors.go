package models

import "errors"

// Sentinel errors shared across services. Controllers translate these into
// HTTP responses; everything else is wrapped with fmt.Errorf("...: %w", err).
var (
	// ErrBackendUnavailable indicates the document or object store could not
	// be reached. Callers surface it as a retryable condition.
	ErrBackendUnavailable = errors.New("backend unavailable")

	// ErrNotFound indicates a referenced folder, file, user or request
	// identifier does not resolve.
	ErrNotFound = errors.New("resource not found")

	// ErrUnauthorized indicates a failed access check.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrValidation indicates rejected input, e.g. a password confirmation
	// mismatch at signup.
	ErrValidation = errors.New("validation failed")
)
