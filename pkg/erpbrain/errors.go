package erpbrain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure scenarios.
// These enable callers to distinguish error types using errors.Is().
//
// Example usage:
//
//	summary, err := extractor.Run(ctx)
//	if errors.Is(err, erpbrain.ErrInputNotFound) {
//	    // Nothing exported yet
//	}
var (
	// ErrInvalidConfig indicates the provided configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrInputNotFound indicates the input directory of a pipeline does not exist.
	ErrInputNotFound = errors.New("input directory not found")

	// ErrQueryFailed indicates a call to the remote query service failed.
	ErrQueryFailed = errors.New("query failed")

	// ErrPartialFailure indicates some input files were skipped.
	ErrPartialFailure = errors.New("some inputs were skipped")

	// ErrMissingRoot indicates an XML export lacks its required root element.
	ErrMissingRoot = errors.New("required root element not found")
)

// ExitCodeForError returns the appropriate exit code for an error.
// Returns ExitSuccess (0) for nil errors, semantic codes for known errors,
// and ExitGeneralError (1) for unclassified errors.
func ExitCodeForError(err error) int {
	if err == nil {
		return ExitSuccess
	}

	switch {
	case errors.Is(err, ErrInvalidConfig):
		return ExitConfigError
	case errors.Is(err, ErrQueryFailed):
		return ExitQueryFailed
	case errors.Is(err, ErrInputNotFound):
		return ExitInputNotFound
	case errors.Is(err, ErrPartialFailure):
		return ExitPartialFailure
	}

	errStr := err.Error()

	// cobra reports flag and argument misuse as plain errors
	usagePatterns := []string{"unknown flag", "unknown shorthand flag", "unknown command", "accepts ", "requires at least", "invalid argument", "missing required argument"}
	for _, p := range usagePatterns {
		if strings.Contains(errStr, p) {
			return ExitUsageError
		}
	}

	// Transport failures that never produced a QueryError
	if strings.Contains(errStr, "connection refused") ||
		strings.Contains(errStr, "no such host") {
		return ExitQueryFailed
	}

	return ExitGeneralError
}

// QueryError is a non-2xx answer from the query service.
// It matches ErrQueryFailed with errors.Is.
type QueryError struct {
	// Status is the HTTP status code.
	Status int

	// Body is the start of the response body, at most MaxErrorPreviewLength characters.
	Body string
}

func (e *QueryError) Error() string {
	return fmt.Sprintf("query failed: HTTP %d: %s", e.Status, e.Body)
}

func (e *QueryError) Unwrap() error {
	return ErrQueryFailed
}

// Truncate returns s cut to at most n characters.
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
