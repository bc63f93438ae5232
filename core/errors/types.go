// ABOUTME: Custom error types for the feed aggregation core
// ABOUTME: Models the transport/format/empty-result taxonomy surfaced to the API layer

package errors

import (
	"errors"
	"fmt"
)

// TransportError represents a network or HTTP-level fetch failure.
type TransportError struct {
	Domain     string
	URL        string
	StatusCode int
	Err        error
}

// Error implements the error interface
func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s feed fetch failed: %s returned %d", e.Domain, e.URL, e.StatusCode)
	}
	return fmt.Sprintf("%s feed fetch failed: %v", e.Domain, e.Err)
}

// Unwrap returns the underlying error
func (e *TransportError) Unwrap() error { return e.Err }

// FormatError represents a parse failure: the response body could not be
// turned into a navigable feed document.
type FormatError struct {
	Domain string
	Err    error
}

// Error implements the error interface
func (e *FormatError) Error() string {
	return fmt.Sprintf("%s feed could not be parsed: %v", e.Domain, e.Err)
}

// Unwrap returns the underlying error
func (e *FormatError) Unwrap() error { return e.Err }

// EmptyFeedError is raised for domains where zero admissible items is
// considered anomalous rather than a normal empty state.
type EmptyFeedError struct {
	Domain string
}

// Error implements the error interface
func (e *EmptyFeedError) Error() string {
	return fmt.Sprintf("%s feed yielded no items", e.Domain)
}

// ValidationError represents a bad request from the API surface.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// IsTransport checks if an error is a TransportError
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

// IsFormat checks if an error is a FormatError
func IsFormat(err error) bool {
	var fe *FormatError
	return errors.As(err, &fe)
}

// IsEmptyFeed checks if an error is an EmptyFeedError
func IsEmptyFeed(err error) bool {
	var ee *EmptyFeedError
	return errors.As(err, &ee)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
