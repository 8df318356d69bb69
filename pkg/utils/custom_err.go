package utils

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrSessionExpired is the terminal outcome of an authentication
	// episode: refresh attempts exhausted, or no refresh token to try.
	ErrSessionExpired = errors.New("session expired")

	// ErrSubmitInFlight rejects a plan submission while another one is
	// still running.
	ErrSubmitInFlight = errors.New("plan request already in flight")
)

// ValidationError collects field-level messages. It never reaches the
// network layer; submission stops as soon as one is produced.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return "validation failed: " + strings.Join(names, ", ")
}

// NewValidationError builds a single-field validation error.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

// HTTPError is a non-2xx response from the planning API, carrying the
// server-provided message when one was sent.
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("planning api: HTTP %d: %s", e.Status, e.Message)
}

// NetworkError wraps a transport-level failure (DNS, dial, timeout).
type NetworkError struct {
	Err error
}

func (e *NetworkError) Error() string {
	return "planning api unreachable: " + e.Err.Error()
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
