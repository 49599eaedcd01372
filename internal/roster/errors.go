// Package roster provides employee roster loading and profile resolution.
package roster

import "fmt"

// MissingColumnError indicates the uploaded roster lacks a required column.
// The caller must fall back to manual entry or abort.
type MissingColumnError struct {
	Column string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("roster is missing required column: %s", e.Column)
}

// NotFoundError indicates no roster row matched the requested employee
type NotFoundError struct {
	Key string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("employee not found in roster: %s", e.Key)
}

// ParseError indicates the roster file could not be read or decoded
type ParseError struct {
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("roster parse error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("roster parse error: %s", e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Cause
}
