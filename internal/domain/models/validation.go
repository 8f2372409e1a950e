// internal/domain/models/validation.go
package models

import "fmt"

// ValidationError reports a create input that failed schema validation.
// It maps to a 422 response at the HTTP layer.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
