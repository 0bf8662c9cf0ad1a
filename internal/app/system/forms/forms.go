// Package forms holds the shared text-field validation used by the post
// and comment workflows.
//
// Both entity types carry the same "required, non-empty after trimming"
// rule, so it lives here once instead of per-feature. Validation is pure
// and runs entirely before any store write: a failed submission produces
// field-level errors and persists nothing.
package forms

import "strings"

// EmptyFieldMessage is the user-facing message for a blank required field.
const EmptyFieldMessage = "This field cannot be empty."

// UnknownGroupMessage is the user-facing message for a group reference
// that does not resolve to an existing group.
const UnknownGroupMessage = "That group does not exist."

// FieldError is a recoverable, per-field validation failure.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// RequiredText trims raw and rejects the result if it is empty.
// On success it returns the trimmed value and a nil error.
func RequiredText(field, raw string) (string, *FieldError) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return "", &FieldError{Field: field, Message: EmptyFieldMessage}
	}
	return trimmed, nil
}

// Errors collects field-level messages for form re-rendering.
type Errors map[string]string

// Add records an error for a field. Nil errors are ignored so call
// sites can pass validation results through unconditionally.
func (e Errors) Add(err *FieldError) {
	if err == nil {
		return
	}
	e[err.Field] = err.Message
}

// AddMessage records an ad-hoc error for a field.
func (e Errors) AddMessage(field, message string) {
	e[field] = message
}

// Has reports whether any field has an error.
func (e Errors) Has() bool { return len(e) > 0 }

// Get returns the message for a field, or "".
func (e Errors) Get(field string) string { return e[field] }
