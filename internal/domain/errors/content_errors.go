package errors

import "fmt"

// ContentSourceError is returned when the external trivia source is
// unreachable, answers with a non-success status, or returns a payload
// the service cannot use.
type ContentSourceError struct {
	StatusCode int
	Message    string
	Cause      error
}

func (e *ContentSourceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("content source error: %s (status: %d): %v", e.Message, e.StatusCode, e.Cause)
	}
	return fmt.Sprintf("content source error: %s (status: %d)", e.Message, e.StatusCode)
}

func (e *ContentSourceError) Unwrap() error {
	return e.Cause
}

// NewContentSourceError creates a new ContentSourceError
func NewContentSourceError(statusCode int, message string, cause error) *ContentSourceError {
	return &ContentSourceError{
		StatusCode: statusCode,
		Message:    message,
		Cause:      cause,
	}
}

// ValidationError is returned when fetched content violates the length or
// shape constraints after sanitization. Fatal for the current provisioning
// attempt; nothing is persisted.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid question content: %s: %s", e.Field, e.Message)
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}
