package domain

import "errors"

// Common validation errors shared across entities.
var (
	ErrValidation   = errors.New("validation failed")
	ErrInvalidID    = errors.New("invalid identifier")
	ErrUnauthorized = errors.New("unauthorized")
)

// Authorization rule violations. The API surfaces reply-ownership
// failures as business-rule validation errors (HTTP 400) and reserves the
// access-denied shape (HTTP 403) for topic ownership.
var (
	// ErrNotTopicAuthor is returned when a user other than the topic's
	// author tries to update or delete it.
	ErrNotTopicAuthor = errors.New("only the topic author may modify the topic")

	// ErrNotReplyAuthor is returned when a user other than the reply's
	// author tries to edit it.
	ErrNotReplyAuthor = errors.New("only the original author may edit the reply")

	// ErrNotReplyOrTopicAuthor is returned when someone who is neither
	// the reply's author nor the topic's author tries to delete a reply.
	ErrNotReplyOrTopicAuthor = errors.New("only the reply author or the topic author may delete the reply")

	// ErrReplyTopicMismatch is returned when the reply does not belong to
	// the topic named in the request path.
	ErrReplyTopicMismatch = errors.New("reply does not belong to the given topic")
)

// ValidationError carries the field that failed validation along with a
// human-readable reason. It wraps a sentinel so callers can still use
// errors.Is against ErrValidation or ErrInvalidID.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Field + " " + e.Message
}

// Unwrap returns the wrapped sentinel error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a ValidationError wrapping the given sentinel.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{Field: field, Message: message, Err: err}
}
