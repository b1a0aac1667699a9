package api

import (
	"errors"
	"net/http"

	"forumhub/internal/api/shared"
	"forumhub/internal/domain"
	"forumhub/internal/service/auth"
	"forumhub/internal/store"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes. The
// status choices mirror the existing API contract: topic ownership is
// 403, reply ownership and topic-mismatch are 400, duplicate topics are
// 409, and duplicate logins are 400.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, domain.ErrUnauthorized):
		return http.StatusUnauthorized

	// Authorization errors
	case errors.Is(err, domain.ErrNotTopicAuthor):
		return http.StatusForbidden

	// Business-rule violations surfaced as bad requests
	case errors.Is(err, domain.ErrNotReplyAuthor),
		errors.Is(err, domain.ErrNotReplyOrTopicAuthor),
		errors.Is(err, domain.ErrReplyTopicMismatch):
		return http.StatusBadRequest

	// Not found errors
	case store.IsNotFoundError(err):
		return http.StatusNotFound

	// Duplicates: topics conflict, logins are a plain bad request
	case errors.Is(err, store.ErrLoginExists):
		return http.StatusBadRequest
	case store.IsDuplicateError(err):
		return http.StatusConflict

	// Validation errors
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrInvalidStatus),
		errors.Is(err, store.ErrInvalidEntity):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-facing message for the
// error. Internal details never reach the client.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrMissingToken):
		return "Invalid or expired token"

	case errors.Is(err, domain.ErrUnauthorized):
		return "Authentication required"

	case errors.Is(err, domain.ErrNotTopicAuthor):
		return "Access denied: you are not the author of this topic"

	case errors.Is(err, domain.ErrNotReplyAuthor):
		return "Only the original author may edit this reply"

	case errors.Is(err, domain.ErrNotReplyOrTopicAuthor):
		return "Only the reply author or the topic author may delete this reply"

	case errors.Is(err, domain.ErrReplyTopicMismatch):
		return "This reply does not belong to the given topic"

	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, store.ErrTopicNotFound):
		return "Topic not found"

	case errors.Is(err, store.ErrReplyNotFound):
		return "Reply not found"

	case errors.Is(err, store.ErrLoginExists):
		return "Login already registered, please choose another"

	case errors.Is(err, store.ErrDuplicateTopic):
		return "Duplicate topic: a topic with this title and message already exists"

	case errors.Is(err, domain.ErrInvalidStatus):
		return "Invalid topic status"

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, store.ErrInvalidEntity):
		return "Invalid request data"

	default:
		return "An unexpected error occurred"
	}
}

// HandleAPIError maps an error to a status code and a safe message and
// writes the response. A non-empty messageOverride replaces the mapped
// message.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, messageOverride string) {
	status := MapErrorToStatusCode(err)
	message := messageOverride
	if message == "" {
		message = GetSafeErrorMessage(err)
	}
	shared.RespondWithErrorAndLog(w, r, status, message, err)
}
