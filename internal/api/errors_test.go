package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"forumhub/internal/domain"
	"forumhub/internal/service/auth"
	"forumhub/internal/store"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid token", auth.ErrInvalidToken, http.StatusUnauthorized},
		{"missing token", auth.ErrMissingToken, http.StatusUnauthorized},
		{"unauthorized", domain.ErrUnauthorized, http.StatusUnauthorized},
		{"not topic author", domain.ErrNotTopicAuthor, http.StatusForbidden},
		{"not reply author", domain.ErrNotReplyAuthor, http.StatusBadRequest},
		{"not reply or topic author", domain.ErrNotReplyOrTopicAuthor, http.StatusBadRequest},
		{"reply topic mismatch", domain.ErrReplyTopicMismatch, http.StatusBadRequest},
		{"topic not found", store.ErrTopicNotFound, http.StatusNotFound},
		{"wrapped not found", fmt.Errorf("get: %w", store.ErrReplyNotFound), http.StatusNotFound},
		{"login exists", store.ErrLoginExists, http.StatusBadRequest},
		{"duplicate topic", store.ErrDuplicateTopic, http.StatusConflict},
		{"validation", domain.ErrValidation, http.StatusBadRequest},
		{"empty topic title", domain.ErrEmptyTopicTitle, http.StatusBadRequest},
		{"empty topic message", domain.ErrEmptyTopicMessage, http.StatusBadRequest},
		{"empty reply message", domain.ErrEmptyReplyMessage, http.StatusBadRequest},
		{"short password", domain.ErrPasswordTooShort, http.StatusBadRequest},
		{"invalid status", domain.ErrInvalidStatus, http.StatusBadRequest},
		{"unknown error", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MapErrorToStatusCode(tt.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil error", nil, "An unexpected error occurred"},
		{"internal detail hidden", errors.New("pq: relation topics does not exist"), "An unexpected error occurred"},
		{"login exists", store.ErrLoginExists, "Login already registered, please choose another"},
		{"duplicate topic", store.ErrDuplicateTopic, "Duplicate topic: a topic with this title and message already exists"},
		{"topic not found", store.ErrTopicNotFound, "Topic not found"},
		{"not topic author", domain.ErrNotTopicAuthor, "Access denied: you are not the author of this topic"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GetSafeErrorMessage(tt.err))
		})
	}
}
