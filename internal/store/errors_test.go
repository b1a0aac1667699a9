package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsNotFoundError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"base not found", ErrNotFound, true},
		{"user not found", ErrUserNotFound, true},
		{"topic not found", ErrTopicNotFound, true},
		{"reply not found", ErrReplyNotFound, true},
		{"wrapped not found", fmt.Errorf("loading topic: %w", ErrTopicNotFound), true},
		{"duplicate error", ErrDuplicate, false},
		{"unrelated error", errors.New("boom"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsNotFoundError(tt.err))
		})
	}
}

func TestIsDuplicateError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"base duplicate", ErrDuplicate, true},
		{"login exists", ErrLoginExists, true},
		{"duplicate topic", ErrDuplicateTopic, true},
		{"wrapped duplicate", fmt.Errorf("inserting user: %w", ErrLoginExists), true},
		{"not found error", ErrNotFound, false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsDuplicateError(tt.err))
		})
	}
}
