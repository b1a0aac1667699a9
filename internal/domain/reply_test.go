package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReply(t *testing.T) {
	t.Parallel()

	topicID := uuid.New()
	authorID := uuid.New()

	reply, err := NewReply(topicID, authorID, "Tenta usar goroutines.")
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, reply.ID)
	assert.Equal(t, topicID, reply.TopicID)
	assert.Equal(t, authorID, reply.AuthorID)
	assert.False(t, reply.Solution)
	assert.False(t, reply.CreatedAt.IsZero())
}

func TestNewReplyValidation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		topicID  uuid.UUID
		authorID uuid.UUID
		message  string
		wantErr  error
	}{
		{"missing topic", uuid.Nil, uuid.New(), "m", ErrEmptyReplyTopic},
		{"missing author", uuid.New(), uuid.Nil, "m", ErrEmptyReplyAuthor},
		{"missing message", uuid.New(), uuid.New(), "", ErrEmptyReplyMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewReply(tt.topicID, tt.authorID, tt.message)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestReplyAuthoredBy(t *testing.T) {
	t.Parallel()

	authorID := uuid.New()
	reply := &Reply{AuthorID: authorID}

	assert.True(t, reply.AuthoredBy(authorID))
	assert.False(t, reply.AuthoredBy(uuid.New()))
}

func TestReplyBelongsTo(t *testing.T) {
	t.Parallel()

	topicID := uuid.New()
	reply := &Reply{TopicID: topicID}

	assert.True(t, reply.BelongsTo(topicID))
	assert.False(t, reply.BelongsTo(uuid.New()))
}
