package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Common reply validation errors. Each wraps ErrValidation so callers
// can classify them without matching individual fields.
var (
	ErrEmptyReplyID      = fmt.Errorf("%w: reply ID cannot be empty", ErrValidation)
	ErrEmptyReplyMessage = fmt.Errorf("%w: reply message cannot be empty", ErrValidation)
	ErrEmptyReplyTopic   = fmt.Errorf("%w: reply topic ID cannot be empty", ErrValidation)
	ErrEmptyReplyAuthor  = fmt.Errorf("%w: reply author ID cannot be empty", ErrValidation)
)

// Reply is a response attached to exactly one topic. The author is a
// proper reference to a User. No endpoint currently flips Solution to
// true; the flag is persisted for forward compatibility.
type Reply struct {
	ID        uuid.UUID `json:"id"`
	TopicID   uuid.UUID `json:"topic_id"`
	AuthorID  uuid.UUID `json:"author_id"`
	Message   string    `json:"message"`
	Solution  bool      `json:"solution"`
	CreatedAt time.Time `json:"created_at"`

	// Read-side denormalizations populated by store queries via joins.
	// Not written back on update.
	AuthorLogin string `json:"author_login,omitempty"`
	TopicTitle  string `json:"topic_title,omitempty"`
}

// NewReply creates a Reply under the given topic with solution=false and
// the creation time set to now.
func NewReply(topicID, authorID uuid.UUID, message string) (*Reply, error) {
	reply := &Reply{
		ID:        uuid.New(),
		TopicID:   topicID,
		AuthorID:  authorID,
		Message:   message,
		Solution:  false,
		CreatedAt: time.Now().UTC(),
	}

	if err := reply.Validate(); err != nil {
		return nil, err
	}

	return reply, nil
}

// Validate checks the Reply fields.
func (r *Reply) Validate() error {
	if r.ID == uuid.Nil {
		return ErrEmptyReplyID
	}
	if r.TopicID == uuid.Nil {
		return ErrEmptyReplyTopic
	}
	if r.AuthorID == uuid.Nil {
		return ErrEmptyReplyAuthor
	}
	if r.Message == "" {
		return ErrEmptyReplyMessage
	}
	return nil
}

// AuthoredBy reports whether the given user wrote this reply.
// Reply ownership is identity equality on the user ID.
func (r *Reply) AuthoredBy(userID uuid.UUID) bool {
	return r.AuthorID == userID
}

// BelongsTo reports whether the reply is attached to the given topic.
func (r *Reply) BelongsTo(topicID uuid.UUID) bool {
	return r.TopicID == topicID
}
