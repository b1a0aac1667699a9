package store

import (
	"context"

	"github.com/google/uuid"

	"forumhub/internal/domain"
)

// ReplyStore defines the interface for reply data persistence.
type ReplyStore interface {
	// Create saves a new reply. Returns ErrInvalidEntity if the topic or
	// author reference is dangling (foreign key violation).
	Create(ctx context.Context, reply *domain.Reply) error

	// GetByID retrieves a reply by ID with AuthorLogin and TopicTitle
	// populated. Returns ErrReplyNotFound if the reply does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Reply, error)

	// ListByTopic returns all replies of a topic sorted by creation time
	// ascending, with AuthorLogin populated. The topic's active flag is
	// not consulted.
	ListByTopic(ctx context.Context, topicID uuid.UUID) ([]domain.Reply, error)

	// Update persists the reply's message.
	// Returns ErrReplyNotFound if the row is gone.
	Update(ctx context.Context, reply *domain.Reply) error

	// Delete removes a reply permanently.
	// Returns ErrReplyNotFound if the reply does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}
