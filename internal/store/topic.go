package store

import (
	"context"

	"github.com/google/uuid"

	"forumhub/internal/domain"
)

// TopicFilter enumerates the recognized topic list filters. Zero values
// disable the corresponding predicate.
type TopicFilter struct {
	// Course is an exact-match filter on the topic's course tag.
	Course string

	// Year filters on the calendar year of the topic's creation time.
	Year int
}

// TopicPage is one page of a topic listing.
type TopicPage struct {
	Topics        []domain.Topic
	Page          int
	Size          int
	TotalElements int64
	TotalPages    int
}

// TopicStore defines the interface for topic data persistence.
type TopicStore interface {
	// Create saves a new topic. Returns ErrDuplicateTopic if a topic
	// with the same title and message already exists, active or not.
	Create(ctx context.Context, topic *domain.Topic) error

	// GetByID retrieves a topic by ID regardless of its active flag.
	// Returns ErrTopicNotFound if no row exists.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Topic, error)

	// GetActiveByID retrieves an active topic by ID.
	// Returns ErrTopicNotFound if the topic is absent or soft-deleted.
	GetActiveByID(ctx context.Context, id uuid.UUID) (*domain.Topic, error)

	// FindByTitleAndMessage retrieves the topic with the exact title and
	// message pair, active or not. Returns ErrTopicNotFound when no such
	// topic exists.
	FindByTitleAndMessage(ctx context.Context, title, message string) (*domain.Topic, error)

	// List returns a page of active topics matching the filter, sorted
	// by creation time ascending.
	List(ctx context.Context, filter TopicFilter, page, size int) (*TopicPage, error)

	// Update persists the topic's mutable fields (title, message,
	// status, active). Returns ErrTopicNotFound if the row is gone and
	// ErrDuplicateTopic if the new title and message collide with
	// another topic.
	Update(ctx context.Context, topic *domain.Topic) error

	// Exists reports whether a topic row exists, active or not.
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
}
