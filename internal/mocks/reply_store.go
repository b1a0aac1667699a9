package mocks

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"forumhub/internal/domain"
	"forumhub/internal/store"
)

// MockReplyStore implements store.ReplyStore for testing.
type MockReplyStore struct {
	// Function fields for customizable behavior
	CreateFn      func(ctx context.Context, reply *domain.Reply) error
	GetByIDFn     func(ctx context.Context, id uuid.UUID) (*domain.Reply, error)
	ListByTopicFn func(ctx context.Context, topicID uuid.UUID) ([]domain.Reply, error)
	UpdateFn      func(ctx context.Context, reply *domain.Reply) error
	DeleteFn      func(ctx context.Context, id uuid.UUID) error

	// Data for the default implementation.
	Replies map[uuid.UUID]*domain.Reply
}

// Ensure MockReplyStore implements store.ReplyStore
var _ store.ReplyStore = (*MockReplyStore)(nil)

// NewMockReplyStore creates a new mock store with initialized defaults.
func NewMockReplyStore() *MockReplyStore {
	return &MockReplyStore{
		Replies: make(map[uuid.UUID]*domain.Reply),
	}
}

// Add stores a reply directly, bypassing validation.
func (m *MockReplyStore) Add(reply *domain.Reply) {
	m.Replies[reply.ID] = reply
}

// Create implements the ReplyStore interface.
func (m *MockReplyStore) Create(ctx context.Context, reply *domain.Reply) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, reply)
	}

	copied := *reply
	m.Replies[reply.ID] = &copied
	return nil
}

// GetByID implements the ReplyStore interface.
func (m *MockReplyStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Reply, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	reply, exists := m.Replies[id]
	if !exists {
		return nil, store.ErrReplyNotFound
	}
	copied := *reply
	return &copied, nil
}

// ListByTopic implements the ReplyStore interface.
func (m *MockReplyStore) ListByTopic(
	ctx context.Context,
	topicID uuid.UUID,
) ([]domain.Reply, error) {
	if m.ListByTopicFn != nil {
		return m.ListByTopicFn(ctx, topicID)
	}

	var replies []domain.Reply
	for _, reply := range m.Replies {
		if reply.TopicID == topicID {
			replies = append(replies, *reply)
		}
	}
	sort.Slice(replies, func(i, j int) bool {
		return replies[i].CreatedAt.Before(replies[j].CreatedAt)
	})
	return replies, nil
}

// Update implements the ReplyStore interface.
func (m *MockReplyStore) Update(ctx context.Context, reply *domain.Reply) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, reply)
	}

	if _, exists := m.Replies[reply.ID]; !exists {
		return store.ErrReplyNotFound
	}
	copied := *reply
	m.Replies[reply.ID] = &copied
	return nil
}

// Delete implements the ReplyStore interface.
func (m *MockReplyStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	if _, exists := m.Replies[id]; !exists {
		return store.ErrReplyNotFound
	}
	delete(m.Replies, id)
	return nil
}
