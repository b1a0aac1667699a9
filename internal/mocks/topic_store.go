package mocks

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"forumhub/internal/domain"
	"forumhub/internal/store"
)

// MockTopicStore implements store.TopicStore for testing.
type MockTopicStore struct {
	// Function fields for customizable behavior
	CreateFn                func(ctx context.Context, topic *domain.Topic) error
	GetByIDFn               func(ctx context.Context, id uuid.UUID) (*domain.Topic, error)
	GetActiveByIDFn         func(ctx context.Context, id uuid.UUID) (*domain.Topic, error)
	FindByTitleAndMessageFn func(ctx context.Context, title, message string) (*domain.Topic, error)
	ListFn                  func(ctx context.Context, filter store.TopicFilter, page, size int) (*store.TopicPage, error)
	UpdateFn                func(ctx context.Context, topic *domain.Topic) error
	ExistsFn                func(ctx context.Context, id uuid.UUID) (bool, error)

	// Data for the default implementation.
	Topics map[uuid.UUID]*domain.Topic
}

// Ensure MockTopicStore implements store.TopicStore
var _ store.TopicStore = (*MockTopicStore)(nil)

// NewMockTopicStore creates a new mock store with initialized defaults.
func NewMockTopicStore() *MockTopicStore {
	return &MockTopicStore{
		Topics: make(map[uuid.UUID]*domain.Topic),
	}
}

// Add stores a topic directly, bypassing validation and duplicate checks.
func (m *MockTopicStore) Add(topic *domain.Topic) {
	m.Topics[topic.ID] = topic
}

// Create implements the TopicStore interface.
func (m *MockTopicStore) Create(ctx context.Context, topic *domain.Topic) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, topic)
	}

	for _, existing := range m.Topics {
		if existing.Title == topic.Title && existing.Message == topic.Message {
			return store.ErrDuplicateTopic
		}
	}

	copied := *topic
	m.Topics[topic.ID] = &copied
	return nil
}

// GetByID implements the TopicStore interface.
func (m *MockTopicStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Topic, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	topic, exists := m.Topics[id]
	if !exists {
		return nil, store.ErrTopicNotFound
	}
	copied := *topic
	return &copied, nil
}

// GetActiveByID implements the TopicStore interface.
func (m *MockTopicStore) GetActiveByID(ctx context.Context, id uuid.UUID) (*domain.Topic, error) {
	if m.GetActiveByIDFn != nil {
		return m.GetActiveByIDFn(ctx, id)
	}

	topic, exists := m.Topics[id]
	if !exists || !topic.Active {
		return nil, store.ErrTopicNotFound
	}
	copied := *topic
	return &copied, nil
}

// FindByTitleAndMessage implements the TopicStore interface.
func (m *MockTopicStore) FindByTitleAndMessage(
	ctx context.Context,
	title, message string,
) (*domain.Topic, error) {
	if m.FindByTitleAndMessageFn != nil {
		return m.FindByTitleAndMessageFn(ctx, title, message)
	}

	for _, topic := range m.Topics {
		if topic.Title == title && topic.Message == message {
			copied := *topic
			return &copied, nil
		}
	}
	return nil, store.ErrTopicNotFound
}

// List implements the TopicStore interface.
func (m *MockTopicStore) List(
	ctx context.Context,
	filter store.TopicFilter,
	page, size int,
) (*store.TopicPage, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, filter, page, size)
	}

	if size <= 0 {
		size = 10
	}

	var matched []domain.Topic
	for _, topic := range m.Topics {
		if !topic.Active {
			continue
		}
		if filter.Course != "" && topic.Course != filter.Course {
			continue
		}
		if filter.Year != 0 && topic.CreatedAt.Year() != filter.Year {
			continue
		}
		matched = append(matched, *topic)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].CreatedAt.Before(matched[j].CreatedAt)
	})

	total := int64(len(matched))
	start := page * size
	if start > len(matched) {
		start = len(matched)
	}
	end := start + size
	if end > len(matched) {
		end = len(matched)
	}

	totalPages := int(total) / size
	if int(total)%size != 0 {
		totalPages++
	}

	return &store.TopicPage{
		Topics:        matched[start:end],
		Page:          page,
		Size:          size,
		TotalElements: total,
		TotalPages:    totalPages,
	}, nil
}

// Update implements the TopicStore interface.
func (m *MockTopicStore) Update(ctx context.Context, topic *domain.Topic) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, topic)
	}

	if _, exists := m.Topics[topic.ID]; !exists {
		return store.ErrTopicNotFound
	}
	for id, existing := range m.Topics {
		if id != topic.ID && existing.Title == topic.Title && existing.Message == topic.Message {
			return store.ErrDuplicateTopic
		}
	}

	copied := *topic
	m.Topics[topic.ID] = &copied
	return nil
}

// Exists implements the TopicStore interface.
func (m *MockTopicStore) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.ExistsFn != nil {
		return m.ExistsFn(ctx, id)
	}

	_, exists := m.Topics[id]
	return exists, nil
}
