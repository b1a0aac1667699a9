package mocks

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"forumhub/internal/domain"
	"forumhub/internal/store"
)

// MockUserStore implements store.UserStore for testing.
type MockUserStore struct {
	// Function fields for customizable behavior
	CreateFn     func(ctx context.Context, user *domain.User) error
	GetByIDFn    func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByLoginFn func(ctx context.Context, login string) (*domain.User, error)

	// Data for the default implementation, keyed by lower-cased login.
	Users map[string]*domain.User
}

// Ensure MockUserStore implements store.UserStore
var _ store.UserStore = (*MockUserStore)(nil)

// NewMockUserStore creates a new mock store with initialized defaults.
func NewMockUserStore() *MockUserStore {
	return &MockUserStore{
		Users: make(map[string]*domain.User),
	}
}

// Add stores a user directly, bypassing validation.
func (m *MockUserStore) Add(user *domain.User) {
	m.Users[strings.ToLower(user.Login)] = user
}

// Create implements the UserStore interface.
func (m *MockUserStore) Create(ctx context.Context, user *domain.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, user)
	}

	if _, exists := m.Users[strings.ToLower(user.Login)]; exists {
		return store.ErrLoginExists
	}

	m.Users[strings.ToLower(user.Login)] = user
	return nil
}

// GetByID implements the UserStore interface.
func (m *MockUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	for _, user := range m.Users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, store.ErrUserNotFound
}

// GetByLogin implements the UserStore interface.
func (m *MockUserStore) GetByLogin(ctx context.Context, login string) (*domain.User, error) {
	if m.GetByLoginFn != nil {
		return m.GetByLoginFn(ctx, login)
	}

	user, exists := m.Users[strings.ToLower(login)]
	if !exists {
		return nil, store.ErrUserNotFound
	}
	return user, nil
}
