package mocks

import (
	"context"

	"forumhub/internal/domain"
	"forumhub/internal/service/auth"
)

// MockJWTService implements auth.JWTService for testing.
type MockJWTService struct {
	// Token is returned by GenerateToken when GenerateErr is nil.
	Token string
	// Subject is returned by ValidateToken when ValidateErr is nil.
	Subject string

	GenerateErr error
	ValidateErr error
}

// Ensure MockJWTService implements auth.JWTService
var _ auth.JWTService = (*MockJWTService)(nil)

// GenerateToken implements the JWTService interface.
func (m *MockJWTService) GenerateToken(ctx context.Context, user *domain.User) (string, error) {
	if m.GenerateErr != nil {
		return "", m.GenerateErr
	}
	return m.Token, nil
}

// ValidateToken implements the JWTService interface.
func (m *MockJWTService) ValidateToken(ctx context.Context, token string) (string, error) {
	if m.ValidateErr != nil {
		return "", m.ValidateErr
	}
	return m.Subject, nil
}

// MockPasswordHasher implements auth.PasswordHasher and
// auth.PasswordVerifier for testing.
type MockPasswordHasher struct {
	// HashValue is returned by Hash when HashErr is nil.
	HashValue string
	HashErr   error

	// CompareErr is returned by Compare; nil means every comparison
	// succeeds.
	CompareErr error
}

// Ensure MockPasswordHasher implements both password interfaces
var (
	_ auth.PasswordHasher   = (*MockPasswordHasher)(nil)
	_ auth.PasswordVerifier = (*MockPasswordHasher)(nil)
)

// Hash implements the PasswordHasher interface.
func (m *MockPasswordHasher) Hash(password string) (string, error) {
	if m.HashErr != nil {
		return "", m.HashErr
	}
	if m.HashValue != "" {
		return m.HashValue, nil
	}
	return "hashed:" + password, nil
}

// Compare implements the PasswordVerifier interface.
func (m *MockPasswordHasher) Compare(hashedPassword, password string) error {
	return m.CompareErr
}
