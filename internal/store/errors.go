package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in
	// the store. Entity-specific variants wrap it.
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicate is returned when an operation would violate a
	// uniqueness rule (duplicate login, duplicate topic title+message).
	ErrDuplicate = errors.New("entity already exists")

	// ErrInvalidEntity is returned when an entity fails validation or a
	// referenced entity is missing (foreign key violation).
	ErrInvalidEntity = errors.New("invalid entity")

	// ErrTransactionFailed is returned when a database transaction fails
	// to commit or an operation within it fails.
	ErrTransactionFailed = errors.New("transaction failed")

	// Entity-specific "not found" errors

	ErrUserNotFound  = fmt.Errorf("%w: user", ErrNotFound)
	ErrTopicNotFound = fmt.Errorf("%w: topic", ErrNotFound)
	ErrReplyNotFound = fmt.Errorf("%w: reply", ErrNotFound)

	// Entity-specific "duplicate" errors

	// ErrLoginExists indicates a user with the given login already exists.
	ErrLoginExists = fmt.Errorf("%w: login", ErrDuplicate)

	// ErrDuplicateTopic indicates another topic already has the same
	// title and message pair.
	ErrDuplicateTopic = fmt.Errorf("%w: topic title and message", ErrDuplicate)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateError checks if the error is any kind of "duplicate" error.
func IsDuplicateError(err error) bool {
	return errors.Is(err, ErrDuplicate)
}
