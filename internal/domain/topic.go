package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// TopicStatus represents the lifecycle state of a topic. The wire values
// are kept in Portuguese for compatibility with existing clients.
type TopicStatus string

const (
	TopicStatusUnanswered TopicStatus = "NAO_RESPONDIDO"
	TopicStatusAnswered   TopicStatus = "RESPONDIDO"
	TopicStatusSolved     TopicStatus = "SOLUCIONADO"
	TopicStatusClosed     TopicStatus = "FECHADO"
)

// Common topic validation errors. Each wraps ErrValidation so callers
// can classify them without matching individual fields.
var (
	ErrEmptyTopicID      = fmt.Errorf("%w: topic ID cannot be empty", ErrValidation)
	ErrEmptyTopicTitle   = fmt.Errorf("%w: topic title cannot be empty", ErrValidation)
	ErrEmptyTopicMessage = fmt.Errorf("%w: topic message cannot be empty", ErrValidation)
	ErrEmptyTopicAuthor  = fmt.Errorf("%w: topic author cannot be empty", ErrValidation)
	ErrEmptyTopicCourse  = fmt.Errorf("%w: topic course cannot be empty", ErrValidation)
	ErrInvalidStatus     = errors.New("invalid topic status")
)

// Topic is a forum thread. Author is the creator's login; it is compared
// case-insensitively for ownership checks. A topic is soft-deleted by
// clearing the Active flag; the row is retained.
type Topic struct {
	ID        uuid.UUID   `json:"id"`
	Title     string      `json:"title"`
	Message   string      `json:"message"`
	Status    TopicStatus `json:"status"`
	Active    bool        `json:"active"`
	Author    string      `json:"author"`
	Course    string      `json:"course"`
	CreatedAt time.Time   `json:"created_at"`
}

// NewTopic creates an active Topic with status NAO_RESPONDIDO and the
// creation time set to now.
func NewTopic(title, message, author, course string) (*Topic, error) {
	topic := &Topic{
		ID:        uuid.New(),
		Title:     title,
		Message:   message,
		Status:    TopicStatusUnanswered,
		Active:    true,
		Author:    author,
		Course:    course,
		CreatedAt: time.Now().UTC(),
	}

	if err := topic.Validate(); err != nil {
		return nil, err
	}

	return topic, nil
}

// Validate checks the Topic fields.
func (t *Topic) Validate() error {
	if t.ID == uuid.Nil {
		return ErrEmptyTopicID
	}
	if t.Title == "" {
		return ErrEmptyTopicTitle
	}
	if t.Message == "" {
		return ErrEmptyTopicMessage
	}
	if t.Author == "" {
		return ErrEmptyTopicAuthor
	}
	if t.Course == "" {
		return ErrEmptyTopicCourse
	}
	if err := t.Status.Validate(); err != nil {
		return err
	}
	return nil
}

// TopicPatch holds the optional fields of a partial topic update.
// Nil fields leave the current value untouched.
type TopicPatch struct {
	Title   *string
	Message *string
	Status  *TopicStatus
}

// Apply overwrites the topic's fields with the non-nil patch values.
func (t *Topic) Apply(patch TopicPatch) {
	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Message != nil {
		t.Message = *patch.Message
	}
	if patch.Status != nil {
		t.Status = *patch.Status
	}
}

// Deactivate soft-deletes the topic. Replies are not touched.
func (t *Topic) Deactivate() {
	t.Active = false
}

// OwnedBy reports whether the given login is the topic's author.
func (t *Topic) OwnedBy(login string) bool {
	return strings.EqualFold(t.Author, login)
}

// Validate checks that the status is one of the known values.
func (s TopicStatus) Validate() error {
	switch s {
	case TopicStatusUnanswered, TopicStatusAnswered, TopicStatusSolved, TopicStatusClosed:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidStatus, string(s))
}

// ParseTopicStatus converts a wire value into a TopicStatus.
func ParseTopicStatus(value string) (TopicStatus, error) {
	status := TopicStatus(value)
	if err := status.Validate(); err != nil {
		return "", err
	}
	return status, nil
}
