package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"forumhub/internal/domain"
	"forumhub/internal/platform/logger"
	"forumhub/internal/store"
)

// PostgresTopicStore implements the store.TopicStore interface using a
// PostgreSQL database as the storage backend.
type PostgresTopicStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresTopicStore creates a new PostgreSQL implementation of the
// TopicStore interface.
func NewPostgresTopicStore(db store.DBTX, logger *slog.Logger) *PostgresTopicStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresTopicStore{
		db:     db,
		logger: logger.With(slog.String("component", "topic_store")),
	}
}

// Ensure PostgresTopicStore implements store.TopicStore interface
var _ store.TopicStore = (*PostgresTopicStore)(nil)

const topicColumns = "id, title, message, status, active, author, course, created_at"

// Create implements store.TopicStore.Create
// Returns store.ErrDuplicateTopic when the (title, message) unique index
// rejects the insert.
func (s *PostgresTopicStore) Create(ctx context.Context, topic *domain.Topic) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := topic.Validate(); err != nil {
		log.Warn("topic validation failed during create",
			slog.String("error", err.Error()),
			slog.String("topic_id", topic.ID.String()))
		return err
	}

	query := `
		INSERT INTO topics (id, title, message, status, active, author, course, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		topic.ID,
		topic.Title,
		topic.Message,
		topic.Status,
		topic.Active,
		topic.Author,
		topic.Course,
		topic.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			log.Warn("duplicate title and message during topic creation",
				slog.String("topic_id", topic.ID.String()))
			return store.ErrDuplicateTopic
		}

		log.Error("failed to create topic",
			slog.String("error", err.Error()),
			slog.String("topic_id", topic.ID.String()))
		return fmt.Errorf("failed to create topic: %w", err)
	}

	log.Info("topic created successfully",
		slog.String("topic_id", topic.ID.String()),
		slog.String("author", topic.Author))
	return nil
}

// GetByID implements store.TopicStore.GetByID
func (s *PostgresTopicStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Topic, error) {
	query := "SELECT " + topicColumns + " FROM topics WHERE id = $1"
	return s.getOne(ctx, query, id)
}

// GetActiveByID implements store.TopicStore.GetActiveByID
// A soft-deleted topic is reported as not found.
func (s *PostgresTopicStore) GetActiveByID(ctx context.Context, id uuid.UUID) (*domain.Topic, error) {
	query := "SELECT " + topicColumns + " FROM topics WHERE id = $1 AND active"
	return s.getOne(ctx, query, id)
}

// FindByTitleAndMessage implements store.TopicStore.FindByTitleAndMessage
// The match is exact, with no case or whitespace normalization.
func (s *PostgresTopicStore) FindByTitleAndMessage(
	ctx context.Context,
	title, message string,
) (*domain.Topic, error) {
	query := "SELECT " + topicColumns + " FROM topics WHERE title = $1 AND message = $2"
	return s.getOne(ctx, query, title, message)
}

func (s *PostgresTopicStore) getOne(
	ctx context.Context,
	query string,
	args ...any,
) (*domain.Topic, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var topic domain.Topic
	err := s.db.QueryRowContext(ctx, query, args...).Scan(
		&topic.ID,
		&topic.Title,
		&topic.Message,
		&topic.Status,
		&topic.Active,
		&topic.Author,
		&topic.Course,
		&topic.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrTopicNotFound
		}
		log.Error("failed to query topic", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to query topic: %w", err)
	}

	return &topic, nil
}

// buildTopicListPredicates translates the explicit filter struct into SQL
// predicates. Listing only ever sees active topics.
func buildTopicListPredicates(filter store.TopicFilter) (string, []any) {
	clauses := []string{"active"}
	var args []any

	if filter.Course != "" {
		args = append(args, filter.Course)
		clauses = append(clauses, "course = $"+strconv.Itoa(len(args)))
	}
	if filter.Year != 0 {
		args = append(args, filter.Year)
		clauses = append(clauses, "EXTRACT(YEAR FROM created_at) = $"+strconv.Itoa(len(args)))
	}

	return strings.Join(clauses, " AND "), args
}

// List implements store.TopicStore.List
// Results are sorted by creation time ascending.
func (s *PostgresTopicStore) List(
	ctx context.Context,
	filter store.TopicFilter,
	page, size int,
) (*store.TopicPage, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if page < 0 {
		page = 0
	}
	if size <= 0 {
		size = 10
	}

	where, args := buildTopicListPredicates(filter)

	var total int64
	countQuery := "SELECT COUNT(*) FROM topics WHERE " + where
	if err := s.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		log.Error("failed to count topics", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to count topics: %w", err)
	}

	listQuery := "SELECT " + topicColumns + " FROM topics WHERE " + where +
		" ORDER BY created_at ASC" +
		" LIMIT $" + strconv.Itoa(len(args)+1) +
		" OFFSET $" + strconv.Itoa(len(args)+2)
	args = append(args, size, page*size)

	rows, err := s.db.QueryContext(ctx, listQuery, args...)
	if err != nil {
		log.Error("failed to list topics", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list topics: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Warn("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	topics := make([]domain.Topic, 0, size)
	for rows.Next() {
		var topic domain.Topic
		if err := rows.Scan(
			&topic.ID,
			&topic.Title,
			&topic.Message,
			&topic.Status,
			&topic.Active,
			&topic.Author,
			&topic.Course,
			&topic.CreatedAt,
		); err != nil {
			log.Error("failed to scan topic row", slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to scan topic row: %w", err)
		}
		topics = append(topics, topic)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate topic rows: %w", err)
	}

	totalPages := int(total) / size
	if int(total)%size != 0 {
		totalPages++
	}

	return &store.TopicPage{
		Topics:        topics,
		Page:          page,
		Size:          size,
		TotalElements: total,
		TotalPages:    totalPages,
	}, nil
}

// Update implements store.TopicStore.Update
func (s *PostgresTopicStore) Update(ctx context.Context, topic *domain.Topic) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := topic.Validate(); err != nil {
		log.Warn("topic validation failed during update",
			slog.String("error", err.Error()),
			slog.String("topic_id", topic.ID.String()))
		return err
	}

	query := `
		UPDATE topics
		SET title = $2, message = $3, status = $4, active = $5
		WHERE id = $1
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		topic.ID,
		topic.Title,
		topic.Message,
		topic.Status,
		topic.Active,
	)
	if err != nil {
		if isUniqueViolation(err) {
			log.Warn("duplicate title and message during topic update",
				slog.String("topic_id", topic.ID.String()))
			return store.ErrDuplicateTopic
		}

		log.Error("failed to update topic",
			slog.String("error", err.Error()),
			slog.String("topic_id", topic.ID.String()))
		return fmt.Errorf("failed to update topic: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return store.ErrTopicNotFound
	}

	log.Debug("topic updated successfully",
		slog.String("topic_id", topic.ID.String()))
	return nil
}

// Exists implements store.TopicStore.Exists
func (s *PostgresTopicStore) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	var exists bool
	query := "SELECT EXISTS (SELECT 1 FROM topics WHERE id = $1)"
	if err := s.db.QueryRowContext(ctx, query, id).Scan(&exists); err != nil {
		log.Error("failed to check topic existence",
			slog.String("error", err.Error()),
			slog.String("topic_id", id.String()))
		return false, fmt.Errorf("failed to check topic existence: %w", err)
	}

	return exists, nil
}
