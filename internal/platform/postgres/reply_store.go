package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"forumhub/internal/domain"
	"forumhub/internal/platform/logger"
	"forumhub/internal/store"
)

// PostgresReplyStore implements the store.ReplyStore interface using a
// PostgreSQL database as the storage backend.
type PostgresReplyStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresReplyStore creates a new PostgreSQL implementation of the
// ReplyStore interface.
func NewPostgresReplyStore(db store.DBTX, logger *slog.Logger) *PostgresReplyStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresReplyStore{
		db:     db,
		logger: logger.With(slog.String("component", "reply_store")),
	}
}

// Ensure PostgresReplyStore implements store.ReplyStore interface
var _ store.ReplyStore = (*PostgresReplyStore)(nil)

// Create implements store.ReplyStore.Create
// Returns store.ErrInvalidEntity if the topic or author reference is
// dangling.
func (s *PostgresReplyStore) Create(ctx context.Context, reply *domain.Reply) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := reply.Validate(); err != nil {
		log.Warn("reply validation failed during create",
			slog.String("error", err.Error()),
			slog.String("reply_id", reply.ID.String()))
		return err
	}

	query := `
		INSERT INTO replies (id, topic_id, author_id, message, solution, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		reply.ID,
		reply.TopicID,
		reply.AuthorID,
		reply.Message,
		reply.Solution,
		reply.CreatedAt,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			log.Warn("foreign key violation during reply creation",
				slog.String("reply_id", reply.ID.String()),
				slog.String("topic_id", reply.TopicID.String()))
			return fmt.Errorf("%w: referenced topic or user not found",
				store.ErrInvalidEntity)
		}

		log.Error("failed to create reply",
			slog.String("error", err.Error()),
			slog.String("reply_id", reply.ID.String()))
		return fmt.Errorf("failed to create reply: %w", err)
	}

	log.Info("reply created successfully",
		slog.String("reply_id", reply.ID.String()),
		slog.String("topic_id", reply.TopicID.String()))
	return nil
}

// GetByID implements store.ReplyStore.GetByID
// The author login and topic title are joined in so callers can render
// detail views and run ownership checks without extra queries.
func (s *PostgresReplyStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Reply, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT r.id, r.topic_id, r.author_id, r.message, r.solution, r.created_at,
		       u.login, t.title
		FROM replies r
		JOIN users u ON u.id = r.author_id
		JOIN topics t ON t.id = r.topic_id
		WHERE r.id = $1
	`
	var reply domain.Reply
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&reply.ID,
		&reply.TopicID,
		&reply.AuthorID,
		&reply.Message,
		&reply.Solution,
		&reply.CreatedAt,
		&reply.AuthorLogin,
		&reply.TopicTitle,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrReplyNotFound
		}
		log.Error("failed to get reply by ID",
			slog.String("error", err.Error()),
			slog.String("reply_id", id.String()))
		return nil, fmt.Errorf("failed to get reply: %w", err)
	}

	return &reply, nil
}

// ListByTopic implements store.ReplyStore.ListByTopic
// Replies are returned for active and soft-deleted topics alike.
func (s *PostgresReplyStore) ListByTopic(
	ctx context.Context,
	topicID uuid.UUID,
) ([]domain.Reply, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT r.id, r.topic_id, r.author_id, r.message, r.solution, r.created_at,
		       u.login
		FROM replies r
		JOIN users u ON u.id = r.author_id
		WHERE r.topic_id = $1
		ORDER BY r.created_at ASC
	`
	rows, err := s.db.QueryContext(ctx, query, topicID)
	if err != nil {
		log.Error("failed to list replies",
			slog.String("error", err.Error()),
			slog.String("topic_id", topicID.String()))
		return nil, fmt.Errorf("failed to list replies: %w", err)
	}
	defer func() {
		if closeErr := rows.Close(); closeErr != nil {
			log.Warn("failed to close rows", slog.String("error", closeErr.Error()))
		}
	}()

	var replies []domain.Reply
	for rows.Next() {
		var reply domain.Reply
		if err := rows.Scan(
			&reply.ID,
			&reply.TopicID,
			&reply.AuthorID,
			&reply.Message,
			&reply.Solution,
			&reply.CreatedAt,
			&reply.AuthorLogin,
		); err != nil {
			log.Error("failed to scan reply row", slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to scan reply row: %w", err)
		}
		replies = append(replies, reply)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate reply rows: %w", err)
	}

	return replies, nil
}

// Update implements store.ReplyStore.Update
// Only the message is mutable.
func (s *PostgresReplyStore) Update(ctx context.Context, reply *domain.Reply) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := reply.Validate(); err != nil {
		log.Warn("reply validation failed during update",
			slog.String("error", err.Error()),
			slog.String("reply_id", reply.ID.String()))
		return err
	}

	query := "UPDATE replies SET message = $2 WHERE id = $1"
	result, err := s.db.ExecContext(ctx, query, reply.ID, reply.Message)
	if err != nil {
		log.Error("failed to update reply",
			slog.String("error", err.Error()),
			slog.String("reply_id", reply.ID.String()))
		return fmt.Errorf("failed to update reply: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return store.ErrReplyNotFound
	}

	log.Debug("reply updated successfully",
		slog.String("reply_id", reply.ID.String()))
	return nil
}

// Delete implements store.ReplyStore.Delete
func (s *PostgresReplyStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, "DELETE FROM replies WHERE id = $1", id)
	if err != nil {
		log.Error("failed to delete reply",
			slog.String("error", err.Error()),
			slog.String("reply_id", id.String()))
		return fmt.Errorf("failed to delete reply: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return store.ErrReplyNotFound
	}

	log.Info("reply deleted successfully", slog.String("reply_id", id.String()))
	return nil
}
