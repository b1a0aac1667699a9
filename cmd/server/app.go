package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"forumhub/internal/config"
	"forumhub/internal/platform/postgres"
	"forumhub/internal/service/auth"
	"forumhub/internal/store"
)

// application holds the wired dependencies of the running server. All
// wiring is explicit; there are no ambient globals beyond the default
// logger.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore  store.UserStore
	topicStore store.TopicStore
	replyStore store.ReplyStore

	jwtService auth.JWTService
	hasher     *auth.BcryptHasher
}

// newApplication connects to the database and constructs the stores and
// services.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	db, err := openDatabase(cfg, logger)
	if err != nil {
		return nil, err
	}

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	return &application{
		config:     cfg,
		logger:     logger,
		db:         db,
		userStore:  postgres.NewPostgresUserStore(db, logger),
		topicStore: postgres.NewPostgresTopicStore(db, logger),
		replyStore: postgres.NewPostgresReplyStore(db, logger),
		jwtService: jwtService,
		hasher:     auth.NewBcryptHasher(),
	}, nil
}

// openDatabase opens the connection pool and verifies connectivity.
func openDatabase(cfg *config.Config, logger *slog.Logger) (*sql.DB, error) {
	db, err := sql.Open("pgx", cfg.Database.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("database connection established")
	return db, nil
}

// cleanup releases the application's resources.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database connection", "error", err)
		}
	}
}
