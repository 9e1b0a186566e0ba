package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// NewDB creates a new MySQL database connection pool with the given DSN.
// The DSN must set parseTime=true so DATETIME columns scan into time.Time.
func NewDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		slog.Warn("database ping failed", "error", err)
		db.Close()
		return nil, err
	}

	return db, nil
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id                CHAR(36)     NOT NULL PRIMARY KEY,
		email             VARCHAR(254) NOT NULL UNIQUE,
		name              VARCHAR(200) NOT NULL,
		password_hash     VARCHAR(255) NOT NULL,
		profile_completed BOOLEAN      NOT NULL DEFAULT FALSE,
		created_at        DATETIME(6)  NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS user_profiles (
		user_id        CHAR(36)     NOT NULL PRIMARY KEY,
		academic_level VARCHAR(100) NOT NULL,
		current_class  VARCHAR(100) NULL,
		stream         VARCHAR(100) NULL,
		subjects       JSON         NOT NULL,
		grades         JSON         NOT NULL,
		interests      JSON         NOT NULL,
		strengths      JSON         NOT NULL,
		career_goals   TEXT         NULL,
		updated_at     DATETIME(6)  NOT NULL,
		CONSTRAINT fk_profiles_user FOREIGN KEY (user_id) REFERENCES users (id)
	)`,
	`CREATE TABLE IF NOT EXISTS chat_history (
		id        CHAR(36)    NOT NULL PRIMARY KEY,
		user_id   CHAR(36)    NOT NULL,
		message   TEXT        NOT NULL,
		response  MEDIUMTEXT  NOT NULL,
		timestamp DATETIME(6) NOT NULL,
		INDEX idx_chat_user_time (user_id, timestamp),
		CONSTRAINT fk_chat_user FOREIGN KEY (user_id) REFERENCES users (id)
	)`,
}

// EnsureSchema creates the tables if they don't exist.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("creating schema: %w", err)
		}
	}
	return nil
}
