package repository

import (
	"context"
	"database/sql"

	"github.com/careerpath/careerpath-go/internal/model"
)

// ChatRepository handles the append-only chat log on MySQL.
type ChatRepository struct {
	db *sql.DB
}

// NewChatRepository creates a new ChatRepository.
func NewChatRepository(db *sql.DB) *ChatRepository {
	return &ChatRepository{db: db}
}

// Append inserts a chat message. Rows are never updated afterwards.
func (r *ChatRepository) Append(ctx context.Context, msg *model.ChatMessage) error {
	query := `INSERT INTO chat_history (id, user_id, message, response, timestamp) VALUES (?, ?, ?, ?, ?)`

	_, err := r.db.ExecContext(ctx, query, msg.ID, msg.UserID, msg.Message, msg.Response, msg.Timestamp)
	return err
}

// ListRecent returns at most limit messages for a user, newest first.
func (r *ChatRepository) ListRecent(ctx context.Context, userID string, limit int) ([]model.ChatMessage, error) {
	query := `SELECT id, user_id, message, response, timestamp
		FROM chat_history WHERE user_id = ? ORDER BY timestamp DESC LIMIT ?`

	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := []model.ChatMessage{}
	for rows.Next() {
		var m model.ChatMessage
		if err := rows.Scan(&m.ID, &m.UserID, &m.Message, &m.Response, &m.Timestamp); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}

	return messages, rows.Err()
}
