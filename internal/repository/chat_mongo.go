package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/careerpath/careerpath-go/internal/model"
)

// MongoChatRepository stores the chat log in the chat_history collection.
type MongoChatRepository struct {
	coll *mongo.Collection
}

// NewMongoChatRepository creates a new MongoChatRepository.
func NewMongoChatRepository(db *mongo.Database) *MongoChatRepository {
	return &MongoChatRepository{coll: db.Collection(chatCollection)}
}

// Append inserts a chat message document.
func (r *MongoChatRepository) Append(ctx context.Context, msg *model.ChatMessage) error {
	_, err := r.coll.InsertOne(ctx, msg)
	return err
}

// ListRecent returns at most limit messages for a user, newest first.
func (r *MongoChatRepository) ListRecent(ctx context.Context, userID string, limit int) ([]model.ChatMessage, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.coll.Find(ctx, bson.D{{Key: "user_id", Value: userID}}, opts)
	if err != nil {
		return nil, err
	}

	messages := []model.ChatMessage{}
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}
