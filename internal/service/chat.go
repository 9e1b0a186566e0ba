package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/careerpath/careerpath-go/internal/model"
	"github.com/careerpath/careerpath-go/internal/repository"
)

// HistoryLimit caps how many chat messages History returns.
const HistoryLimit = 20

// ChatService runs counselor conversations and keeps the chat log.
type ChatService struct {
	chats     ChatStore
	profiles  ProfileStore
	counselor Counselor
	now       func() time.Time
}

// NewChatService creates a new ChatService.
func NewChatService(chats ChatStore, profiles ProfileStore, counselor Counselor) *ChatService {
	return &ChatService{
		chats:     chats,
		profiles:  profiles,
		counselor: counselor,
		now:       utcNow,
	}
}

// Send forwards the user's message to the counselor and logs the exchange.
// The log is only written after the counselor has answered.
func (s *ChatService) Send(ctx context.Context, user *model.User, req model.ChatRequest) (model.ChatResponse, error) {
	if err := validateRequest(req); err != nil {
		return model.ChatResponse{}, err
	}

	profile, err := s.profiles.GetByUserID(ctx, user.ID)
	if err != nil {
		if !errors.Is(err, repository.ErrProfileNotFound) {
			return model.ChatResponse{}, fmt.Errorf("%w: %v", ErrChatFailed, err)
		}
		profile = nil
	}

	// Once the model is asked, the exchange is logged even if the client has gone.
	detached := context.WithoutCancel(ctx)

	reply, err := s.counselor.Converse(detached, user.Name, profile, req.Message)
	if err != nil {
		slog.Error("counselor chat failed", "user_id", user.ID, "error", err)
		return model.ChatResponse{}, fmt.Errorf("%w: %v", ErrChatFailed, err)
	}

	msg := &model.ChatMessage{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Message:   req.Message,
		Response:  reply,
		Timestamp: s.now(),
	}
	if err := s.chats.Append(detached, msg); err != nil {
		slog.Error("appending chat message failed", "user_id", user.ID, "error", err)
		return model.ChatResponse{}, fmt.Errorf("%w: %v", ErrChatFailed, err)
	}

	return model.ChatResponse{Response: reply, Timestamp: msg.Timestamp}, nil
}

// History returns the user's most recent messages, newest first.
func (s *ChatService) History(ctx context.Context, userID string) ([]model.ChatMessage, error) {
	return s.chats.ListRecent(ctx, userID, HistoryLimit)
}
