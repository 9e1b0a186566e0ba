package service

import (
	"context"
	"time"

	"github.com/careerpath/careerpath-go/internal/model"
)

// UserStore persists user accounts. Create must reject an existing email
// with repository.ErrDuplicateEmail.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
}

// ProfileStore persists one profile per user. Upsert replaces the stored
// profile in full and marks the owning user's profile as completed.
type ProfileStore interface {
	Upsert(ctx context.Context, profile *model.Profile) error
	GetByUserID(ctx context.Context, userID string) (*model.Profile, error)
}

// ChatStore is the append-only chat log.
type ChatStore interface {
	Append(ctx context.Context, msg *model.ChatMessage) error
	ListRecent(ctx context.Context, userID string, limit int) ([]model.ChatMessage, error)
}

// Counselor is the gateway to the external language model.
type Counselor interface {
	Analyze(ctx context.Context, profile model.Profile) (string, error)
	Converse(ctx context.Context, userName string, profile *model.Profile, message string) (string, error)
}

func utcNow() time.Time {
	return time.Now().UTC()
}
