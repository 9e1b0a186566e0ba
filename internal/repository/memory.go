package repository

import (
	"context"
	"maps"
	"slices"
	"sync"

	"github.com/careerpath/careerpath-go/internal/model"
)

// MemoryStore keeps users, profiles and chat messages in process memory.
// It satisfies the same contracts as the Mongo and MySQL stores and is used
// for local runs without a database and in tests.
type MemoryStore struct {
	mu       sync.RWMutex
	users    map[string]model.User
	emails   map[string]string
	profiles map[string]model.Profile
	chats    map[string][]model.ChatMessage
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:    make(map[string]model.User),
		emails:   make(map[string]string),
		profiles: make(map[string]model.Profile),
		chats:    make(map[string][]model.ChatMessage),
	}
}

// Create inserts a new user, rejecting a duplicate email.
func (s *MemoryStore) Create(_ context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.emails[user.Email]; taken {
		return ErrDuplicateEmail
	}
	s.users[user.ID] = *user
	s.emails[user.Email] = user.ID
	return nil
}

// GetByEmail retrieves a user by their email address.
func (s *MemoryStore) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	s.mu.RLock()
	id, ok := s.emails[email]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrUserNotFound
	}
	return s.GetByID(ctx, id)
}

// GetByID retrieves a user by their ID.
func (s *MemoryStore) GetByID(_ context.Context, id string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, ErrUserNotFound
	}
	return &user, nil
}

// Upsert replaces the user's profile and marks the user's profile completed.
func (s *MemoryStore) Upsert(_ context.Context, profile *model.Profile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.profiles[profile.UserID] = cloneProfile(*profile)
	if user, ok := s.users[profile.UserID]; ok {
		user.ProfileCompleted = true
		s.users[profile.UserID] = user
	}
	return nil
}

// GetByUserID retrieves the profile owned by userID.
func (s *MemoryStore) GetByUserID(_ context.Context, userID string) (*model.Profile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	profile, ok := s.profiles[userID]
	if !ok {
		return nil, ErrProfileNotFound
	}
	profile = cloneProfile(profile)
	return &profile, nil
}

// Append adds a message to the user's chat log.
func (s *MemoryStore) Append(_ context.Context, msg *model.ChatMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.chats[msg.UserID] = append(s.chats[msg.UserID], *msg)
	return nil
}

// ListRecent returns at most limit messages for a user, newest first.
// Messages sharing a timestamp keep reverse insertion order.
func (s *MemoryStore) ListRecent(_ context.Context, userID string, limit int) ([]model.ChatMessage, error) {
	s.mu.RLock()
	log := slices.Clone(s.chats[userID])
	s.mu.RUnlock()

	slices.Reverse(log)
	slices.SortStableFunc(log, func(a, b model.ChatMessage) int {
		return b.Timestamp.Compare(a.Timestamp)
	})

	if len(log) > limit {
		log = log[:limit]
	}
	if log == nil {
		log = []model.ChatMessage{}
	}
	return log, nil
}

func cloneProfile(p model.Profile) model.Profile {
	p.Subjects = slices.Clone(p.Subjects)
	p.Interests = slices.Clone(p.Interests)
	p.Strengths = slices.Clone(p.Strengths)
	p.Grades = maps.Clone(p.Grades)
	return p
}
