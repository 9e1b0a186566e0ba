package service

import (
	"context"
	"errors"
	"time"

	"github.com/careerpath/careerpath-go/internal/model"
	"github.com/careerpath/careerpath-go/internal/repository"
)

// ProfileService manages the single academic profile each user owns.
type ProfileService struct {
	profiles ProfileStore
	now      func() time.Time
}

// NewProfileService creates a new ProfileService.
func NewProfileService(profiles ProfileStore) *ProfileService {
	return &ProfileService{profiles: profiles, now: utcNow}
}

// Save replaces the user's profile with req and marks the user's profile completed.
func (s *ProfileService) Save(ctx context.Context, userID string, req model.ProfileRequest) (*model.Profile, error) {
	if err := validateRequest(req); err != nil {
		return nil, err
	}

	profile := req.ToProfile(userID, s.now())
	if err := s.profiles.Upsert(ctx, &profile); err != nil {
		return nil, err
	}
	return &profile, nil
}

// Get returns the user's profile.
func (s *ProfileService) Get(ctx context.Context, userID string) (*model.Profile, error) {
	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}
