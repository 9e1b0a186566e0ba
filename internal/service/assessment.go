package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/careerpath/careerpath-go/internal/model"
)

// AssessmentService produces AI career recommendations for a submitted profile.
type AssessmentService struct {
	profiles  *ProfileService
	counselor Counselor
}

// NewAssessmentService creates a new AssessmentService.
func NewAssessmentService(profiles *ProfileService, counselor Counselor) *AssessmentService {
	return &AssessmentService{profiles: profiles, counselor: counselor}
}

// Analyze sends the profile to the counselor and, once a response is in
// hand, stores the profile. Nothing is written if the counselor fails.
func (s *AssessmentService) Analyze(ctx context.Context, userID string, req model.ProfileRequest) (model.AnalysisResponse, error) {
	if err := validateRequest(req); err != nil {
		return model.AnalysisResponse{}, err
	}

	// The model call and the write that records it outlive a dropped client connection.
	detached := context.WithoutCancel(ctx)

	analysis, err := s.counselor.Analyze(detached, req.ToProfile(userID, s.profiles.now()))
	if err != nil {
		slog.Error("career analysis failed", "user_id", userID, "error", err)
		return model.AnalysisResponse{}, fmt.Errorf("%w: %v", ErrAnalysisFailed, err)
	}

	if _, err := s.profiles.Save(detached, userID, req); err != nil {
		slog.Error("storing analyzed profile failed", "user_id", userID, "error", err)
		return model.AnalysisResponse{}, fmt.Errorf("%w: %v", ErrAnalysisFailed, err)
	}

	return model.AnalysisResponse{
		Analysis:                 analysis,
		RecommendationsGenerated: true,
		UserID:                   userID,
	}, nil
}
