package model

import "time"

// Profile is a student's academic profile. Each user has at most one.
type Profile struct {
	UserID        string         `json:"user_id" bson:"user_id"`
	AcademicLevel string         `json:"academic_level" bson:"academic_level"`
	CurrentClass  *string        `json:"current_class" bson:"current_class"`
	Stream        *string        `json:"stream" bson:"stream"`
	Subjects      []string       `json:"subjects" bson:"subjects"`
	Grades        map[string]any `json:"grades" bson:"grades"`
	Interests     []string       `json:"interests" bson:"interests"`
	Strengths     []string       `json:"strengths" bson:"strengths"`
	CareerGoals   *string        `json:"career_goals" bson:"career_goals"`
	UpdatedAt     time.Time      `json:"updated_at" bson:"updated_at"`
}

// ProfileRequest carries the profile fields a client submits. The owning
// user is always taken from the access token, so a user_id in the body is ignored.
type ProfileRequest struct {
	AcademicLevel string         `json:"academic_level" validate:"required,max=100"`
	CurrentClass  *string        `json:"current_class" validate:"omitempty,max=100"`
	Stream        *string        `json:"stream" validate:"omitempty,max=100"`
	Subjects      []string       `json:"subjects" validate:"max=50,dive,max=200"`
	Grades        map[string]any `json:"grades"`
	Interests     []string       `json:"interests" validate:"max=50,dive,max=200"`
	Strengths     []string       `json:"strengths" validate:"max=50,dive,max=200"`
	CareerGoals   *string        `json:"career_goals" validate:"omitempty,max=2000"`
}

// ToProfile builds a full profile for userID. Nil collections become empty
// so a replace never leaves stale values behind.
func (r ProfileRequest) ToProfile(userID string, now time.Time) Profile {
	p := Profile{
		UserID:        userID,
		AcademicLevel: r.AcademicLevel,
		CurrentClass:  r.CurrentClass,
		Stream:        r.Stream,
		Subjects:      r.Subjects,
		Grades:        r.Grades,
		Interests:     r.Interests,
		Strengths:     r.Strengths,
		CareerGoals:   r.CareerGoals,
		UpdatedAt:     now,
	}
	if p.Subjects == nil {
		p.Subjects = []string{}
	}
	if p.Grades == nil {
		p.Grades = map[string]any{}
	}
	if p.Interests == nil {
		p.Interests = []string{}
	}
	if p.Strengths == nil {
		p.Strengths = []string{}
	}
	return p
}

// AnalysisResponse is returned by the career analysis endpoint. Analysis is
// the model's free-form text, passed through unparsed.
type AnalysisResponse struct {
	Analysis                 string `json:"analysis"`
	RecommendationsGenerated bool   `json:"recommendations_generated"`
	UserID                   string `json:"user_id"`
}

// MessageResponse is a plain acknowledgement.
type MessageResponse struct {
	Message string `json:"message"`
}
