package model

import "time"

// User represents a registered student account.
type User struct {
	ID               string    `json:"id" bson:"_id"`
	Email            string    `json:"email" bson:"email"`
	Name             string    `json:"name" bson:"name"`
	PasswordHash     string    `json:"-" bson:"password_hash"`
	CreatedAt        time.Time `json:"created_at" bson:"created_at"`
	ProfileCompleted bool      `json:"profile_completed" bson:"profile_completed"`
}

// CreateUserRequest represents a user registration request.
type CreateUserRequest struct {
	Email    string `json:"email" validate:"required,email,max=254"`
	Name     string `json:"name" validate:"required,max=200"`
	Password string `json:"password" validate:"required,max=256"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse represents an authentication response with an access token and user info.
type AuthResponse struct {
	Message     string       `json:"message"`
	AccessToken string       `json:"access_token"`
	User        UserResponse `json:"user"`
}

// UserResponse represents user data safe for API responses (no password hash).
type UserResponse struct {
	ID               string    `json:"id"`
	Email            string    `json:"email"`
	Name             string    `json:"name"`
	CreatedAt        time.Time `json:"created_at"`
	ProfileCompleted bool      `json:"profile_completed"`
}

// ToResponse strips sensitive fields from the user.
func (u *User) ToResponse() UserResponse {
	return UserResponse{
		ID:               u.ID,
		Email:            u.Email,
		Name:             u.Name,
		CreatedAt:        u.CreatedAt,
		ProfileCompleted: u.ProfileCompleted,
	}
}
