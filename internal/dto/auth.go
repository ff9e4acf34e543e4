package dto

import (
	"encoding/json"
	"time"

	"FASHIONREC_BACK-END/internal/models"
)

// RegisterRequest represents the request payload for user registration
type RegisterRequest struct {
	Email       string  `json:"email" validate:"required,email"`
	Password    string  `json:"password" validate:"required,min=6"`
	FirstName   string  `json:"firstName" validate:"required,min=2,max=50"`
	LastName    string  `json:"lastName" validate:"required,min=2,max=50"`
	Gender      *string `json:"gender,omitempty" validate:"omitempty,oneof=male female other"`
	DateOfBirth *string `json:"dateOfBirth,omitempty" validate:"omitempty,isodate"`
}

// LoginRequest represents the request payload for user login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshTokenRequest carries a refresh token to exchange
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// TokenPair is an access token with the refresh token that renews it
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int64  `json:"expiresIn"`
}

// AuthResponse represents the response after successful authentication
type AuthResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
	Tokens  TokenPair    `json:"tokens"`
}

// TokenResponse is returned by the refresh endpoint
type TokenResponse struct {
	Tokens TokenPair `json:"tokens"`
}

// UserResponse represents user data in API responses
type UserResponse struct {
	ID             string           `json:"id"`
	Email          string           `json:"email"`
	FirstName      string           `json:"firstName"`
	LastName       string           `json:"lastName"`
	Gender         *string          `json:"gender"`
	DateOfBirth    *string          `json:"dateOfBirth"`
	ProfilePicture *string          `json:"profilePicture"`
	Preferences    json.RawMessage  `json:"preferences"`
	IsActive       bool             `json:"isActive"`
	CreatedAt      string           `json:"createdAt"`
	UpdatedAt      string           `json:"updatedAt"`
	Quizzes        []QuizResponse   `json:"quizzes,omitempty"`
	Outfits        []OutfitResponse `json:"outfits,omitempty"`
}

// ProfileResponse wraps a single user
type ProfileResponse struct {
	User UserResponse `json:"user"`
}

// MessageResponse is a plain acknowledgement
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// NewUserResponse converts a user model, never exposing the password hash
func NewUserResponse(u *models.User) UserResponse {
	resp := UserResponse{
		ID:             u.ID.String(),
		Email:          u.Email,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		Gender:         u.Gender,
		ProfilePicture: u.ProfilePicture,
		Preferences:    u.Preferences,
		IsActive:       u.IsActive,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      u.UpdatedAt.Format(time.RFC3339),
	}
	if u.DateOfBirth != nil {
		s := u.DateOfBirth.Format("2006-01-02")
		resp.DateOfBirth = &s
	}
	if len(resp.Preferences) == 0 {
		resp.Preferences = json.RawMessage(`{}`)
	}
	return resp
}
