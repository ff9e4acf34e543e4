package dto

import "encoding/json"

// UpdateProfileRequest is a partial profile update
type UpdateProfileRequest struct {
	FirstName      *string         `json:"firstName,omitempty" validate:"omitempty,min=2,max=50"`
	LastName       *string         `json:"lastName,omitempty" validate:"omitempty,min=2,max=50"`
	Gender         *string         `json:"gender,omitempty" validate:"omitempty,oneof=male female other"`
	DateOfBirth    *string         `json:"dateOfBirth,omitempty" validate:"omitempty,isodate"`
	ProfilePicture *string         `json:"profilePicture,omitempty" validate:"omitempty,url"`
	Preferences    json.RawMessage `json:"preferences,omitempty" swaggertype:"object"`
}

// UpdateProfileResponse is returned after a profile update
type UpdateProfileResponse struct {
	Message string       `json:"message"`
	User    UserResponse `json:"user"`
}

// PreferencesResponse is returned after preferences are replaced
type PreferencesResponse struct {
	Message     string          `json:"message"`
	Preferences json.RawMessage `json:"preferences" swaggertype:"object"`
}

// StyleHistoryEntry is one logged interaction
type StyleHistoryEntry struct {
	ID        string          `json:"id"`
	OutfitID  *string         `json:"outfitId"`
	Action    string          `json:"action"`
	Metadata  json.RawMessage `json:"metadata" swaggertype:"object"`
	CreatedAt string          `json:"createdAt"`
}

// StyleHistoryResponse is a page of history entries
type StyleHistoryResponse struct {
	History []StyleHistoryEntry `json:"history"`
	Limit   int                 `json:"limit"`
	Offset  int                 `json:"offset"`
}

// DashboardStatsResponse summarises a user's activity
type DashboardStatsResponse struct {
	TotalQuizzes int            `json:"totalQuizzes"`
	TotalOutfits int            `json:"totalOutfits"`
	LikedOutfits int            `json:"likedOutfits"`
	SavedOutfits int            `json:"savedOutfits"`
	Activity     map[string]int `json:"activity"`
	PrimaryStyle *string        `json:"primaryStyle"`
}
