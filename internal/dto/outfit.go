package dto

import (
	"encoding/json"
	"time"

	"FASHIONREC_BACK-END/internal/models"
)

// CreateOutfitRequest is the body for POST /api/outfits
type CreateOutfitRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=100"`
	Description *string         `json:"description,omitempty" validate:"omitempty,max=1000"`
	Items       json.RawMessage `json:"items,omitempty" swaggertype:"array,object"`
	ImageURL    *string         `json:"imageUrl,omitempty" validate:"omitempty,url"`
	Tags        []string        `json:"tags,omitempty" validate:"omitempty,max=20,dive,max=50"`
	Occasion    *string         `json:"occasion,omitempty" validate:"omitempty,max=50"`
	Season      *string         `json:"season,omitempty" validate:"omitempty,oneof=spring summer fall autumn winter all"`
}

// UpdateOutfitRequest is a partial update. Absent fields are left unchanged.
type UpdateOutfitRequest struct {
	Name        *string         `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Description *string         `json:"description,omitempty" validate:"omitempty,max=1000"`
	Items       json.RawMessage `json:"items,omitempty" swaggertype:"array,object"`
	ImageURL    *string         `json:"imageUrl,omitempty" validate:"omitempty,url"`
	Tags        []string        `json:"tags,omitempty" validate:"omitempty,max=20,dive,max=50"`
	Occasion    *string         `json:"occasion,omitempty" validate:"omitempty,max=50"`
	Season      *string         `json:"season,omitempty" validate:"omitempty,oneof=spring summer fall autumn winter all"`
	IsLiked     *bool           `json:"isLiked,omitempty"`
	IsSaved     *bool           `json:"isSaved,omitempty"`
	Rating      *int            `json:"rating,omitempty" validate:"omitempty,gte=1,lte=5"`
}

// RateOutfitRequest is the body for POST /api/recommendations/rate/{outfitId}
type RateOutfitRequest struct {
	Rating   int     `json:"rating" validate:"required,gte=1,lte=5"`
	Feedback *string `json:"feedback,omitempty" validate:"omitempty,max=1000"`
}

// OutfitResponse represents an outfit
type OutfitResponse struct {
	ID          string          `json:"id"`
	UserID      string          `json:"userId"`
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	Items       json.RawMessage `json:"items" swaggertype:"array,object"`
	ImageURL    *string         `json:"imageUrl"`
	Tags        []string        `json:"tags"`
	Occasion    *string         `json:"occasion"`
	Season      *string         `json:"season"`
	IsLiked     bool            `json:"isLiked"`
	IsSaved     bool            `json:"isSaved"`
	Rating      *int            `json:"rating"`
	CreatedAt   string          `json:"createdAt"`
	UpdatedAt   string          `json:"updatedAt"`
}

// OutfitDetailResponse wraps one outfit
type OutfitDetailResponse struct {
	Message string         `json:"message,omitempty"`
	Outfit  OutfitResponse `json:"outfit"`
}

// OutfitListResponse lists outfits
type OutfitListResponse struct {
	Outfits []OutfitResponse `json:"outfits"`
	Total   int              `json:"total"`
}

// NewOutfitResponse converts an outfit model
func NewOutfitResponse(o *models.Outfit) OutfitResponse {
	resp := OutfitResponse{
		ID:          o.ID.String(),
		UserID:      o.UserID.String(),
		Name:        o.Name,
		Description: o.Description,
		Items:       o.Items,
		ImageURL:    o.ImageURL,
		Tags:        o.Tags,
		Occasion:    o.Occasion,
		Season:      o.Season,
		IsLiked:     o.IsLiked,
		IsSaved:     o.IsSaved,
		Rating:      o.Rating,
		CreatedAt:   o.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   o.UpdatedAt.Format(time.RFC3339),
	}
	if len(resp.Items) == 0 {
		resp.Items = json.RawMessage(`[]`)
	}
	if resp.Tags == nil {
		resp.Tags = []string{}
	}
	return resp
}

// NewOutfitResponses converts a list of outfits
func NewOutfitResponses(outfits []models.Outfit) []OutfitResponse {
	out := make([]OutfitResponse, 0, len(outfits))
	for i := range outfits {
		out = append(out, NewOutfitResponse(&outfits[i]))
	}
	return out
}
