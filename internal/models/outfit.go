package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// Outfit is a named bundle of clothing items owned by a user
type Outfit struct {
	ID          uuid.UUID       `json:"id" db:"id"`
	UserID      uuid.UUID       `json:"userId" db:"user_id"`
	Name        string          `json:"name" db:"name"`
	Description *string         `json:"description" db:"description"`
	Items       json.RawMessage `json:"items" db:"items"`
	ImageURL    *string         `json:"imageUrl" db:"image_url"`
	Tags        []string        `json:"tags" db:"tags"`
	Occasion    *string         `json:"occasion" db:"occasion"`
	Season      *string         `json:"season" db:"season"`
	IsLiked     bool            `json:"isLiked" db:"is_liked"`
	IsSaved     bool            `json:"isSaved" db:"is_saved"`
	Rating      *int            `json:"rating" db:"rating"`
	CreatedAt   time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt   time.Time       `json:"updatedAt" db:"updated_at"`
}

// NormalizeTag turns a free-form tag such as "Old Money" into "old-money".
func NormalizeTag(tag string) string {
	return slug.Make(tag)
}

// NormalizeTags slugs every tag, dropping empties and duplicates while keeping order.
func NormalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))
	for _, tag := range tags {
		s := NormalizeTag(tag)
		if s == "" || seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}
