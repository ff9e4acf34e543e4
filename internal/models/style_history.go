package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Style history actions
const (
	ActionViewed   = "viewed"
	ActionLiked    = "liked"
	ActionDisliked = "disliked"
	ActionSaved    = "saved"
	ActionWorn     = "worn"
	ActionRated    = "rated"
)

// StyleHistory is an append-only record of a user interacting with an outfit
type StyleHistory struct {
	ID        uuid.UUID       `json:"id" db:"id"`
	UserID    uuid.UUID       `json:"userId" db:"user_id"`
	OutfitID  *uuid.UUID      `json:"outfitId" db:"outfit_id"`
	Action    string          `json:"action" db:"action"`
	Metadata  json.RawMessage `json:"metadata" db:"metadata"`
	CreatedAt time.Time       `json:"createdAt" db:"created_at"`
}
