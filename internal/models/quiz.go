package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Quiz is one user's answer set for a gender track and the profile derived from it
type Quiz struct {
	ID               uuid.UUID       `json:"id" db:"id"`
	UserID           uuid.UUID       `json:"userId" db:"user_id"`
	Gender           string          `json:"gender" db:"gender"`
	Answers          json.RawMessage `json:"answers" db:"answers"`
	AestheticProfile json.RawMessage `json:"aestheticProfile" db:"aesthetic_profile"`
	CompletedAt      *time.Time      `json:"completedAt" db:"completed_at"`
	IsCompleted      bool            `json:"isCompleted" db:"is_completed"`
	Score            *int            `json:"score" db:"score"`
	CreatedAt        time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt        time.Time       `json:"updatedAt" db:"updated_at"`
}
