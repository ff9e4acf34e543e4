package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Gender values accepted on user profiles
const (
	GenderMale   = "male"
	GenderFemale = "female"
	GenderOther  = "other"
)

// User represents a user in the system
type User struct {
	ID             uuid.UUID       `json:"id" db:"id"`
	Email          string          `json:"email" db:"email"`
	PasswordHash   string          `json:"-" db:"password_hash"` // Hidden from JSON responses
	FirstName      string          `json:"firstName" db:"first_name"`
	LastName       string          `json:"lastName" db:"last_name"`
	Gender         *string         `json:"gender" db:"gender"`
	DateOfBirth    *time.Time      `json:"dateOfBirth" db:"date_of_birth"`
	ProfilePicture *string         `json:"profilePicture" db:"profile_picture"`
	Preferences    json.RawMessage `json:"preferences" db:"preferences"`
	IsActive       bool            `json:"isActive" db:"is_active"`
	CreatedAt      time.Time       `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time       `json:"updatedAt" db:"updated_at"`
}

// HasPassword reports whether the account can log in with a password.
// Accounts created through Google sign-in carry an empty hash.
func (u *User) HasPassword() bool {
	return u.PasswordHash != ""
}
