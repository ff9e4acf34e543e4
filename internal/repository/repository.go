// Package repository persists users, quizzes, outfits and style history.
package repository

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/google/uuid"

	"FASHIONREC_BACK-END/internal/models"
)

var (
	// ErrNotFound is returned when no row matches, including rows owned by another user.
	ErrNotFound = errors.New("record not found")
	// ErrEmailTaken is returned when registering an email that already exists.
	ErrEmailTaken = errors.New("email already registered")
)

// UserRepository stores accounts.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// Update writes every mutable profile column and refreshes UpdatedAt.
	Update(ctx context.Context, user *models.User) error
	Deactivate(ctx context.Context, id uuid.UUID) error
}

// QuizRepository stores quizzes, one per user and gender.
type QuizRepository interface {
	// Upsert inserts the quiz or replaces the answers of the user's quiz for the
	// same gender. quiz is refreshed from the stored row; created reports an insert.
	Upsert(ctx context.Context, quiz *models.Quiz) (created bool, err error)
	SaveAnalysis(ctx context.Context, id uuid.UUID, profile json.RawMessage, score *int) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Quiz, error)
	LatestCompleted(ctx context.Context, userID uuid.UUID) (*models.Quiz, error)
	Delete(ctx context.Context, userID, quizID uuid.UUID) error
}

// OutfitFilter narrows outfit listings. Zero values match everything.
type OutfitFilter struct {
	Occasion string
	Season   string
	// Category matches the occasion case-insensitively or a tag equal to its slug.
	Category string
	Liked    *bool
	Saved    *bool
}

// OutfitRepository stores outfits. Every lookup is scoped to the owner.
type OutfitRepository interface {
	Create(ctx context.Context, outfit *models.Outfit) error
	Get(ctx context.Context, userID, id uuid.UUID) (*models.Outfit, error)
	List(ctx context.Context, userID uuid.UUID, filter OutfitFilter) ([]models.Outfit, error)
	Update(ctx context.Context, outfit *models.Outfit) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// StyleHistoryRepository is an append-only interaction log.
type StyleHistoryRepository interface {
	Record(ctx context.Context, entry *models.StyleHistory) error
	ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.StyleHistory, error)
	CountByAction(ctx context.Context, userID uuid.UUID) (map[string]int, error)
}

// Store groups the repositories behind one storage backend.
type Store struct {
	Users   UserRepository
	Quizzes QuizRepository
	Outfits OutfitRepository
	History StyleHistoryRepository

	ping func(ctx context.Context) error
}

// Ping checks the backend is reachable.
func (s *Store) Ping(ctx context.Context) error {
	if s.ping == nil {
		return nil
	}
	return s.ping(ctx)
}

func jsonOrDefault(raw json.RawMessage, def string) string {
	if len(raw) == 0 || string(raw) == "null" {
		return def
	}
	return string(raw)
}
