package repository

import (
	"context"
	"encoding/json"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"FASHIONREC_BACK-END/internal/models"
)

// NewMemoryStore returns a Store kept entirely in process memory.
func NewMemoryStore() *Store {
	return &Store{
		Users:   &memoryUsers{users: make(map[uuid.UUID]models.User)},
		Quizzes: &memoryQuizzes{quizzes: make(map[uuid.UUID]models.Quiz)},
		Outfits: &memoryOutfits{outfits: make(map[uuid.UUID]models.Outfit)},
		History: &memoryHistory{},
	}
}

type memoryUsers struct {
	mu    sync.RWMutex
	users map[uuid.UUID]models.User
}

func (s *memoryUsers) Create(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, user.Email) {
			return ErrEmailTaken
		}
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	now := time.Now()
	user.CreatedAt, user.UpdatedAt = now, now
	if len(user.Preferences) == 0 {
		user.Preferences = json.RawMessage(`{}`)
	}
	s.users[user.ID] = *user
	return nil
}

func (s *memoryUsers) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &u, nil
}

func (s *memoryUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (s *memoryUsers) Update(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.users[user.ID]
	if !ok {
		return ErrNotFound
	}
	user.Email, user.CreatedAt = stored.Email, stored.CreatedAt
	user.UpdatedAt = time.Now()
	s.users[user.ID] = *user
	return nil
}

func (s *memoryUsers) Deactivate(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return ErrNotFound
	}
	u.IsActive = false
	u.UpdatedAt = time.Now()
	s.users[id] = u
	return nil
}

type memoryQuizzes struct {
	mu      sync.RWMutex
	quizzes map[uuid.UUID]models.Quiz
	order   []uuid.UUID
}

func (s *memoryQuizzes) Upsert(_ context.Context, quiz *models.Quiz) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	for id, existing := range s.quizzes {
		if existing.UserID != quiz.UserID || existing.Gender != quiz.Gender {
			continue
		}
		existing.Answers = quiz.Answers
		existing.IsCompleted = quiz.IsCompleted
		existing.CompletedAt = quiz.CompletedAt
		existing.UpdatedAt = now
		s.quizzes[id] = existing
		*quiz = existing
		return false, nil
	}

	if quiz.ID == uuid.Nil {
		quiz.ID = uuid.New()
	}
	if len(quiz.AestheticProfile) == 0 {
		quiz.AestheticProfile = json.RawMessage(`{}`)
	}
	quiz.CreatedAt, quiz.UpdatedAt = now, now
	s.quizzes[quiz.ID] = *quiz
	s.order = append(s.order, quiz.ID)
	return true, nil
}

func (s *memoryQuizzes) SaveAnalysis(_ context.Context, id uuid.UUID, profile json.RawMessage, score *int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	q, ok := s.quizzes[id]
	if !ok {
		return ErrNotFound
	}
	q.AestheticProfile = profile
	q.Score = score
	q.UpdatedAt = time.Now()
	s.quizzes[id] = q
	return nil
}

func (s *memoryQuizzes) ListByUser(_ context.Context, userID uuid.UUID) ([]models.Quiz, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Quiz{}
	for i := len(s.order) - 1; i >= 0; i-- {
		if q, ok := s.quizzes[s.order[i]]; ok && q.UserID == userID {
			out = append(out, q)
		}
	}
	return out, nil
}

func (s *memoryQuizzes) LatestCompleted(_ context.Context, userID uuid.UUID) (*models.Quiz, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var latest *models.Quiz
	for _, id := range s.order {
		q, ok := s.quizzes[id]
		if !ok || q.UserID != userID || !q.IsCompleted || q.CompletedAt == nil {
			continue
		}
		if latest == nil || !q.CompletedAt.Before(*latest.CompletedAt) {
			latest = &q
		}
	}
	if latest == nil {
		return nil, ErrNotFound
	}
	return latest, nil
}

func (s *memoryQuizzes) Delete(_ context.Context, userID, quizID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	q, ok := s.quizzes[quizID]
	if !ok || q.UserID != userID {
		return ErrNotFound
	}
	delete(s.quizzes, quizID)
	s.order = slices.DeleteFunc(s.order, func(id uuid.UUID) bool { return id == quizID })
	return nil
}

type memoryOutfits struct {
	mu      sync.RWMutex
	outfits map[uuid.UUID]models.Outfit
	order   []uuid.UUID
}

func cloneOutfit(o models.Outfit) models.Outfit {
	o.Tags = slices.Clone(o.Tags)
	return o
}

func (s *memoryOutfits) Create(_ context.Context, outfit *models.Outfit) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if outfit.ID == uuid.Nil {
		outfit.ID = uuid.New()
	}
	now := time.Now()
	outfit.CreatedAt, outfit.UpdatedAt = now, now
	if len(outfit.Items) == 0 {
		outfit.Items = json.RawMessage(`[]`)
	}
	if outfit.Tags == nil {
		outfit.Tags = []string{}
	}
	s.outfits[outfit.ID] = cloneOutfit(*outfit)
	s.order = append(s.order, outfit.ID)
	return nil
}

func (s *memoryOutfits) Get(_ context.Context, userID, id uuid.UUID) (*models.Outfit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.outfits[id]
	if !ok || o.UserID != userID {
		return nil, ErrNotFound
	}
	o = cloneOutfit(o)
	return &o, nil
}

func (s *memoryOutfits) List(_ context.Context, userID uuid.UUID, filter OutfitFilter) ([]models.Outfit, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	categoryTag := models.NormalizeTag(filter.Category)
	out := []models.Outfit{}
	for i := len(s.order) - 1; i >= 0; i-- {
		o, ok := s.outfits[s.order[i]]
		if !ok || o.UserID != userID {
			continue
		}
		if filter.Occasion != "" && !strings.EqualFold(deref(o.Occasion), filter.Occasion) {
			continue
		}
		if filter.Season != "" && !strings.EqualFold(deref(o.Season), filter.Season) {
			continue
		}
		if filter.Liked != nil && o.IsLiked != *filter.Liked {
			continue
		}
		if filter.Saved != nil && o.IsSaved != *filter.Saved {
			continue
		}
		if filter.Category != "" &&
			!strings.EqualFold(deref(o.Occasion), filter.Category) &&
			!slices.Contains(o.Tags, categoryTag) {
			continue
		}
		out = append(out, cloneOutfit(o))
	}
	return out, nil
}

func (s *memoryOutfits) Update(_ context.Context, outfit *models.Outfit) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.outfits[outfit.ID]
	if !ok || stored.UserID != outfit.UserID {
		return ErrNotFound
	}
	outfit.CreatedAt = stored.CreatedAt
	outfit.UpdatedAt = time.Now()
	s.outfits[outfit.ID] = cloneOutfit(*outfit)
	return nil
}

func (s *memoryOutfits) Delete(_ context.Context, userID, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.outfits[id]
	if !ok || o.UserID != userID {
		return ErrNotFound
	}
	delete(s.outfits, id)
	s.order = slices.DeleteFunc(s.order, func(v uuid.UUID) bool { return v == id })
	return nil
}

type memoryHistory struct {
	mu      sync.RWMutex
	entries []models.StyleHistory
}

func (s *memoryHistory) Record(_ context.Context, entry *models.StyleHistory) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	if len(entry.Metadata) == 0 {
		entry.Metadata = json.RawMessage(`{}`)
	}
	entry.CreatedAt = time.Now()
	s.entries = append(s.entries, *entry)
	return nil
}

func (s *memoryHistory) ListByUser(_ context.Context, userID uuid.UUID, limit, offset int) ([]models.StyleHistory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.StyleHistory{}
	// entries are appended in time order, so walk backwards for newest first
	for i := len(s.entries) - 1; i >= 0; i-- {
		if s.entries[i].UserID == userID {
			out = append(out, s.entries[i])
		}
	}
	if offset >= len(out) {
		return []models.StyleHistory{}, nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (s *memoryHistory) CountByAction(_ context.Context, userID uuid.UUID) (map[string]int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	counts := map[string]int{}
	for _, e := range s.entries {
		if e.UserID == userID {
			counts[e.Action]++
		}
	}
	return counts, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
