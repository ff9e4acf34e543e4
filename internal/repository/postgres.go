package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"

	"FASHIONREC_BACK-END/internal/models"
)

const uniqueViolation = "23505"

// NewPostgresStore returns a Store backed by the given pool.
func NewPostgresStore(pool *pgxpool.Pool, log *logrus.Logger) *Store {
	return &Store{
		Users:   &pgUsers{db: pool, log: log},
		Quizzes: &pgQuizzes{db: pool, log: log},
		Outfits: &pgOutfits{db: pool, log: log},
		History: &pgHistory{db: pool, log: log},
		ping:    pool.Ping,
	}
}

func notFound(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	return err
}

// ---- users ----

type pgUsers struct {
	db  *pgxpool.Pool
	log *logrus.Logger
}

const userColumns = `id, email, password_hash, first_name, last_name, gender, date_of_birth,
	profile_picture, preferences, is_active, created_at, updated_at`

func scanUser(row pgx.Row) (*models.User, error) {
	var u models.User
	var prefs []byte
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName, &u.Gender,
		&u.DateOfBirth, &u.ProfilePicture, &prefs, &u.IsActive, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	u.Preferences = prefs
	return &u, nil
}

func (r *pgUsers) Create(ctx context.Context, user *models.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	now := time.Now()
	user.CreatedAt, user.UpdatedAt = now, now
	prefs := jsonOrDefault(user.Preferences, `{}`)

	_, err := r.db.Exec(ctx,
		`INSERT INTO users (id, email, password_hash, first_name, last_name, gender, date_of_birth,
		 profile_picture, preferences, is_active, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9::jsonb, $10, $11, $12)`,
		user.ID, user.Email, user.PasswordHash, user.FirstName, user.LastName, user.Gender, user.DateOfBirth,
		user.ProfilePicture, prefs, user.IsActive, now, now)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return ErrEmailTaken
		}
		r.log.Errorf("Repository: failed to insert user %s: %v", user.Email, err)
		return fmt.Errorf("insert user: %w", err)
	}
	user.Preferences = json.RawMessage(prefs)
	return nil
}

func (r *pgUsers) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	return scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
}

func (r *pgUsers) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE lower(email) = lower($1)`, email))
}

func (r *pgUsers) Update(ctx context.Context, user *models.User) error {
	user.UpdatedAt = time.Now()
	tag, err := r.db.Exec(ctx,
		`UPDATE users SET password_hash = $2, first_name = $3, last_name = $4, gender = $5,
		 date_of_birth = $6, profile_picture = $7, preferences = $8::jsonb, is_active = $9, updated_at = $10
		 WHERE id = $1`,
		user.ID, user.PasswordHash, user.FirstName, user.LastName, user.Gender, user.DateOfBirth,
		user.ProfilePicture, jsonOrDefault(user.Preferences, `{}`), user.IsActive, user.UpdatedAt)
	if err != nil {
		r.log.Errorf("Repository: failed to update user %s: %v", user.ID, err)
		return fmt.Errorf("update user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgUsers) Deactivate(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `UPDATE users SET is_active = FALSE, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("deactivate user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ---- quizzes ----

type pgQuizzes struct {
	db  *pgxpool.Pool
	log *logrus.Logger
}

const quizColumns = `id, user_id, gender, answers, aesthetic_profile, completed_at, is_completed,
	score, created_at, updated_at`

func scanQuiz(row pgx.Row) (*models.Quiz, error) {
	var q models.Quiz
	var answers, profile []byte
	err := row.Scan(&q.ID, &q.UserID, &q.Gender, &answers, &profile, &q.CompletedAt, &q.IsCompleted,
		&q.Score, &q.CreatedAt, &q.UpdatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	q.Answers, q.AestheticProfile = answers, profile
	return &q, nil
}

func (r *pgQuizzes) Upsert(ctx context.Context, quiz *models.Quiz) (bool, error) {
	if quiz.ID == uuid.Nil {
		quiz.ID = uuid.New()
	}
	now := time.Now()

	// xmax is zero only for freshly inserted tuples
	row := r.db.QueryRow(ctx,
		`INSERT INTO quizzes (id, user_id, gender, answers, is_completed, completed_at, created_at, updated_at)
		 VALUES ($1, $2, $3, $4::jsonb, $5, $6, $7, $7)
		 ON CONFLICT (user_id, gender) DO UPDATE SET
		   answers = EXCLUDED.answers,
		   is_completed = EXCLUDED.is_completed,
		   completed_at = EXCLUDED.completed_at,
		   updated_at = EXCLUDED.updated_at
		 RETURNING `+quizColumns+`, (xmax = 0) AS inserted`,
		quiz.ID, quiz.UserID, quiz.Gender, jsonOrDefault(quiz.Answers, `{}`), quiz.IsCompleted, quiz.CompletedAt, now)

	var answers, profile []byte
	var inserted bool
	err := row.Scan(&quiz.ID, &quiz.UserID, &quiz.Gender, &answers, &profile, &quiz.CompletedAt,
		&quiz.IsCompleted, &quiz.Score, &quiz.CreatedAt, &quiz.UpdatedAt, &inserted)
	if err != nil {
		r.log.Errorf("Repository: failed to upsert quiz for user %s: %v", quiz.UserID, err)
		return false, fmt.Errorf("upsert quiz: %w", err)
	}
	quiz.Answers, quiz.AestheticProfile = answers, profile
	return inserted, nil
}

func (r *pgQuizzes) SaveAnalysis(ctx context.Context, id uuid.UUID, profile json.RawMessage, score *int) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE quizzes SET aesthetic_profile = $2::jsonb, score = $3, updated_at = NOW() WHERE id = $1`,
		id, jsonOrDefault(profile, `{}`), score)
	if err != nil {
		return fmt.Errorf("save quiz analysis: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgQuizzes) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Quiz, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+quizColumns+` FROM quizzes WHERE user_id = $1 ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list quizzes: %w", err)
	}
	defer rows.Close()

	quizzes := []models.Quiz{}
	for rows.Next() {
		q, err := scanQuiz(rows)
		if err != nil {
			return nil, fmt.Errorf("scan quiz: %w", err)
		}
		quizzes = append(quizzes, *q)
	}
	return quizzes, rows.Err()
}

func (r *pgQuizzes) LatestCompleted(ctx context.Context, userID uuid.UUID) (*models.Quiz, error) {
	return scanQuiz(r.db.QueryRow(ctx,
		`SELECT `+quizColumns+` FROM quizzes
		 WHERE user_id = $1 AND is_completed = TRUE
		 ORDER BY completed_at DESC NULLS LAST LIMIT 1`, userID))
}

func (r *pgQuizzes) Delete(ctx context.Context, userID, quizID uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM quizzes WHERE id = $1 AND user_id = $2`, quizID, userID)
	if err != nil {
		return fmt.Errorf("delete quiz: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ---- outfits ----

type pgOutfits struct {
	db  *pgxpool.Pool
	log *logrus.Logger
}

const outfitColumns = `id, user_id, name, description, items, image_url, tags, occasion, season,
	is_liked, is_saved, rating, created_at, updated_at`

func scanOutfit(row pgx.Row) (*models.Outfit, error) {
	var o models.Outfit
	var items []byte
	err := row.Scan(&o.ID, &o.UserID, &o.Name, &o.Description, &items, &o.ImageURL, &o.Tags, &o.Occasion,
		&o.Season, &o.IsLiked, &o.IsSaved, &o.Rating, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	o.Items = items
	if o.Tags == nil {
		o.Tags = []string{}
	}
	return &o, nil
}

func (r *pgOutfits) Create(ctx context.Context, outfit *models.Outfit) error {
	if outfit.ID == uuid.Nil {
		outfit.ID = uuid.New()
	}
	if outfit.Tags == nil {
		outfit.Tags = []string{}
	}
	now := time.Now()
	outfit.CreatedAt, outfit.UpdatedAt = now, now
	items := jsonOrDefault(outfit.Items, `[]`)

	_, err := r.db.Exec(ctx,
		`INSERT INTO outfits (id, user_id, name, description, items, image_url, tags, occasion, season,
		 is_liked, is_saved, rating, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5::jsonb, $6, $7::text[], $8, $9, $10, $11, $12, $13, $13)`,
		outfit.ID, outfit.UserID, outfit.Name, outfit.Description, items, outfit.ImageURL, outfit.Tags,
		outfit.Occasion, outfit.Season, outfit.IsLiked, outfit.IsSaved, outfit.Rating, now)
	if err != nil {
		r.log.Errorf("Repository: failed to insert outfit for user %s: %v", outfit.UserID, err)
		return fmt.Errorf("insert outfit: %w", err)
	}
	outfit.Items = json.RawMessage(items)
	return nil
}

func (r *pgOutfits) Get(ctx context.Context, userID, id uuid.UUID) (*models.Outfit, error) {
	return scanOutfit(r.db.QueryRow(ctx,
		`SELECT `+outfitColumns+` FROM outfits WHERE id = $1 AND user_id = $2`, id, userID))
}

func (r *pgOutfits) List(ctx context.Context, userID uuid.UUID, filter OutfitFilter) ([]models.Outfit, error) {
	where := []string{"user_id = $1"}
	args := []any{userID}
	add := func(clause string, arg any) {
		args = append(args, arg)
		where = append(where, fmt.Sprintf(clause, len(args)))
	}

	if filter.Occasion != "" {
		add("lower(occasion) = lower($%d)", filter.Occasion)
	}
	if filter.Season != "" {
		add("lower(season) = lower($%d)", filter.Season)
	}
	if filter.Liked != nil {
		add("is_liked = $%d", *filter.Liked)
	}
	if filter.Saved != nil {
		add("is_saved = $%d", *filter.Saved)
	}
	if filter.Category != "" {
		args = append(args, filter.Category, models.NormalizeTag(filter.Category))
		where = append(where, fmt.Sprintf("(lower(occasion) = lower($%d) OR $%d = ANY(tags))", len(args)-1, len(args)))
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+outfitColumns+` FROM outfits WHERE `+strings.Join(where, " AND ")+` ORDER BY created_at DESC`,
		args...)
	if err != nil {
		return nil, fmt.Errorf("list outfits: %w", err)
	}
	defer rows.Close()

	outfits := []models.Outfit{}
	for rows.Next() {
		o, err := scanOutfit(rows)
		if err != nil {
			return nil, fmt.Errorf("scan outfit: %w", err)
		}
		outfits = append(outfits, *o)
	}
	return outfits, rows.Err()
}

func (r *pgOutfits) Update(ctx context.Context, outfit *models.Outfit) error {
	outfit.UpdatedAt = time.Now()
	tag, err := r.db.Exec(ctx,
		`UPDATE outfits SET name = $3, description = $4, items = $5::jsonb, image_url = $6, tags = $7::text[],
		 occasion = $8, season = $9, is_liked = $10, is_saved = $11, rating = $12, updated_at = $13
		 WHERE id = $1 AND user_id = $2`,
		outfit.ID, outfit.UserID, outfit.Name, outfit.Description, jsonOrDefault(outfit.Items, `[]`),
		outfit.ImageURL, outfit.Tags, outfit.Occasion, outfit.Season, outfit.IsLiked, outfit.IsSaved,
		outfit.Rating, outfit.UpdatedAt)
	if err != nil {
		r.log.Errorf("Repository: failed to update outfit %s: %v", outfit.ID, err)
		return fmt.Errorf("update outfit: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgOutfits) Delete(ctx context.Context, userID, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM outfits WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete outfit: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ---- style history ----

type pgHistory struct {
	db  *pgxpool.Pool
	log *logrus.Logger
}

func (r *pgHistory) Record(ctx context.Context, entry *models.StyleHistory) error {
	if entry.ID == uuid.Nil {
		entry.ID = uuid.New()
	}
	entry.CreatedAt = time.Now()
	metadata := jsonOrDefault(entry.Metadata, `{}`)

	_, err := r.db.Exec(ctx,
		`INSERT INTO style_histories (id, user_id, outfit_id, action, metadata, created_at)
		 VALUES ($1, $2, $3, $4, $5::jsonb, $6)`,
		entry.ID, entry.UserID, entry.OutfitID, entry.Action, metadata, entry.CreatedAt)
	if err != nil {
		r.log.Errorf("Repository: failed to record %s for user %s: %v", entry.Action, entry.UserID, err)
		return fmt.Errorf("insert style history: %w", err)
	}
	entry.Metadata = json.RawMessage(metadata)
	return nil
}

func (r *pgHistory) ListByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]models.StyleHistory, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, outfit_id, action, metadata, created_at FROM style_histories
		 WHERE user_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list style history: %w", err)
	}
	defer rows.Close()

	entries := []models.StyleHistory{}
	for rows.Next() {
		var e models.StyleHistory
		var metadata []byte
		if err := rows.Scan(&e.ID, &e.UserID, &e.OutfitID, &e.Action, &metadata, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan style history: %w", err)
		}
		e.Metadata = metadata
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *pgHistory) CountByAction(ctx context.Context, userID uuid.UUID) (map[string]int, error) {
	rows, err := r.db.Query(ctx,
		`SELECT action, COUNT(*) FROM style_histories WHERE user_id = $1 GROUP BY action`, userID)
	if err != nil {
		return nil, fmt.Errorf("count style history: %w", err)
	}
	defer rows.Close()

	counts := map[string]int{}
	for rows.Next() {
		var action string
		var n int
		if err := rows.Scan(&action, &n); err != nil {
			return nil, fmt.Errorf("scan style history count: %w", err)
		}
		counts[action] = n
	}
	return counts, rows.Err()
}
