package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// statements are idempotent and run in order on every start when auto migration is on.
var statements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL DEFAULT '',
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		gender TEXT CHECK (gender IN ('male', 'female', 'other')),
		date_of_birth DATE,
		profile_picture TEXT,
		preferences JSONB NOT NULL DEFAULT '{}'::jsonb,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS quizzes (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		gender TEXT NOT NULL CHECK (gender IN ('male', 'female')),
		answers JSONB NOT NULL,
		aesthetic_profile JSONB NOT NULL DEFAULT '{}'::jsonb,
		completed_at TIMESTAMPTZ,
		is_completed BOOLEAN NOT NULL DEFAULT FALSE,
		score INTEGER,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		UNIQUE (user_id, gender)
	)`,
	`CREATE INDEX IF NOT EXISTS quizzes_user_completed_idx ON quizzes (user_id, completed_at DESC)`,
	`CREATE TABLE IF NOT EXISTS outfits (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		name TEXT NOT NULL,
		description TEXT,
		items JSONB NOT NULL DEFAULT '[]'::jsonb,
		image_url TEXT,
		tags TEXT[] NOT NULL DEFAULT '{}',
		occasion TEXT,
		season TEXT,
		is_liked BOOLEAN NOT NULL DEFAULT FALSE,
		is_saved BOOLEAN NOT NULL DEFAULT FALSE,
		rating INTEGER CHECK (rating BETWEEN 1 AND 5),
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS outfits_user_created_idx ON outfits (user_id, created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS style_histories (
		id UUID PRIMARY KEY,
		user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		outfit_id UUID REFERENCES outfits(id) ON DELETE SET NULL,
		action TEXT NOT NULL CHECK (action IN ('viewed', 'liked', 'disliked', 'saved', 'worn', 'rated')),
		metadata JSONB NOT NULL DEFAULT '{}'::jsonb,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE INDEX IF NOT EXISTS style_histories_user_created_idx ON style_histories (user_id, created_at DESC)`,
}

// Migrate creates the tables the repositories expect.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	for i, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migration step %d: %w", i+1, err)
		}
	}
	return nil
}
