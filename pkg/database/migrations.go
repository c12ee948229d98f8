package database

import (
	"context"
	"fmt"
)

// migrations are applied in order on every startup; each statement is
// idempotent so re-running is safe.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS media (
		id TEXT NOT NULL,
		type TEXT NOT NULL,
		title TEXT NOT NULL,
		release_date DATE,
		poster_image TEXT,
		overview TEXT,
		genres TEXT[] NOT NULL DEFAULT '{}',
		score DOUBLE PRECISION,
		backdrops TEXT[] NOT NULL DEFAULT '{}',
		screenshots TEXT[] NOT NULL DEFAULT '{}',
		system_requirements TEXT,
		PRIMARY KEY (id, type)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_media_type_release ON media (type, release_date)`,
	`CREATE TABLE IF NOT EXISTS comments (
		id UUID PRIMARY KEY,
		media_id TEXT NOT NULL,
		user_id UUID REFERENCES users (id),
		author TEXT NOT NULL,
		rating INT NOT NULL,
		comment TEXT NOT NULL DEFAULT '',
		is_guest BOOLEAN NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		CHECK ((is_guest AND user_id IS NULL) OR (NOT is_guest AND user_id IS NOT NULL))
	)`,
	`CREATE INDEX IF NOT EXISTS idx_comments_media ON comments (media_id, created_at DESC)`,
}

// RunMigrations creates the schema if it does not exist yet.
func RunMigrations(ctx context.Context, db PgxIface) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply migration %d: %w", i+1, err)
		}
	}
	return nil
}
