package database

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

func New(connStr string) (*sql.DB, error) {
	db, err := sql.Open("pgx", connStr)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	return db, nil
}

// Migrate creates the tables the stores expect. Statements are idempotent so
// it is safe to run on every startup.
func Migrate(db *sql.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS items (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			rarity TEXT NOT NULL DEFAULT '',
			type TEXT NOT NULL DEFAULT '',
			icon_url TEXT NOT NULL DEFAULT '',
			stack_size INT NOT NULL DEFAULT 1,
			sell_value INT NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS stash_entries (
			id UUID PRIMARY KEY,
			user_id TEXT NOT NULL,
			item_id TEXT NOT NULL REFERENCES items(id),
			quantity INT NOT NULL,
			source TEXT NOT NULL,
			added_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			UNIQUE (user_id, item_id)
		)`,
		`CREATE TABLE IF NOT EXISTS ocr_corrections (
			id UUID PRIMARY KEY,
			user_id TEXT NOT NULL,
			original_text TEXT NOT NULL,
			corrected_item_id TEXT NOT NULL REFERENCES items(id),
			confidence DOUBLE PRECISION NOT NULL,
			recorded_at TIMESTAMPTZ NOT NULL,
			approved BOOLEAN NOT NULL DEFAULT false
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("running migration: %w", err)
		}
	}

	return nil
}
