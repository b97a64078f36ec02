package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/trenthp/raiderCompanion/internal/stash"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// AddEntries upserts a batch in one transaction. Confirming an item a user
// already holds adds to the stored quantity.
func (s *Store) AddEntries(ctx context.Context, entries []*stash.Entry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning add: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO stash_entries (id, user_id, item_id, quantity, source, added_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		ON CONFLICT (user_id, item_id) DO UPDATE SET
			quantity = stash_entries.quantity + EXCLUDED.quantity,
			source = EXCLUDED.source,
			added_at = NOW()
	`

	for _, e := range entries {
		if e.ID == uuid.Nil {
			e.ID = uuid.New()
		}

		if _, err := tx.ExecContext(ctx, query,
			e.ID, e.UserID, e.ItemID, e.Quantity, string(e.Source),
		); err != nil {
			return fmt.Errorf("adding stash entry %s: %w", e.ItemID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing add: %w", err)
	}

	return nil
}

func (s *Store) ListEntries(ctx context.Context, userID string) ([]*stash.Entry, error) {
	query := `
		SELECT id, user_id, item_id, quantity, source, added_at
		FROM stash_entries
		WHERE user_id = $1
		ORDER BY added_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing stash entries: %w", err)
	}
	defer rows.Close()

	var entries []*stash.Entry

	for rows.Next() {
		var e stash.Entry

		var sourceStr string

		if err := rows.Scan(&e.ID, &e.UserID, &e.ItemID, &e.Quantity, &sourceStr, &e.AddedAt); err != nil {
			return nil, fmt.Errorf("scanning stash entry: %w", err)
		}

		e.Source = stash.Source(sourceStr)
		entries = append(entries, &e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating stash entries: %w", err)
	}

	return entries, nil
}

func (s *Store) DeleteEntry(ctx context.Context, userID, itemID string) error {
	query := `DELETE FROM stash_entries WHERE user_id = $1 AND item_id = $2`

	if _, err := s.db.ExecContext(ctx, query, userID, itemID); err != nil {
		return fmt.Errorf("deleting stash entry: %w", err)
	}

	return nil
}
