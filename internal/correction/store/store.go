package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/trenthp/raiderCompanion/internal/correction"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// AppendCorrection writes a correction to the user's log. Inserts only, no
// read-modify-write, so concurrent corrections for one user cannot race.
func (s *Store) AppendCorrection(ctx context.Context, c *correction.Correction) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}

	query := `
		INSERT INTO ocr_corrections (id, user_id, original_text, corrected_item_id, confidence, recorded_at, approved)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := s.db.ExecContext(ctx, query,
		c.ID, c.UserID, c.OriginalText, c.CorrectedItemID, c.Confidence, c.Timestamp, c.Approved,
	)
	if err != nil {
		return fmt.Errorf("appending correction: %w", err)
	}

	return nil
}

// FindByOriginalText returns the corrected item id from the user's most
// recent correction for the given text, or empty string if none exists.
func (s *Store) FindByOriginalText(ctx context.Context, userID, originalText string) (string, error) {
	query := `
		SELECT corrected_item_id
		FROM ocr_corrections
		WHERE user_id = $1 AND LOWER(original_text) = LOWER($2)
		ORDER BY recorded_at DESC
		LIMIT 1
	`

	var itemID string

	err := s.db.QueryRowContext(ctx, query, userID, originalText).Scan(&itemID)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", nil
		}

		return "", fmt.Errorf("finding correction: %w", err)
	}

	return itemID, nil
}
