package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/trenthp/raiderCompanion/internal/catalog"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

const entryColumns = `id, name, rarity, type, icon_url, stack_size, sell_value`

func (s *Store) ListEntries(ctx context.Context) ([]catalog.Entry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM items
		ORDER BY name
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	defer rows.Close()

	var entries []catalog.Entry

	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning item: %w", err)
		}

		entries = append(entries, *e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating items: %w", err)
	}

	return entries, nil
}

func (s *Store) GetEntry(ctx context.Context, id string) (*catalog.Entry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM items
		WHERE id = $1
	`

	e, err := scanEntry(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}

		return nil, fmt.Errorf("getting item: %w", err)
	}

	return e, nil
}

func (s *Store) UpsertEntries(ctx context.Context, entries []catalog.Entry) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning upsert: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO items (id, name, rarity, type, icon_url, stack_size, sell_value)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			rarity = EXCLUDED.rarity,
			type = EXCLUDED.type,
			icon_url = EXCLUDED.icon_url,
			stack_size = EXCLUDED.stack_size,
			sell_value = EXCLUDED.sell_value
	`

	for _, e := range entries {
		if _, err := tx.ExecContext(ctx, query,
			e.ID, e.Name, string(e.Rarity), string(e.Type), e.IconURL, e.StackSize, e.SellValue,
		); err != nil {
			return fmt.Errorf("upserting item %s: %w", e.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing upsert: %w", err)
	}

	return nil
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(s scanner) (*catalog.Entry, error) {
	var e catalog.Entry

	var rarityStr, typeStr string

	var iconURL sql.NullString

	if err := s.Scan(&e.ID, &e.Name, &rarityStr, &typeStr, &iconURL, &e.StackSize, &e.SellValue); err != nil {
		return nil, err
	}

	e.Rarity = catalog.Rarity(rarityStr)
	e.Type = catalog.ItemType(typeStr)
	e.IconURL = iconURL.String

	return &e, nil
}
