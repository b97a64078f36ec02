package stash

import (
	"context"
	"errors"
	"fmt"
)

// ErrInvalidEntry marks confirm params with no item id or a non-positive
// quantity.
var ErrInvalidEntry = errors.New("stash entry needs an item id and a positive quantity")

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=stash
type Repository interface {
	AddEntries(ctx context.Context, entries []*Entry) error
	ListEntries(ctx context.Context, userID string) ([]*Entry, error)
	DeleteEntry(ctx context.Context, userID, itemID string) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ConfirmParams is one accepted match from an import, ready to persist.
type ConfirmParams struct {
	ItemID   string
	Quantity int
	Source   Source
}

// ConfirmBatch persists the matches a user accepted after an import run.
// The whole batch is validated before anything is written.
func (s *Service) ConfirmBatch(ctx context.Context, userID string, params []ConfirmParams) ([]*Entry, error) {
	if len(params) == 0 {
		return nil, nil
	}

	entries := make([]*Entry, len(params))

	for i, p := range params {
		if p.ItemID == "" || p.Quantity < 1 {
			return nil, fmt.Errorf("%w: item %q quantity %d", ErrInvalidEntry, p.ItemID, p.Quantity)
		}

		source := p.Source
		if source == "" {
			source = SourceManual
		}

		entries[i] = &Entry{
			UserID:   userID,
			ItemID:   p.ItemID,
			Quantity: p.Quantity,
			Source:   source,
		}
	}

	if err := s.repo.AddEntries(ctx, entries); err != nil {
		return nil, fmt.Errorf("adding stash entries: %w", err)
	}

	return entries, nil
}

// List returns all stash entries of a user.
func (s *Service) List(ctx context.Context, userID string) ([]*Entry, error) {
	return s.repo.ListEntries(ctx, userID)
}

// Remove deletes one item from the user's stash.
func (s *Service) Remove(ctx context.Context, userID, itemID string) error {
	return s.repo.DeleteEntry(ctx, userID, itemID)
}
