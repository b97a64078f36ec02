package catalog

import (
	"context"
	"fmt"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=catalog
type Repository interface {
	ListEntries(ctx context.Context) ([]Entry, error)
	GetEntry(ctx context.Context, id string) (*Entry, error)
	UpsertEntries(ctx context.Context, entries []Entry) error
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Snapshot returns the full catalog as an in-memory list. The OCR matcher
// consumes this directly; it never queries storage itself.
func (s *Service) Snapshot(ctx context.Context) ([]Entry, error) {
	return s.repo.ListEntries(ctx)
}

// Get returns a single entry, or nil if the id is unknown.
func (s *Service) Get(ctx context.Context, id string) (*Entry, error) {
	return s.repo.GetEntry(ctx, id)
}

// Import validates and upserts entries coming from the external game-data
// sync. Entries failing validation are dropped; the count of stored entries
// is returned.
func (s *Service) Import(ctx context.Context, entries []Entry) (int, error) {
	valid := make([]Entry, 0, len(entries))

	for _, e := range entries {
		if err := e.Validate(); err != nil {
			continue
		}

		valid = append(valid, e)
	}

	if len(valid) == 0 {
		return 0, nil
	}

	if err := s.repo.UpsertEntries(ctx, valid); err != nil {
		return 0, fmt.Errorf("upserting catalog entries: %w", err)
	}

	return len(valid), nil
}
