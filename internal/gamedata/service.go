// Package gamedata pulls the item catalog from the external game-data API
// and feeds it into the local catalog.
package gamedata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/trenthp/raiderCompanion/internal/catalog"
)

// Catalog is the slice of the catalog service the sync needs.
type Catalog interface {
	Import(ctx context.Context, entries []catalog.Entry) (int, error)
}

// Service fetches item data over HTTP and upserts it into the catalog.
type Service struct {
	catalog  Catalog
	client   *http.Client
	baseURL  string
	apiToken string
}

func NewService(cat Catalog, baseURL, apiToken string) *Service {
	return &Service{
		catalog:  cat,
		client:   &http.Client{Timeout: 30 * time.Second},
		baseURL:  baseURL,
		apiToken: apiToken,
	}
}

type itemDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Rarity    string `json:"rarity"`
	Type      string `json:"type"`
	IconURL   string `json:"icon_url"`
	StackSize int    `json:"stack_size"`
	SellValue int    `json:"sell_value"`
}

// Sync fetches the full item list and upserts it. It returns the number of
// entries stored; entries the API serves without an id or name are dropped
// by the catalog boundary.
func (s *Service) Sync(ctx context.Context) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/items", nil)
	if err != nil {
		return 0, fmt.Errorf("creating request: %w", err)
	}

	if s.apiToken != "" {
		req.Header.Set("Authorization", "Token "+s.apiToken)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("fetching items: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("unexpected status code %d from game-data API", resp.StatusCode)
	}

	var items []itemDTO
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return 0, fmt.Errorf("decoding items: %w", err)
	}

	entries := make([]catalog.Entry, len(items))
	for i, it := range items {
		entries[i] = catalog.Entry{
			ID:        it.ID,
			Name:      it.Name,
			Rarity:    catalog.Rarity(it.Rarity),
			Type:      catalog.ItemType(it.Type),
			IconURL:   it.IconURL,
			StackSize: it.StackSize,
			SellValue: it.SellValue,
		}
	}

	count, err := s.catalog.Import(ctx, entries)
	if err != nil {
		return 0, fmt.Errorf("importing items: %w", err)
	}

	return count, nil
}
