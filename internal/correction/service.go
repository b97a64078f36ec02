package correction

import (
	"context"
	"fmt"
	"time"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=correction
type Repository interface {
	AppendCorrection(ctx context.Context, c *Correction) error
	FindByOriginalText(ctx context.Context, userID, originalText string) (string, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Record appends a correction to the user's private correction log and
// returns it. A failed append is propagated, never swallowed: losing a
// correction silently would corrupt the learning dataset.
func (s *Service) Record(ctx context.Context, userID, originalText, correctedItemID string) (*Correction, error) {
	c := &Correction{
		UserID:          userID,
		OriginalText:    originalText,
		CorrectedItemID: correctedItemID,
		Confidence:      ManualConfidence,
		Timestamp:       time.Now().UTC().Format(time.RFC3339),
		Approved:        false,
	}

	if err := s.repo.AppendCorrection(ctx, c); err != nil {
		return nil, fmt.Errorf("appending correction: %w", err)
	}

	return c, nil
}

// Suggest returns the item id of the user's most recent correction for the
// given recognized text, or empty string if they never corrected it.
func (s *Service) Suggest(ctx context.Context, userID, originalText string) (string, error) {
	return s.repo.FindByOriginalText(ctx, userID, originalText)
}
