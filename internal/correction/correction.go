package correction

import "github.com/google/uuid"

// ManualConfidence is the fixed confidence stored on every correction. It
// marks the value as human-overridden rather than scored by the matcher.
const ManualConfidence = 0.5

// Correction records a user overriding a wrong or uncertain OCR match.
// Corrections are append-only: once written they are never changed by the
// application; approval is a moderation concern handled elsewhere.
type Correction struct {
	ID              uuid.UUID
	UserID          string
	OriginalText    string
	CorrectedItemID string
	Confidence      float64
	Timestamp       string // RFC 3339, sortable
	Approved        bool
}
