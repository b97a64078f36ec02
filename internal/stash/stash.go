package stash

import (
	"time"

	"github.com/google/uuid"
)

// Source records how an entry got into the stash.
type Source string

const (
	SourceOCRImport  Source = "ocr_import"
	SourceTextImport Source = "text_import"
	SourceManual     Source = "manual"
)

// Entry is one item a user holds in their stash. Quantities accumulate:
// confirming an import for an item already present adds to it.
type Entry struct {
	ID       uuid.UUID
	UserID   string
	ItemID   string
	Quantity int
	Source   Source
	AddedAt  time.Time
}
