package ocr

import "github.com/trenthp/raiderCompanion/internal/catalog"

// DefaultConfidenceThreshold is the confidence below which a match is
// flagged for manual confirmation.
const DefaultConfidenceThreshold = 0.7

// MatchResult pairs a candidate with the best-scoring catalog entry.
// MatchedItemID is empty when nothing in the catalog scored above zero.
type MatchResult struct {
	Text                       string
	Quantity                   int
	MatchedItemID              string
	Confidence                 float64
	RequiresManualConfirmation bool
}

// MatchAll scores every candidate against every catalog entry and keeps the
// single best match per candidate. Ties are broken by catalog order: the
// first entry reaching the best score wins, so results are deterministic
// for a given snapshot. The result order follows the candidate order.
func MatchAll(candidates []Candidate, snapshot []catalog.Entry, threshold float64) []MatchResult {
	results := make([]MatchResult, 0, len(candidates))

	for _, c := range candidates {
		var bestID string

		bestScore := 0.0

		for _, entry := range snapshot {
			if score := Similarity(c.Text, entry.Name); score > bestScore {
				bestScore = score
				bestID = entry.ID
			}
		}

		results = append(results, MatchResult{
			Text:                       c.Text,
			Quantity:                   c.Quantity,
			MatchedItemID:              bestID,
			Confidence:                 bestScore,
			RequiresManualConfirmation: bestScore < threshold,
		})
	}

	return results
}
