package ocr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trenthp/raiderCompanion/internal/catalog"
	"github.com/trenthp/raiderCompanion/internal/ocr"
)

func TestMatchAll_ExactMatchWins(t *testing.T) {
	snapshot := []catalog.Entry{
		{ID: "a", Name: "Bandage"},
		{ID: "b", Name: "Bandage Kit"},
	}
	candidates := []ocr.Candidate{{Text: "Bandage", Quantity: 3}}

	results := ocr.MatchAll(candidates, snapshot, ocr.DefaultConfidenceThreshold)

	require.Len(t, results, 1)
	assert.Equal(t, "a", results[0].MatchedItemID)
	assert.Equal(t, 1.0, results[0].Confidence)
	assert.Equal(t, 3, results[0].Quantity)
	assert.False(t, results[0].RequiresManualConfirmation)
}

func TestMatchAll_LowConfidenceFlagged(t *testing.T) {
	snapshot := []catalog.Entry{{ID: "x", Name: "Titanium Alloy"}}
	candidates := []ocr.Candidate{{Text: "zzz", Quantity: 1}}

	results := ocr.MatchAll(candidates, snapshot, ocr.DefaultConfidenceThreshold)

	require.Len(t, results, 1)
	assert.Less(t, results[0].Confidence, ocr.DefaultConfidenceThreshold)
	assert.True(t, results[0].RequiresManualConfirmation)
}

func TestMatchAll_EmptyCatalog(t *testing.T) {
	candidates := []ocr.Candidate{
		{Text: "Bandage", Quantity: 2},
		{Text: "Wires", Quantity: 7},
	}

	results := ocr.MatchAll(candidates, nil, ocr.DefaultConfidenceThreshold)

	require.Len(t, results, 2)

	for _, r := range results {
		assert.Empty(t, r.MatchedItemID)
		assert.Equal(t, 0.0, r.Confidence)
		assert.True(t, r.RequiresManualConfirmation)
	}
}

func TestMatchAll_TieBrokenByCatalogOrder(t *testing.T) {
	// Both names are one edit away from the candidate; the earlier entry wins.
	snapshot := []catalog.Entry{
		{ID: "first", Name: "Wirea"},
		{ID: "second", Name: "Wireb"},
	}
	candidates := []ocr.Candidate{{Text: "Wirec", Quantity: 1}}

	results := ocr.MatchAll(candidates, snapshot, ocr.DefaultConfidenceThreshold)

	require.Len(t, results, 1)
	assert.Equal(t, "first", results[0].MatchedItemID)
}

func TestMatchAll_OrderPreservedAndDeterministic(t *testing.T) {
	snapshot := []catalog.Entry{
		{ID: "item_bandage", Name: "Bandage"},
		{ID: "item_wires", Name: "Wires"},
		{ID: "item_medkit", Name: "Medical Kit"},
	}
	candidates := []ocr.Candidate{
		{Text: "Wires", Quantity: 4},
		{Text: "Bandag", Quantity: 1},
		{Text: "Medical Kit", Quantity: 2},
	}

	first := ocr.MatchAll(candidates, snapshot, ocr.DefaultConfidenceThreshold)
	second := ocr.MatchAll(candidates, snapshot, ocr.DefaultConfidenceThreshold)

	require.Len(t, first, 3)
	assert.Equal(t, "item_wires", first[0].MatchedItemID)
	assert.Equal(t, "item_bandage", first[1].MatchedItemID)
	assert.Equal(t, "item_medkit", first[2].MatchedItemID)

	// Same inputs always yield the same ids and confidences.
	assert.Equal(t, first, second)
}
