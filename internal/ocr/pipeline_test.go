package ocr_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trenthp/raiderCompanion/internal/catalog"
	"github.com/trenthp/raiderCompanion/internal/ocr"
)

// stubRecognizer returns canned text or a canned error.
type stubRecognizer struct {
	text string
	err  error
}

func (s *stubRecognizer) Recognize(_ context.Context, _ io.Reader) (string, error) {
	return s.text, s.err
}

func snapshot() []catalog.Entry {
	return []catalog.Entry{
		{ID: "item_bandage", Name: "Bandage"},
		{ID: "item_rifle_ammo", Name: "Rifle Ammunition"},
	}
}

func TestPipeline_ProcessImage(t *testing.T) {
	rec := &stubRecognizer{text: "Bandage x5\nRifle Ammunition x25"}
	p := ocr.NewPipeline(rec, ocr.DefaultConfidenceThreshold)

	results, err := p.ProcessImage(context.Background(), strings.NewReader("img"), snapshot())

	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "item_bandage", results[0].MatchedItemID)
	assert.Equal(t, 5, results[0].Quantity)
	assert.Equal(t, "item_rifle_ammo", results[1].MatchedItemID)
	assert.Equal(t, 25, results[1].Quantity)

	assert.Equal(t, ocr.StateSucceeded, p.State())
	assert.False(t, p.Processing())
	assert.NoError(t, p.Err())
	assert.Equal(t, results, p.Results())
}

func TestPipeline_RecognizerFailure(t *testing.T) {
	rec := &stubRecognizer{err: errors.New("engine exploded")}
	p := ocr.NewPipeline(rec, ocr.DefaultConfidenceThreshold)

	results, err := p.ProcessImage(context.Background(), strings.NewReader("img"), snapshot())

	assert.ErrorIs(t, err, ocr.ErrRecognition)
	assert.Empty(t, results)

	// Empty published results, retained error, processing released.
	assert.Equal(t, ocr.StateFailed, p.State())
	assert.False(t, p.Processing())
	assert.ErrorIs(t, p.Err(), ocr.ErrRecognition)
	assert.Empty(t, p.Results())
}

func TestPipeline_RetryAfterFailure(t *testing.T) {
	rec := &stubRecognizer{err: errors.New("engine exploded")}
	p := ocr.NewPipeline(rec, ocr.DefaultConfidenceThreshold)

	_, err := p.ProcessImage(context.Background(), strings.NewReader("img"), snapshot())
	require.Error(t, err)

	// Same pipeline, next attempt succeeds: prior error is cleared.
	rec.err = nil
	rec.text = "Bandage"

	results, err := p.ProcessImage(context.Background(), strings.NewReader("img"), snapshot())

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.NoError(t, p.Err())
	assert.Equal(t, ocr.StateSucceeded, p.State())
}

func TestPipeline_DeterministicForSameInputs(t *testing.T) {
	rec := &stubRecognizer{text: "Bandege x3\nzzz"}
	p := ocr.NewPipeline(rec, ocr.DefaultConfidenceThreshold)

	first, err := p.ProcessImage(context.Background(), strings.NewReader("img"), snapshot())
	require.NoError(t, err)

	second, err := p.ProcessImage(context.Background(), strings.NewReader("img"), snapshot())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestNewPipeline_ThresholdFallback(t *testing.T) {
	rec := &stubRecognizer{text: "Bandage"}
	p := ocr.NewPipeline(rec, -1)

	results, err := p.ProcessImage(context.Background(), strings.NewReader("img"), snapshot())

	require.NoError(t, err)
	require.Len(t, results, 1)
	// Exact match clears the default threshold.
	assert.False(t, results[0].RequiresManualConfirmation)
}
