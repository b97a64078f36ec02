package ocr

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/trenthp/raiderCompanion/internal/catalog"
)

// ErrRecognition wraps failures of the external OCR engine. The pipeline
// recovers from these: it publishes an empty result set and retains the
// error so the caller can let the user retry.
var ErrRecognition = errors.New("recognition failed")

// State is the processing state of a pipeline.
type State int

const (
	StateIdle State = iota
	StateProcessing
	StateSucceeded
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateProcessing:
		return "processing"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	}

	return "unknown"
}

// Recognizer extracts text from a screenshot image. Implementations own
// their timeout behavior beyond what the context carries.
type Recognizer interface {
	Recognize(ctx context.Context, img io.Reader) (string, error)
}

// Pipeline sequences recognition, segmentation and catalog matching for
// stash screenshots, and holds the result of the most recent run.
//
// A second ProcessImage call while one is in flight is allowed; whichever
// call publishes last wins the shared result slot. Callers needing strict
// single-flight serialize the calls themselves.
type Pipeline struct {
	recognizer Recognizer
	threshold  float64

	mu      sync.Mutex
	state   State
	results []MatchResult
	err     error
}

// NewPipeline builds a pipeline around the given recognizer. A threshold
// outside (0,1] falls back to DefaultConfidenceThreshold.
func NewPipeline(recognizer Recognizer, threshold float64) *Pipeline {
	if threshold <= 0 || threshold > 1 {
		threshold = DefaultConfidenceThreshold
	}

	return &Pipeline{
		recognizer: recognizer,
		threshold:  threshold,
		state:      StateIdle,
	}
}

// ProcessImage runs recognition on img, segments the recognized text and
// matches the candidates against snapshot. Results are published on the
// pipeline and returned. On recognition failure the published result set
// is empty, the error is retained, and the same error is returned; the
// processing state is released on every path.
func (p *Pipeline) ProcessImage(ctx context.Context, img io.Reader, snapshot []catalog.Entry) ([]MatchResult, error) {
	p.mu.Lock()
	p.state = StateProcessing
	p.results = nil
	p.err = nil
	p.mu.Unlock()

	var (
		results []MatchResult
		err     error
	)

	defer func() { p.publish(results, err) }()

	text, recErr := p.recognizer.Recognize(ctx, img)
	if recErr != nil {
		err = fmt.Errorf("%w: %w", ErrRecognition, recErr)
		return nil, err
	}

	results = MatchAll(Segment(text), snapshot, p.threshold)

	return results, nil
}

func (p *Pipeline) publish(results []MatchResult, err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if err != nil {
		p.state = StateFailed
		p.results = nil
		p.err = err

		return
	}

	p.state = StateSucceeded
	p.results = results
	p.err = nil
}

// Processing reports whether a run is currently in flight.
func (p *Pipeline) Processing() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.state == StateProcessing
}

// State returns the state of the most recent run.
func (p *Pipeline) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.state
}

// Results returns a copy of the most recently published results.
func (p *Pipeline) Results() []MatchResult {
	p.mu.Lock()
	defer p.mu.Unlock()

	out := make([]MatchResult, len(p.results))
	copy(out, p.results)

	return out
}

// Err returns the retained error of the most recent run, if any.
func (p *Pipeline) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	return p.err
}
