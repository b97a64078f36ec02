// Package tesseract implements the OCR recognizer on top of the system
// Tesseract installation via gosseract.
package tesseract

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/disintegration/imaging"
	"github.com/otiai10/gosseract/v2"
)

// Engine recognizes stash screenshot text with Tesseract.
type Engine struct {
	language string
}

// New returns an engine for the given Tesseract language. An empty language
// defaults to English.
func New(language string) *Engine {
	if language == "" {
		language = "eng"
	}

	return &Engine{language: language}
}

// Recognize decodes and preprocesses the screenshot, then runs a Tesseract
// pass over it. The engine call itself is atomic; cancelling ctx abandons
// the call and returns the context error.
func (e *Engine) Recognize(ctx context.Context, img io.Reader) (string, error) {
	src, err := imaging.Decode(img)
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}

	prepared := prepare(src)

	// gosseract reads from a file, so the prepared image goes through a
	// temp PNG.
	tmp, err := os.CreateTemp("", "stash-ocr-*.png")
	if err != nil {
		return "", fmt.Errorf("create temp image: %w", err)
	}

	path := tmp.Name()
	_ = tmp.Close()

	defer os.Remove(path)

	if err := imaging.Save(prepared, path); err != nil {
		return "", fmt.Errorf("save temp image: %w", err)
	}

	type recognition struct {
		text string
		err  error
	}

	done := make(chan recognition, 1)

	go func() {
		client := gosseract.NewClient()
		defer client.Close()

		if err := client.SetLanguage(e.language); err != nil {
			done <- recognition{err: fmt.Errorf("set language: %w", err)}
			return
		}

		if err := client.SetImage(path); err != nil {
			done <- recognition{err: fmt.Errorf("set image: %w", err)}
			return
		}

		text, err := client.Text()
		if err != nil {
			done <- recognition{err: fmt.Errorf("tesseract: %w", err)}
			return
		}

		done <- recognition{text: text}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case r := <-done:
		return r.text, r.err
	}
}
