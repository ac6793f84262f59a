package recognition

import (
	"context"
	"fmt"

	"depotlens/internal/extraction"
)

// Backend names accepted by New.
const (
	BackendTesseract = "tesseract"
	BackendGemini    = "gemini"
)

// Options selects and configures a recognition backend.
type Options struct {
	Backend       string
	TesseractPath string
	Languages     string
	GeminiAPIKey  string
	GeminiModel   string
}

// New returns the Recognizer for opts.Backend. Tesseract is the default.
func New(ctx context.Context, opts Options) (extraction.Recognizer, error) {
	switch opts.Backend {
	case "", BackendTesseract:
		return NewTesseract(opts.TesseractPath, opts.Languages), nil
	case BackendGemini:
		g, err := NewGemini(ctx, opts.GeminiAPIKey, opts.GeminiModel)
		if err != nil {
			return nil, err
		}
		return g, nil
	default:
		return nil, fmt.Errorf("unknown recognition backend %q", opts.Backend)
	}
}
