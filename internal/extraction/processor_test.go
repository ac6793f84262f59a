package extraction

import (
	"context"
	"errors"
	"strings"
	"testing"
)

type stubRecognizer struct {
	text     string
	err      error
	lastPath string
}

func (s *stubRecognizer) Recognize(_ context.Context, path string) (string, error) {
	s.lastPath = path
	return s.text, s.err
}

func TestProcessor_Process(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		raw := "Symbol: AAPL\nDatum: 15.03.2024\nPreis: 150,50€\nAnzahl: 10 Stück\n"
		rec := &stubRecognizer{text: raw}
		p := NewProcessor(rec)

		out, err := p.Process(context.Background(), "/tmp/confirmation.png")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if rec.lastPath != "/tmp/confirmation.png" {
			t.Errorf("expected recognizer to receive the path, got %q", rec.lastPath)
		}
		if out.RawText != raw {
			t.Errorf("expected raw text to be returned unmodified, got %q", out.RawText)
		}
		if out.Result.Confidence != 85 {
			t.Errorf("expected confidence 85, got %d", out.Result.Confidence)
		}
		if out.Message != "Document processed successfully (confidence: 85%)" {
			t.Errorf("unexpected message %q", out.Message)
		}
	})

	t.Run("nothing_found_is_not_an_error", func(t *testing.T) {
		p := NewProcessor(&stubRecognizer{text: ""})

		out, err := p.Process(context.Background(), "blank.png")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Result.Confidence != 0 {
			t.Errorf("expected confidence 0, got %d", out.Result.Confidence)
		}
		if !strings.Contains(out.Message, "confidence: 0%") {
			t.Errorf("unexpected message %q", out.Message)
		}
	})

	t.Run("recognition_failure_is_wrapped", func(t *testing.T) {
		backendErr := errors.New("tesseract not installed")
		p := NewProcessor(&stubRecognizer{err: backendErr})

		out, err := p.Process(context.Background(), "scan.png")
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if out != nil {
			t.Errorf("expected no outcome, got %+v", out)
		}
		if !errors.Is(err, backendErr) {
			t.Errorf("expected error to wrap the recognizer error, got %v", err)
		}
	})
}

func TestAnalyze(t *testing.T) {
	out := Analyze("Gesamt: 500€")

	if out.RawText != "Gesamt: 500€" {
		t.Errorf("expected raw text to be kept, got %q", out.RawText)
	}
	if out.Result.TotalValue == nil {
		t.Fatal("expected total value to be set")
	}
	if out.Message != "Document processed successfully (confidence: 30%)" {
		t.Errorf("unexpected message %q", out.Message)
	}
}
