package recognition

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"strings"

	"depotlens/internal/logger"
)

const (
	DefaultTesseractPath = "tesseract"
	DefaultLanguages     = "deu+eng"
)

// runFunc executes a command and returns its stdout.
type runFunc func(ctx context.Context, name string, args ...string) ([]byte, error)

// Tesseract recognizes text by running the tesseract binary with the
// default engine mode and a uniform-block page layout.
type Tesseract struct {
	path      string
	languages string
	run       runFunc
}

// NewTesseract creates a Tesseract recognizer. Empty arguments select the defaults.
func NewTesseract(path, languages string) *Tesseract {
	if path == "" {
		path = DefaultTesseractPath
	}
	if languages == "" {
		languages = DefaultLanguages
	}
	return &Tesseract{path: path, languages: languages, run: execRun}
}

// Args returns the command line arguments used for the image at path.
func (t *Tesseract) Args(path string) []string {
	return []string{path, "stdout", "--oem", "3", "--psm", "6", "-l", t.languages}
}

// Recognize implements extraction.Recognizer.
func (t *Tesseract) Recognize(ctx context.Context, path string) (string, error) {
	mime, _, err := sniff(path)
	if err != nil {
		return "", failure("tesseract", path, ErrUnreadableImage, err)
	}
	if !isImage(mime) {
		return "", failure("tesseract", path, ErrUnreadableImage, errors.New("unsupported content type "+mime))
	}

	out, err := t.run(ctx, t.path, t.Args(path)...)
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) {
			return "", failure("tesseract", path, ErrBackendUnavailable, err)
		}
		if ctx.Err() != nil {
			return "", failure("tesseract", path, ErrBackendUnavailable, ctx.Err())
		}
		return "", failure("tesseract", path, ErrUnreadableImage, err)
	}

	logger.Get().Debugw("tesseract recognized document", "path", path, "bytes", len(out))
	return string(out), nil
}

func execRun(ctx context.Context, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	out, err := cmd.Output()
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return nil, &execError{err: err, stderr: msg}
		}
		return nil, err
	}
	return out, nil
}

type execError struct {
	err    error
	stderr string
}

func (e *execError) Error() string { return e.err.Error() + ": " + e.stderr }
func (e *execError) Unwrap() error { return e.err }
