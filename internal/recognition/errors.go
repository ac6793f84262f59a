// Package recognition turns document images into text. Two backends exist:
// the Tesseract command line tool and a Gemini vision model.
package recognition

import (
	"errors"
	"fmt"
)

var (
	// ErrBackendUnavailable means the recognition engine is missing or unreachable.
	ErrBackendUnavailable = errors.New("recognition backend unavailable")
	// ErrUnreadableImage means the input could not be decoded as a document image.
	ErrUnreadableImage = errors.New("unreadable image")
)

// RecognitionError is returned by every Recognizer. Err is one of the
// sentinels above, possibly wrapping the backend's own error.
type RecognitionError struct {
	Backend string
	Path    string
	Err     error
}

func (e *RecognitionError) Error() string {
	return fmt.Sprintf("%s recognition of %s: %v", e.Backend, e.Path, e.Err)
}

func (e *RecognitionError) Unwrap() error { return e.Err }

func failure(backend, path string, kind, cause error) *RecognitionError {
	if cause == nil {
		return &RecognitionError{Backend: backend, Path: path, Err: kind}
	}
	return &RecognitionError{Backend: backend, Path: path, Err: fmt.Errorf("%w: %v", kind, cause)}
}
