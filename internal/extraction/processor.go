package extraction

import (
	"context"
	"fmt"
)

// Recognizer turns a document image into text.
type Recognizer interface {
	Recognize(ctx context.Context, path string) (string, error)
}

// Outcome is what a processed document yields: the raw recognized text,
// the extracted record and a status line carrying the confidence.
type Outcome struct {
	RawText string `json:"extracted_text"`
	Result  Result `json:"parsed_data"`
	Message string `json:"message"`
}

// Analyze extracts a Result from already recognized text.
func Analyze(text string) Outcome {
	r := Extract(text)
	return Outcome{
		RawText: text,
		Result:  r,
		Message: fmt.Sprintf("Document processed successfully (confidence: %d%%)", r.Confidence),
	}
}

// Processor runs recognition followed by extraction.
type Processor struct {
	recognizer Recognizer
}

// NewProcessor creates a Processor backed by the given Recognizer.
func NewProcessor(recognizer Recognizer) *Processor {
	return &Processor{recognizer: recognizer}
}

// Process recognizes the document at path and extracts its fields. The only
// error is a recognition failure, returned wrapped and without a partial result.
func (p *Processor) Process(ctx context.Context, path string) (*Outcome, error) {
	text, err := p.recognizer.Recognize(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("processing document: %w", err)
	}
	out := Analyze(text)
	return &out, nil
}
