package recognition

import (
	"context"
	"errors"
	"strings"

	"google.golang.org/genai"

	"depotlens/internal/logger"
)

const DefaultGeminiModel = "gemini-2.5-flash"

const transcribePrompt = `Transcribe all text visible in this document exactly as printed.
Keep numbers, dates, currency symbols and labels unchanged. Do not translate,
summarize or add commentary. Output plain text only.`

// contentGenerator is the part of genai.Models used for transcription.
type contentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Gemini recognizes text by asking a Gemini vision model to transcribe the document.
// Unlike Tesseract it also accepts PDF files.
type Gemini struct {
	models contentGenerator
	model  string
}

// NewGemini creates a Gemini recognizer using the Gemini API backend.
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if apiKey == "" {
		return nil, failure("gemini", "", ErrBackendUnavailable, errors.New("GEMINI_API_KEY is not set"))
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, failure("gemini", "", ErrBackendUnavailable, err)
	}
	return newGemini(client.Models, model), nil
}

func newGemini(models contentGenerator, model string) *Gemini {
	if model == "" {
		model = DefaultGeminiModel
	}
	return &Gemini{models: models, model: model}
}

// Recognize implements extraction.Recognizer.
func (g *Gemini) Recognize(ctx context.Context, path string) (string, error) {
	mime, data, err := sniff(path)
	if err != nil {
		return "", failure("gemini", path, ErrUnreadableImage, err)
	}
	if !isImage(mime) && !isPDF(mime) {
		return "", failure("gemini", path, ErrUnreadableImage, errors.New("unsupported content type "+mime))
	}

	contents := []*genai.Content{{
		Role: genai.RoleUser,
		Parts: []*genai.Part{
			{InlineData: &genai.Blob{MIMEType: mime, Data: data}},
			{Text: transcribePrompt},
		},
	}}
	config := &genai.GenerateContentConfig{Temperature: genai.Ptr[float32](0)}

	resp, err := g.models.GenerateContent(ctx, g.model, contents, config)
	if err != nil {
		return "", failure("gemini", path, ErrBackendUnavailable, err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", failure("gemini", path, ErrUnreadableImage, errors.New("no candidates returned"))
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}

	logger.Get().Debugw("gemini recognized document", "path", path, "model", g.model, "bytes", sb.Len())
	return sb.String(), nil
}
