package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"

	apperrors "depotlens/internal/errors"
	"depotlens/internal/extraction"
	"depotlens/internal/logger"
	"depotlens/internal/models"
)

// AllowedExtensions lists the accepted upload file extensions.
var AllowedExtensions = []string{"png", "jpg", "jpeg", "gif", "bmp", "tiff", "pdf"}

// DefaultAutoCreateThreshold is the minimum confidence for unattended entry creation.
const DefaultAutoCreateThreshold = 60

const autoCreatedSuffix = " - portfolio entry created automatically"

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// DocumentProcessor recognizes a stored document and extracts its fields.
type DocumentProcessor interface {
	Process(ctx context.Context, path string) (*extraction.Outcome, error)
}

// DocumentConfig configures upload handling.
type DocumentConfig struct {
	UploadDir           string
	MaxBytes            int64
	AutoCreateThreshold int
}

// documentService stores uploaded documents, runs extraction and creates
// portfolio entries from trusted results.
type documentService struct {
	processor DocumentProcessor
	portfolio PortfolioServicer
	cfg       DocumentConfig
	now       func() time.Time
}

// NewDocumentService creates a new DocumentServicer.
func NewDocumentService(processor DocumentProcessor, portfolio PortfolioServicer, cfg DocumentConfig) DocumentServicer {
	if cfg.UploadDir == "" {
		cfg.UploadDir = os.TempDir()
	}
	if cfg.AutoCreateThreshold == 0 {
		cfg.AutoCreateThreshold = DefaultAutoCreateThreshold
	}
	return &documentService{processor: processor, portfolio: portfolio, cfg: cfg, now: time.Now}
}

func allowedExtension(filename string) bool {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))
	for _, a := range AllowedExtensions {
		if ext == a {
			return true
		}
	}
	return false
}

// sanitizeFilename keeps the base name and replaces unsafe characters.
func sanitizeFilename(filename string) string {
	name := filepath.Base(strings.ReplaceAll(filename, "\\", "/"))
	name = unsafeFilenameChars.ReplaceAllString(name, "_")
	return strings.Trim(name, "._")
}

// ProcessUpload stores content under a timestamped name, extracts it and
// removes the file again. A trusted result becomes a portfolio entry; failure
// to create it is reported in the result rather than as an error.
func (s *documentService) ProcessUpload(ctx context.Context, filename string, content io.Reader) (*UploadResult, error) {
	if strings.TrimSpace(filename) == "" || content == nil {
		return nil, apperrors.ErrNoFile
	}
	if !allowedExtension(filename) {
		return nil, apperrors.WithMessage(apperrors.ErrUnsupportedFileType,
			"File type not allowed. Allowed types: "+strings.Join(AllowedExtensions, ", "))
	}

	path, err := s.store(filename, content)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			logger.Get().Warnw("failed to remove uploaded document", "path", path, "error", err)
		}
	}()

	if err := checkContentType(path); err != nil {
		return nil, err
	}

	outcome, err := s.processor.Process(ctx, path)
	if err != nil {
		logger.Get().Warnw("document recognition failed", "file", filepath.Base(path), "error", err)
		return nil, apperrors.Wrap(apperrors.ErrRecognitionFailed, err)
	}

	logger.Get().Infow("document processed",
		"file", filepath.Base(path),
		"confidence", outcome.Result.Confidence,
		"fields", outcome.Result.Fields(),
	)

	result := &UploadResult{Outcome: *outcome}
	if !outcome.Result.Trusted(s.cfg.AutoCreateThreshold) {
		return result, nil
	}

	entry, err := s.portfolio.CreateEntry(entryFromResult(outcome.Result))
	if err != nil {
		logger.Get().Warnw("automatic entry creation failed", "error", err)
		result.AutoCreationError = err.Error()
		return result, nil
	}
	result.AutoCreated = true
	result.AutoCreatedEntry = entry
	result.Message += autoCreatedSuffix
	return result, nil
}

func (s *documentService) store(filename string, content io.Reader) (string, error) {
	if err := os.MkdirAll(s.cfg.UploadDir, 0o750); err != nil {
		return "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	name := fmt.Sprintf("%s_%s", s.now().Format("20060102_150405"), sanitizeFilename(filename))
	f, err := os.CreateTemp(s.cfg.UploadDir, "*_"+name)
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	path := f.Name()

	src := content
	if s.cfg.MaxBytes > 0 {
		src = io.LimitReader(content, s.cfg.MaxBytes+1)
	}
	n, copyErr := io.Copy(f, src)
	closeErr := f.Close()
	if copyErr == nil {
		copyErr = closeErr
	}
	if copyErr != nil {
		_ = os.Remove(path)
		return "", apperrors.Wrap(apperrors.ErrInternalServer, copyErr)
	}
	if s.cfg.MaxBytes > 0 && n > s.cfg.MaxBytes {
		_ = os.Remove(path)
		return "", apperrors.ErrFileTooLarge
	}
	if n == 0 {
		_ = os.Remove(path)
		return "", apperrors.WithMessage(apperrors.ErrNoFile, "Uploaded file is empty")
	}
	return path, nil
}

// checkContentType rejects files whose magic bytes are neither an image nor a PDF.
func checkContentType(path string) error {
	mt, err := mimetype.DetectFile(path)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if strings.HasPrefix(mt.String(), "image/") || mt.Is("application/pdf") {
		return nil
	}
	return apperrors.WithMessage(apperrors.ErrUnsupportedFileType,
		fmt.Sprintf("File content %s is not an image or PDF", mt.String()))
}

func entryFromResult(r extraction.Result) EntryInput {
	in := EntryInput{
		Symbol:        *r.Symbol,
		PurchaseDate:  *r.PurchaseDate,
		PurchasePrice: *r.PurchasePrice,
		Quantity:      *r.Quantity,
		Currency:      r.Currency,
		Source:        models.EntrySourceOCR,
	}
	if r.CompanyName != nil {
		in.CompanyName = *r.CompanyName
	}
	confidence := r.Confidence
	in.Confidence = &confidence
	return in
}
