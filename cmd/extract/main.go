// Command extract reads a purchase record from a broker document and prints
// the outcome as JSON.
//
//	extract [-text] <file>
//
// With -text the file is already recognized text and only the field
// extraction runs. Otherwise the configured recognizer reads the document first.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"depotlens/internal/config"
	"depotlens/internal/extraction"
	"depotlens/internal/logger"
	"depotlens/internal/recognition"
)

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	textOnly := flag.Bool("text", false, "treat the file as recognized text")
	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output(), "usage: extract [-text] <file>")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(context.Background(), flag.Arg(0), *textOnly, os.Stdout); err != nil {
		logger.Get().Fatalf("Extraction error: %v", err)
	}
}

func run(ctx context.Context, path string, textOnly bool, w io.Writer) error {
	var outcome extraction.Outcome
	if textOnly {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}
		outcome = extraction.Analyze(string(data))
	} else {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		recognizer, err := recognition.New(ctx, recognition.Options{
			Backend:       cfg.OCRBackend,
			TesseractPath: cfg.TesseractPath,
			Languages:     cfg.OCRLanguages,
			GeminiAPIKey:  cfg.GeminiAPIKey,
			GeminiModel:   cfg.GeminiModel,
		})
		if err != nil {
			return fmt.Errorf("failed to create recognizer: %w", err)
		}
		out, err := extraction.NewProcessor(recognizer).Process(ctx, path)
		if err != nil {
			return err
		}
		outcome = *out
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(outcome)
}
