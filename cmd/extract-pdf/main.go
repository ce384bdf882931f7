// Command extract-pdf reads the PDF word list and writes one vocabulary
// record per "kanji kana meaning" line to the canonical data file.
package main

import (
	"errors"
	"fmt"
	"os"

	"vocabprep/internal/config"
	"vocabprep/internal/domain"
	"vocabprep/internal/logging"
	"vocabprep/internal/pdftext"
	"vocabprep/internal/service"

	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	pdfPath := pflag.String("pdf", cfg.Resolve(cfg.PDFPath), "input PDF word list")
	outPath := pflag.String("out", cfg.Resolve(cfg.DataPath), "output vocabulary data file")
	pflag.Parse()

	extractService := service.NewExtractService(pdftext.NewReader(), logger)

	count, err := extractService.Run(*pdfPath, *outPath)
	if errors.Is(err, domain.ErrMissingInput) {
		logger.Fatal("PDF file not found", zap.String("path", *pdfPath), zap.Error(err))
	}
	if err != nil {
		logger.Fatal("Failed to extract vocabulary", zap.String("path", *pdfPath), zap.Error(err))
	}

	fmt.Printf("Extracted %d records from PDF, wrote %s\n", count, *outPath)
}
