// Command clean-csv normalizes whitespace in the CSV word list, drops blank
// rows and writes the remaining rows to the canonical data file.
package main

import (
	"errors"
	"fmt"
	"os"

	"vocabprep/internal/config"
	"vocabprep/internal/domain"
	"vocabprep/internal/logging"
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

	csvPath := pflag.String("csv", cfg.Resolve(cfg.CSVPath), "input CSV word list")
	outPath := pflag.String("out", cfg.Resolve(cfg.DataPath), "output vocabulary data file")
	pflag.Parse()

	cleanService := service.NewCleanService(logger)

	count, err := cleanService.Run(*csvPath, *outPath)
	switch {
	case errors.Is(err, domain.ErrMissingInput):
		logger.Fatal("CSV file not found", zap.String("path", *csvPath), zap.Error(err))
	case errors.Is(err, domain.ErrInvalidInput):
		logger.Fatal("CSV header is empty, nothing to convert", zap.String("path", *csvPath), zap.Error(err))
	case err != nil:
		logger.Fatal("Failed to clean CSV", zap.String("path", *csvPath), zap.Error(err))
	}

	fmt.Printf("Cleaned %d records, wrote %s\n", count, *outPath)
}
