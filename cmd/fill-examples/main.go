// Command fill-examples adds templated example sentences to every record in
// the data file that has none, rewriting the file in place.
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

	dataPath := pflag.String("data", cfg.Resolve(cfg.DataPath), "vocabulary data file to fill in place")
	pflag.Parse()

	fillService := service.NewFillService(logger)

	updated, err := fillService.Run(*dataPath)
	if errors.Is(err, domain.ErrMissingInput) {
		logger.Fatal("Vocabulary data file not found", zap.String("path", *dataPath), zap.Error(err))
	}
	if err != nil {
		logger.Fatal("Failed to fill examples", zap.String("path", *dataPath), zap.Error(err))
	}

	fmt.Printf("Added example sentences to %d records, wrote %s\n", updated, *dataPath)
}
