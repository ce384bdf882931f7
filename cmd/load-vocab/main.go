// Command load-vocab copies the canonical data file into the local SQLite
// store read by the app and reports how many records still lack examples.
package main

import (
	"errors"
	"fmt"
	"os"

	"vocabprep/internal/config"
	"vocabprep/internal/domain"
	"vocabprep/internal/logging"
	"vocabprep/internal/repository/sqlite"
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

	dataPath := pflag.String("data", cfg.Resolve(cfg.DataPath), "vocabulary data file to load")
	dbPath := pflag.String("db", cfg.Resolve(cfg.DBPath), "SQLite store to replace")
	pflag.Parse()

	if _, err := os.Stat(*dataPath); errors.Is(err, os.ErrNotExist) {
		logger.Fatal("Vocabulary data file not found", zap.String("path", *dataPath))
	}

	db, err := sqlite.Open(*dbPath)
	if err != nil {
		logger.Fatal("Failed to open store", zap.String("path", *dbPath), zap.Error(err))
	}
	defer db.Close()

	if err := sqlite.Migrate(db, logger); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	vocabRepo := sqlite.NewVocabRepo(db)
	loadService := service.NewLoadService(vocabRepo, logger)
	statsService := service.NewStatsService(vocabRepo, logger)

	result, err := loadService.Run(*dataPath)
	if errors.Is(err, domain.ErrMissingInput) {
		logger.Fatal("Vocabulary data file not found", zap.String("path", *dataPath), zap.Error(err))
	}
	if err != nil {
		logger.Fatal("Failed to load vocabulary", zap.String("path", *dataPath), zap.Error(err))
	}

	stats, err := statsService.Report()
	if err != nil {
		logger.Fatal("Failed to read store statistics", zap.Error(err))
	}

	fmt.Printf("Loaded %d records into %s (%d without examples)\n", result.Stored, *dbPath, stats.MissingExamples)
}
