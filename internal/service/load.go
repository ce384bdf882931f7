package service

import (
	"fmt"

	"vocabprep/internal/domain"
	"vocabprep/internal/repository"
	"vocabprep/internal/vocabfile"

	"go.uber.org/zap"
)

// LoadResult describes one load of the data file into the store
type LoadResult struct {
	Stored  int
	Skipped int
}

// LoadService copies the canonical data file into the vocabulary store
type LoadService struct {
	vocabRepo repository.VocabRepository
	logger    *zap.Logger
}

// NewLoadService creates a new load service
func NewLoadService(vocabRepo repository.VocabRepository, logger *zap.Logger) *LoadService {
	return &LoadService{
		vocabRepo: vocabRepo,
		logger:    logger,
	}
}

// RecordsFromRows converts rows to records in file order.
// Rows without an id are skipped; when an id repeats the later row wins
// and keeps the position of the first.
func RecordsFromRows(rows []domain.Row) ([]domain.VocabRecord, int) {
	records := make([]domain.VocabRecord, 0, len(rows))
	positions := make(map[string]int, len(rows))
	skipped := 0
	for _, row := range rows {
		record := domain.RecordFromRow(row)
		if record.ID == "" {
			skipped++
			continue
		}
		if pos, ok := positions[record.ID]; ok {
			records[pos] = record
			continue
		}
		positions[record.ID] = len(records)
		records = append(records, record)
	}
	return records, skipped
}

// Run replaces the store contents with the records in the file at path
func (s *LoadService) Run(path string) (LoadResult, error) {
	rows, err := vocabfile.ReadRows(path)
	if err != nil {
		return LoadResult{}, err
	}

	records, skipped := RecordsFromRows(rows)
	if skipped > 0 {
		s.logger.Debug("Skipped rows without id", zap.Int("count", skipped))
	}

	if err := s.vocabRepo.ReplaceAll(records); err != nil {
		return LoadResult{}, fmt.Errorf("store records: %w", err)
	}

	s.logger.Info("Load completed",
		zap.String("path", path),
		zap.Int("stored", len(records)),
		zap.Int("skipped", skipped),
	)
	return LoadResult{Stored: len(records), Skipped: skipped}, nil
}
